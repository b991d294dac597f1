package question

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nasigu/diagquiz/internal/catalog"
	"github.com/nasigu/diagquiz/internal/ui/components"
	"github.com/nasigu/diagquiz/internal/ui/theme"
)

func (s *QuestionScreen) View(width, height int) string {
	q, ok := s.eng.Current()
	if !ok {
		return ""
	}

	cardWidth := width - 8
	if cardWidth > 64 {
		cardWidth = 64
	}
	innerWidth := cardWidth - 6

	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(innerWidth).
		Render(q.Title)
	b.WriteString(title)
	b.WriteString("\n")

	if q.Description != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(innerWidth).
			Render(q.Description))
		b.WriteString("\n")
	}
	if q.Optional {
		b.WriteString(theme.Hint.Render("необязательный вопрос"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch q.Kind {
	case catalog.Single:
		b.WriteString(s.choice.View())
	case catalog.Multiple:
		b.WriteString(s.multi.View())
	default:
		b.WriteString(s.input.View())
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.InlineError.Render(s.errMsg))
	}

	card := theme.Card.Width(cardWidth).Render(b.String())

	bar := components.ProgressBar{
		Percent: float64(s.eng.Index()+1) / float64(s.eng.Len()),
		Width:   cardWidth,
	}
	content := lipgloss.JoinVertical(lipgloss.Left, card, "", bar.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
