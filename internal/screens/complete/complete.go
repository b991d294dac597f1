package complete

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nasigu/diagquiz/internal/export"
	"github.com/nasigu/diagquiz/internal/screen"
	"github.com/nasigu/diagquiz/internal/store"
	"github.com/nasigu/diagquiz/internal/ui/layout"
	"github.com/nasigu/diagquiz/internal/ui/theme"
)

// CompleteScreen thanks the respondent and offers export and restart.
type CompleteScreen struct {
	st        *store.Store
	userAgent string

	exportMsg string
	exportErr bool
}

var _ screen.Screen = (*CompleteScreen)(nil)
var _ screen.KeyHintProvider = (*CompleteScreen)(nil)

// New creates a CompleteScreen over the finished session.
func New(st *store.Store, userAgent string) *CompleteScreen {
	return &CompleteScreen{st: st, userAgent: userAgent}
}

func (c *CompleteScreen) Init() tea.Cmd {
	return nil
}

func (c *CompleteScreen) Title() string {
	return "Готово"
}

func (c *CompleteScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "E", Description: "Сохранить результаты"},
		{Key: "R", Description: "Пройти заново"},
	}
}

func (c *CompleteScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "e", "E":
		c.export()
		return c, nil
	case "r", "R":
		return c, func() tea.Msg { return screen.RestartMsg{} }
	}
	return c, nil
}

func (c *CompleteScreen) export() {
	path, err := export.Write(".", c.st.Export(c.userAgent))
	if err != nil {
		c.exportMsg = fmt.Sprintf("Не удалось сохранить файл: %v", err)
		c.exportErr = true
		return
	}
	c.exportMsg = "Результаты сохранены: " + path
	c.exportErr = false
}

func (c *CompleteScreen) View(width, height int) string {
	var sections []string

	check := lipgloss.NewStyle().
		Foreground(theme.Success).
		Bold(true).
		Render("✓")
	sections = append(sections, check)
	sections = append(sections, "")

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Диагностика завершена!"))
	sections = append(sections, "")

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Render("Спасибо за ваши ответы."))
	sections = append(sections, "")

	next := strings.Join([]string{
		"Что дальше:",
		"• Мы проанализируем ваши ответы",
		"• Подготовим персональные рекомендации",
		"• Свяжемся с вами в течение 1-2 рабочих дней",
	}, "\n")
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(next))

	if c.exportMsg != "" {
		sections = append(sections, "")
		style := lipgloss.NewStyle().Foreground(theme.Success)
		if c.exportErr {
			style = theme.InlineError
		}
		sections = append(sections, style.Render(c.exportMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
