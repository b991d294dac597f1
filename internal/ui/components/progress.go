package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nasigu/diagquiz/internal/ui/theme"
)

// ProgressBar displays a horizontal completion bar.
type ProgressBar struct {
	Percent float64
	Width   int
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	barWidth := p.Width
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(theme.Accent).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	return filledStr + emptyStr
}
