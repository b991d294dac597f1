package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nasigu/diagquiz/internal/screen"
	"github.com/nasigu/diagquiz/internal/ui/layout"
	"github.com/nasigu/diagquiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 400 * time.Millisecond
	phase2End    = 1200 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

const logoArt = `   ∞ ∞ ∞
  ∞     ∞
 ∞   ∞   ∞
  ∞     ∞
   ∞ ∞ ∞`

// sparkle frames cycle around the logo
var sparkleFrames = []string{"✦", "✧"}

type tickMsg time.Time

// WelcomeScreen shows the diagnostic intro before the first question.
type WelcomeScreen struct {
	resume       bool
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. resume changes the call to action when a
// prior session with recorded answers exists.
func New(resume bool) *WelcomeScreen {
	return &WelcomeScreen{resume: resume}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	label := "Начать диагностику"
	if w.resume {
		label = "Продолжить"
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: label},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			return w, w.transition()
		}
		return w, nil
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	return func() tea.Msg {
		return screen.StartQuizMsg{}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	logoStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	rendered := logoStyle.Render(logoArt)

	// Phase 1+: sparkles around the logo
	if w.elapsed >= phase1End {
		frame := w.tickCount % len(sparkleFrames)
		sparkle := sparkleFrames[frame]

		accentStyle := lipgloss.NewStyle().Foreground(theme.Accent)
		secondaryStyle := lipgloss.NewStyle().Foreground(theme.Secondary)

		s1 := accentStyle.Render(sparkle)
		s2 := secondaryStyle.Render(sparkle)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 0 {
			lines[0] = s1 + "  " + lines[0] + "  " + s2
		}
		if len(lines) > 4 {
			lines[4] = s2 + "  " + lines[4] + "  " + s1
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	// Phase 2+: banner + intro text
	if w.elapsed >= phase2End {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(width))
		sections = append(sections, "")

		greeting := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Добро пожаловать в диагностику вашего бизнеса")
		sections = append(sections, greeting)
		sections = append(sections, "")

		intro := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Ответьте на несколько вопросов, и мы подготовим для вас\nперсональные рекомендации по автоматизации.")
		sections = append(sections, intro)
		sections = append(sections, "")

		features := lipgloss.JoinHorizontal(
			lipgloss.Top,
			renderFeature("⚡", "Быстро", "5-7 минут"),
			"   ",
			renderFeature("◎", "Точно", "Вопросы под ваш бизнес"),
			"   ",
			renderFeature("▲", "Эффективно", "Конкретные решения"),
		)
		sections = append(sections, features)
		sections = append(sections, "")

		cta := "нажмите Enter, чтобы начать"
		if w.resume {
			cta = "нажмите Enter, чтобы продолжить с места остановки"
		}
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render(cta)
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderFeature(icon, name, detail string) string {
	return theme.Card.Render(
		lipgloss.JoinVertical(
			lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(icon),
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(name),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail),
		),
	)
}
