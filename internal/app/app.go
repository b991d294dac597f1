// Package app is the root Bubble Tea model: it owns the active screen,
// attaches the Telegram identity once, and reacts to the cross-screen
// lifecycle messages.
package app

import (
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nasigu/diagquiz/internal/engine"
	"github.com/nasigu/diagquiz/internal/screen"
	"github.com/nasigu/diagquiz/internal/screens/complete"
	"github.com/nasigu/diagquiz/internal/screens/question"
	"github.com/nasigu/diagquiz/internal/screens/welcome"
	"github.com/nasigu/diagquiz/internal/store"
	"github.com/nasigu/diagquiz/internal/telegram"
	"github.com/nasigu/diagquiz/internal/ui/layout"
	"github.com/nasigu/diagquiz/internal/ui/theme"
)

// Options assembles the app's dependencies.
type Options struct {
	Store     *store.Store
	Submitter engine.Submitter
	Detector  telegram.Detector
	UserAgent string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	active screen.Screen
	width  int
	height int
	fatal  string
}

// newAppModel loads the session and picks the initial screen: the
// completion screen when a finished session is found, else the welcome.
func newAppModel(opts Options) AppModel {
	state := opts.Store.Load()

	if opts.Detector != nil && state.TelegramUser == nil {
		if info, ok := opts.Detector.Detect(); ok {
			opts.Store.SetTelegramUser(info)
			state = opts.Store.State()
		}
	}

	m := AppModel{opts: opts}
	if state.Completed {
		m.active = complete.New(opts.Store, opts.UserAgent)
	} else {
		m.active = welcome.New(len(state.Answers) > 0)
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case screen.StartQuizMsg:
		return m.startQuiz()

	case screen.QuizDoneMsg:
		m.active = complete.New(m.opts.Store, m.opts.UserAgent)
		return m, m.active.Init()

	case screen.RestartMsg:
		m.opts.Store.Reset()
		m.active = welcome.New(false)
		return m, m.active.Init()
	}

	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)
	return m, cmd
}

func (m AppModel) startQuiz() (tea.Model, tea.Cmd) {
	eng := engine.New(engine.Config{
		Store:     m.opts.Store,
		Submitter: m.opts.Submitter,
		UserAgent: m.opts.UserAgent,
	})
	if err := eng.Start(); err != nil {
		if errors.Is(err, engine.ErrEmptyFlow) {
			m.fatal = "Нет доступных вопросов. Попробуйте сбросить сессию командой diagquiz reset."
			return m, nil
		}
		m.fatal = err.Error()
		return m, nil
	}

	if eng.State() == engine.Completed {
		m.active = complete.New(m.opts.Store, m.opts.UserAgent)
		return m, m.active.Init()
	}

	m.active = question.New(eng, m.opts.Store)
	return m, m.active.Init()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	if m.fatal != "" {
		content := theme.InlineError.Render(m.fatal)
		v.SetContent(lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content))
		return v
	}

	progress := ""
	if p, ok := m.active.(screen.ProgressProvider); ok {
		if cur, total, ok := p.Progress(); ok {
			progress = fmt.Sprintf("Вопрос %d из %d  ", cur, total)
		}
	}

	header := layout.RenderHeader(m.active.Title(), progress, m.width)

	hints := []layout.KeyHint{}
	if hp, ok := m.active.(screen.KeyHintProvider); ok {
		hints = append(hints, hp.KeyHints()...)
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Выход"})
	footer := layout.RenderFooter(hints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.active.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
