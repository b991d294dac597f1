package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/nasigu/diagquiz/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the text shown in the header center.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// ProgressProvider is an optional interface for screens that expose a
// position within the question flow, shown in the header.
type ProgressProvider interface {
	Progress() (current, total int, ok bool)
}

// StartQuizMsg asks the app to leave the welcome screen and begin (or
// resume) the question flow.
type StartQuizMsg struct{}

// QuizDoneMsg announces that the final question was answered.
type QuizDoneMsg struct{}

// RestartMsg asks the app to erase the session and return to the welcome
// screen.
type RestartMsg struct{}
