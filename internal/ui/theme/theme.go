package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — the agency's purple-to-pink gradient brand on dark
var (
	Primary   = lipgloss.Color("#A855F7") // Purple
	Secondary = lipgloss.Color("#6366F1") // Indigo
	Accent    = lipgloss.Color("#EC4899") // Pink
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#13111C") // Near-black purple
	BgCard    = lipgloss.Color("#1E1B2E") // Dark violet
	Border    = lipgloss.Color("#3B3350") // Muted violet
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	InlineError = lipgloss.NewStyle().
			Foreground(Error)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Checked = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)
