package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/nasigu/diagquiz/internal/ui/theme"
)

// MultiSelect is a checkbox option list; space toggles, order of selection
// is preserved in the value.
type MultiSelect struct {
	Options []string
	Cursor  int
	checked []string
}

// NewMultiSelect creates a checkbox list with prior selections restored.
func NewMultiSelect(options, chosen []string) MultiSelect {
	m := MultiSelect{Options: options}
	for _, c := range chosen {
		for _, opt := range options {
			if opt == c {
				m.checked = append(m.checked, c)
				break
			}
		}
	}
	return m
}

// Update handles cursor movement and toggling.
func (m MultiSelect) Update(msg tea.Msg) (MultiSelect, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "space", " ":
		m.toggle(m.Options[m.Cursor])
	}
	return m, nil
}

func (m *MultiSelect) toggle(opt string) {
	for i, c := range m.checked {
		if c == opt {
			m.checked = append(m.checked[:i], m.checked[i+1:]...)
			return
		}
	}
	m.checked = append(m.checked, opt)
}

// IsChecked reports whether an option is selected.
func (m MultiSelect) IsChecked(opt string) bool {
	for _, c := range m.checked {
		if c == opt {
			return true
		}
	}
	return false
}

// Value returns the selected options in the order they were checked.
func (m MultiSelect) Value() []string {
	return append([]string(nil), m.checked...)
}

// View renders the checkbox list.
func (m MultiSelect) View() string {
	var s string
	for i, opt := range m.Options {
		box := "☐"
		style := theme.Unselected
		if m.IsChecked(opt) {
			box = "☑"
			style = theme.Checked
		}
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
			if !m.IsChecked(opt) {
				style = theme.Selected
			}
		}
		s += style.Render(prefix+box+" "+opt) + "\n"
	}
	return s
}
