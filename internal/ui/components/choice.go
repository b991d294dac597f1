package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/nasigu/diagquiz/internal/ui/theme"
)

// Choice is a single-select option list.
type Choice struct {
	Options []string
	Cursor  int
}

// NewChoice creates a single-select list, pre-positioned on the previously
// chosen option when one is given.
func NewChoice(options []string, chosen string) Choice {
	c := Choice{Options: options}
	for i, opt := range options {
		if opt == chosen {
			c.Cursor = i
			break
		}
	}
	return c
}

// Update handles cursor movement.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	}
	return c, nil
}

// Value returns the option under the cursor.
func (c Choice) Value() string {
	if c.Cursor < 0 || c.Cursor >= len(c.Options) {
		return ""
	}
	return c.Options[c.Cursor]
}

// View renders the option list.
func (c Choice) View() string {
	var s string
	for i, opt := range c.Options {
		if i == c.Cursor {
			s += theme.Selected.Render("▸ ● "+opt) + "\n"
		} else {
			s += theme.Unselected.Render("  ○ "+opt) + "\n"
		}
	}
	return s
}
