package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// ShapeFunc filters a proposed edit: it returns the value to display and
// whether the edit was accepted. Rejected edits restore the prior value.
type ShapeFunc func(prev, proposed string) (string, bool)

// TextInput wraps bubbles/textinput with optional input shaping.
type TextInput struct {
	Model textinput.Model
	Shape ShapeFunc

	prev string
}

// NewTextInput creates a focused text input with the given placeholder and
// initial value.
func NewTextInput(placeholder, initial string, shape ShapeFunc) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(initial)
	ti.Focus()
	ti.CursorEnd()

	return TextInput{Model: ti, Shape: shape, prev: initial}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages, applying the shape rule after every edit.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)

	if t.Shape != nil {
		proposed := t.Model.Value()
		if proposed != t.prev {
			shaped, ok := t.Shape(t.prev, proposed)
			if !ok {
				shaped = t.prev
			}
			if shaped != proposed {
				t.Model.SetValue(shaped)
				t.Model.CursorEnd()
			}
			if ok {
				t.prev = shaped
			}
		}
	} else {
		t.prev = t.Model.Value()
	}
	return t, cmd
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// View renders the text input.
func (t TextInput) View() string {
	return t.Model.View()
}
