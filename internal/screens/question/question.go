package question

import (
	tea "charm.land/bubbletea/v2"

	"github.com/nasigu/diagquiz/internal/catalog"
	"github.com/nasigu/diagquiz/internal/engine"
	"github.com/nasigu/diagquiz/internal/screen"
	"github.com/nasigu/diagquiz/internal/store"
	"github.com/nasigu/diagquiz/internal/ui/components"
	"github.com/nasigu/diagquiz/internal/ui/layout"
	"github.com/nasigu/diagquiz/internal/validate"
)

// QuestionScreen presents the active question and routes answers through
// the navigator.
type QuestionScreen struct {
	eng *engine.Engine
	st  *store.Store

	choice components.Choice
	multi  components.MultiSelect
	input  components.TextInput
	errMsg string
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)
var _ screen.ProgressProvider = (*QuestionScreen)(nil)

// New creates a QuestionScreen over an already-started engine.
func New(eng *engine.Engine, st *store.Store) *QuestionScreen {
	s := &QuestionScreen{eng: eng, st: st}
	s.sync()
	return s
}

func (s *QuestionScreen) Init() tea.Cmd {
	if q, ok := s.eng.Current(); ok && !q.Kind.Choice() {
		return s.input.Init()
	}
	return nil
}

func (s *QuestionScreen) Title() string {
	if q, ok := s.eng.Current(); ok {
		return q.SectionTitle
	}
	return ""
}

// Progress reports the cursor position for the header indicator.
func (s *QuestionScreen) Progress() (current, total int, ok bool) {
	if s.eng.State() != engine.Presenting {
		return 0, 0, false
	}
	return s.eng.Index() + 1, s.eng.Len(), true
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}

	q, ok := s.eng.Current()
	if ok && q.Kind == catalog.Multiple {
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Выбрать"})
	}

	next := "Далее"
	if s.eng.Index() == s.eng.Len()-1 {
		next = "Завершить"
	}
	hints = append(hints, layout.KeyHint{Key: "Enter", Description: next})

	if s.eng.CanGoBack() {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Назад"})
	}
	return hints
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch kmsg.String() {
		case "enter":
			return s.submit()
		case "esc":
			s.eng.Back()
			s.errMsg = ""
			s.sync()
			return s, nil
		}
	}

	// Route everything else to the active component; any edit clears the
	// inline error.
	q, ok := s.eng.Current()
	if !ok {
		return s, nil
	}

	var cmd tea.Cmd
	switch q.Kind {
	case catalog.Single:
		s.choice, cmd = s.choice.Update(msg)
	case catalog.Multiple:
		s.multi, cmd = s.multi.Update(msg)
	default:
		s.input, cmd = s.input.Update(msg)
	}
	if isKey {
		s.errMsg = ""
	}
	return s, cmd
}

func (s *QuestionScreen) submit() (screen.Screen, tea.Cmd) {
	if err := s.eng.Next(s.currentValue()); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	if s.eng.State() == engine.Completed {
		return s, func() tea.Msg { return screen.QuizDoneMsg{} }
	}

	s.errMsg = ""
	s.sync()
	return s, s.Init()
}

// currentValue reads the active component into an answer value. A phone
// field holding only the seed counts as no answer.
func (s *QuestionScreen) currentValue() catalog.Value {
	q, ok := s.eng.Current()
	if !ok {
		return catalog.Value{}
	}

	switch q.Kind {
	case catalog.Single:
		return catalog.SingleValue(s.choice.Value())
	case catalog.Multiple:
		return catalog.MultiValue(s.multi.Value())
	}

	text := s.input.Value()
	if q.ID == validate.PhoneQuestionID {
		canon := validate.CanonicalPhone(text)
		if canon == validate.PhoneSeed || canon == "+" {
			canon = ""
		}
		return catalog.SingleValue(canon)
	}
	return catalog.SingleValue(text)
}

// sync rebuilds the input component for the current question, restoring
// any previously recorded answer.
func (s *QuestionScreen) sync() {
	q, ok := s.eng.Current()
	if !ok {
		return
	}

	prior, _ := s.st.GetAnswer(q.ID)

	switch q.Kind {
	case catalog.Single:
		s.choice = components.NewChoice(q.Options, prior.Value.Text)
	case catalog.Multiple:
		s.multi = components.NewMultiSelect(q.Options, prior.Value.List)
	default:
		initial := prior.Value.Text
		var shape components.ShapeFunc
		if q.ID == validate.PhoneQuestionID {
			shape = validate.ShapePhone
			if initial == "" {
				initial = validate.PhoneSeed
			} else {
				initial = validate.FormatPhone(initial)
			}
		}
		s.input = components.NewTextInput(q.Placeholder, initial, shape)
	}
}
