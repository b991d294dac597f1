// Package catalog holds the static question catalog for the business
// diagnostic: seven ordered sections plus the B2B/B2C branch lists spliced
// into the commerce section. The catalog is read-only; visibility is decided
// at build time by evaluating each condition against recorded answers.
package catalog

import (
	"encoding/json"
	"fmt"
)

// QuestionKind identifies the answer widget and value shape of a question.
type QuestionKind string

const (
	Single   QuestionKind = "single"   // one option from a list
	Multiple QuestionKind = "multiple" // any subset of a list
	Text     QuestionKind = "text"     // one line of free text
	Textarea QuestionKind = "textarea" // multi-line free text
)

// Choice reports whether the kind carries an options list.
func (k QuestionKind) Choice() bool {
	return k == Single || k == Multiple
}

// Condition gates a question or section on a previously recorded answer.
// It matches against the literal option label text, exactly as authored.
type Condition struct {
	QuestionID string
	Values     []string
}

// SatisfiedBy evaluates the condition against a recorded answer.
// Unanswered targets never satisfy a condition. A single-valued answer must
// be one of the listed values; a multi-valued answer must intersect them.
func (c Condition) SatisfiedBy(v Value, answered bool) bool {
	if !answered {
		return false
	}
	if v.IsMulti() {
		for _, want := range c.Values {
			for _, got := range v.List {
				if got == want {
					return true
				}
			}
		}
		return false
	}
	for _, want := range c.Values {
		if v.Text == want {
			return true
		}
	}
	return false
}

// Lookup resolves the recorded answer for a question id.
type Lookup func(questionID string) (Value, bool)

// Question is one catalog entry. The zero Optional value means required,
// mirroring the original data where required defaulted on.
type Question struct {
	ID          string
	Kind        QuestionKind
	Title       string
	Description string
	Options     []string
	Placeholder string
	Optional    bool
	Condition   *Condition
}

// Required reports whether an answer must be present to advance.
func (q Question) Required() bool {
	return !q.Optional
}

// Section is an ordered group of questions, optionally gated as a whole.
type Section struct {
	ID          string
	Title       string
	Description string
	Questions   []Question
	Condition   *Condition
}

// Value is a recorded answer: a single string for single/text kinds, an
// ordered list for multiple kinds. Its JSON form is a bare string or a
// string array, matching the durable slot schema.
type Value struct {
	Text string
	List []string
}

// SingleValue wraps a single-valued answer.
func SingleValue(s string) Value {
	return Value{Text: s}
}

// MultiValue wraps a multi-valued answer. A nil slice is normalized to an
// empty one so the value still marshals as an array.
func MultiValue(list []string) Value {
	if list == nil {
		list = []string{}
	}
	return Value{List: list}
}

// IsMulti reports whether the value is multi-valued.
func (v Value) IsMulti() bool {
	return v.List != nil
}

// Empty reports whether the value carries no selection or text.
func (v Value) Empty() bool {
	if v.IsMulti() {
		return len(v.List) == 0
	}
	return v.Text == ""
}

// MarshalJSON encodes the value as a bare string or a string array.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsMulti() {
		return json.Marshal(v.List)
	}
	return json.Marshal(v.Text)
}

// UnmarshalJSON decodes either JSON form.
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Value{Text: s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("answer value must be a string or string array: %w", err)
	}
	*v = MultiValue(list)
	return nil
}
