// Package validate holds the per-question acceptance rules gating forward
// navigation, plus the phone-field input shaping. Messages are user-facing
// inline text in the catalog's locale.
package validate

import (
	"errors"
	"regexp"
	"strings"

	"github.com/nasigu/diagquiz/internal/catalog"
)

// Question ids carrying extra format rules.
const (
	EmailQuestionID = "contact_email"
	PhoneQuestionID = "contact_phone"
)

var (
	ErrRequiredChoice = errors.New("Выберите хотя бы один вариант")
	ErrRequiredText   = errors.New("Это поле обязательно для заполнения")
	ErrBadEmail       = errors.New("Введите корректный email, например example@company.com")
	ErrBadPhone       = errors.New("Введите корректный номер телефона, например +7 (900) 123-45-67")
)

// Conservative email shape: non-empty local part, non-empty domain, a TLD.
var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9][A-Za-z0-9.\-]*\.[A-Za-z]{2,}$`)

// Answer reports whether the value is acceptable for the question. A nil
// return permits forward navigation.
func Answer(q catalog.Question, v catalog.Value) error {
	if q.Kind.Choice() {
		if q.Required() && v.Empty() {
			return ErrRequiredChoice
		}
		return nil
	}

	text := strings.TrimSpace(v.Text)
	if text == "" {
		if q.Required() {
			return ErrRequiredText
		}
		// Optional text left empty is always acceptable.
		return nil
	}

	switch q.ID {
	case EmailQuestionID:
		if !emailRe.MatchString(text) {
			return ErrBadEmail
		}
	case PhoneQuestionID:
		if !validPhone(text) {
			return ErrBadPhone
		}
	}
	return nil
}

// validPhone accepts an optional +7/7/8 country marker, optional space,
// dash, dot or paren separators, and exactly 10 subscriber digits.
func validPhone(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	// Separators carry no meaning; only the marker and digits do.
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		}
		return r
	}, s)

	digits := cleaned
	if strings.HasPrefix(cleaned, "+") {
		if !strings.HasPrefix(cleaned, "+7") {
			return false
		}
		digits = cleaned[2:]
	} else if strings.HasPrefix(cleaned, "7") || strings.HasPrefix(cleaned, "8") {
		digits = cleaned[1:]
	}

	if len(digits) != 10 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
