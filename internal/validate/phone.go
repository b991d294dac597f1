package validate

import "strings"

// PhoneSeed is the initial content of the shaped phone field; the leading
// marker is mandatory and edits removing it are rejected.
const PhoneSeed = "+7"

// ShapePhone applies the phone-field input rule to a proposed edit. Edits
// that would drop the leading marker are rejected and the previous value
// stands; accepted edits are reformatted to the canonical grouped display
// +7 (XXX) XXX-XX-XX, partially filled while the user is still typing.
func ShapePhone(prev, proposed string) (string, bool) {
	if !strings.HasPrefix(proposed, "+") {
		return prev, false
	}
	return FormatPhone(proposed), true
}

// FormatPhone renders a marker-prefixed value in grouped display form.
func FormatPhone(s string) string {
	digits := digitsOf(s)
	if digits == "" {
		return "+"
	}

	country := digits[:1]
	rest := digits[1:]
	if len(rest) > 10 {
		rest = rest[:10]
	}

	var b strings.Builder
	b.WriteString("+")
	b.WriteString(country)
	if len(rest) > 0 {
		b.WriteString(" (")
		b.WriteString(rest[:min(3, len(rest))])
	}
	if len(rest) > 3 {
		b.WriteString(") ")
		b.WriteString(rest[3:min(6, len(rest))])
	}
	if len(rest) > 6 {
		b.WriteString("-")
		b.WriteString(rest[6:min(8, len(rest))])
	}
	if len(rest) > 8 {
		b.WriteString("-")
		b.WriteString(rest[8:])
	}
	return b.String()
}

// CanonicalPhone strips a shaped value to the persisted form: every
// non-numeric character removed except the single leading marker.
func CanonicalPhone(s string) string {
	digits := digitsOf(s)
	if strings.HasPrefix(strings.TrimSpace(s), "+") {
		return "+" + digits
	}
	return digits
}

func digitsOf(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
