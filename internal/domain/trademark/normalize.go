package trademark

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes a free-text name into a comparable form: the input
// is lower-cased, every character that is not a letter, digit, or whitespace
// becomes a single space, runs of whitespace collapse to one space, and
// leading/trailing whitespace is trimmed.
//
// Normalize is pure, total, and idempotent; an empty input maps to "".
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
