// Package validator holds the form rules. Failures are reported per field
// so the UI can render them inline; the values are message-catalog keys,
// translated by i18n in the active display language.
package validator

import (
	"regexp"
	"strings"
	"unicode"
)

// FieldErrors maps a form field name to a message-catalog key. Empty means
// the input passed.
type FieldErrors map[string]string

func (e FieldErrors) Valid() bool { return len(e) == 0 }

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func isEmailLike(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// digitCount ignores separators so "+994 50 123 45 67" counts its digits.
func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

func runeLen(s string) int {
	return len([]rune(strings.TrimSpace(s)))
}
