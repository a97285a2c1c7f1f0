// Package normalize implements the keyword normalization rule shared
// by indexing and querying: lower-case, with leading and trailing runs
// of non-alphanumeric runes stripped. Interior characters, including
// spaces inside multi-word phrases, are preserved untouched.
package normalize

import (
	"strings"
	"unicode"
)

func isEdgeRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// Keyword normalizes a single raw token or phrase per spec.
func Keyword(s string) string {
	trimmed := strings.TrimFunc(s, isEdgeRune)
	return strings.ToLower(trimmed)
}

// Fields splits s on whitespace and normalizes each resulting field,
// dropping any that become empty.
func Fields(s string) []string {
	raw := strings.Fields(s)
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		if n := Keyword(w); n != "" {
			out = append(out, n)
		}
	}
	return out
}
