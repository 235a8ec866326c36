package lenscan

import (
	"strings"
	"unicode/utf8"
)

// cellSpace is the whitespace trimmed from cell edges.
const cellSpace = " \t"

// Normalize returns the logical value of a raw field: one pair of enclosing
// double quotes is stripped, then surrounding spaces and tabs are trimmed.
// Internal quotes are left alone ("" is not unescaped).
//
// The two steps repeat until the value stops changing, so Normalize is
// idempotent: ` "a" ` and `""a""` both become `a`.
func Normalize(s string) string {
	for {
		n := normalizeOnce(s)
		if n == s {
			return n
		}
		s = n
	}
}

func normalizeOnce(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return strings.Trim(s, cellSpace)
}

// Length is the number of characters (runes) in s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}
