package lenscan

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultSeparators are the auto-detection candidates in priority order.
var DefaultSeparators = []rune{',', ';', '\t', '|'}

// DetectSeparator picks the candidate that occurs most often in the header
// line. Ties go to the earlier candidate and a header with none of them
// falls back to comma. With no candidates, [DefaultSeparators] is used.
func DetectSeparator(header string, candidates ...rune) rune {
	if len(candidates) == 0 {
		candidates = DefaultSeparators
	}
	best, bestCount := ',', 0
	for _, c := range candidates {
		if n := strings.Count(header, string(c)); n > bestCount {
			best, bestCount = c, n
		}
	}
	return best
}

// ParseSeparator parses a --separator value. "auto" and the empty string
// ask for detection and return 0. "tab" and `\t` mean a tab; anything else
// must be exactly one character other than a quote or line break.
func ParseSeparator(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("%w: separator %q must be a single character", ErrInvalidArgument, s)
	}
	switch r {
	case '"', '\n', '\r':
		return 0, fmt.Errorf("%w: separator %q is not allowed", ErrInvalidArgument, s)
	}
	return r, nil
}

// SeparatorName is the human spelling of a separator for logs and errors.
func SeparatorName(sep rune) string {
	if sep == '\t' {
		return "tab"
	}
	return string(sep)
}
