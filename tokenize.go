package lenscan

import "strings"

// Split breaks one line into raw fields on every occurrence of sep.
// There is no quoting or escaping: a separator inside a quoted field still
// splits it. Consecutive separators yield empty fields and a trailing
// separator yields a trailing empty field.
func Split(line string, sep rune) []string {
	return strings.Split(line, string(sep))
}

// Join is the inverse of [Split] for fields that do not contain sep.
func Join(fields []string, sep rune) string {
	return strings.Join(fields, string(sep))
}
