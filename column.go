package lenscan

import "fmt"

// Column is a resolved target column. It is only meaningful for the header
// it was resolved against.
type Column struct {
	Name  string
	Index int
}

// ResolveColumn returns the position of the first header field whose
// normalized value equals name exactly (case-sensitive).
func ResolveColumn(header []string, name string) (Column, error) {
	for i, h := range header {
		if Normalize(h) == name {
			return Column{Name: name, Index: i}, nil
		}
	}
	return Column{}, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}
