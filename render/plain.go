package render

import (
	"fmt"
	"io"
)

func writePlain[T any](w io.Writer, items []T, s settings) error {
	if s.title != "" {
		if _, err := fmt.Fprintln(w, s.title); err != nil {
			return err
		}
	}
	for _, item := range items {
		var line string
		if str, ok := any(item).(fmt.Stringer); ok {
			line = str.String()
		} else {
			line = fmt.Sprintf("%v", item)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
