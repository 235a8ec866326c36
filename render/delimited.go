package render

import (
	"fmt"
	"io"
	"strings"
)

func writeDelimited[T any](w io.Writer, items []T, s settings) error {
	body, err := rows(Delimited, items)
	if err != nil {
		return err
	}
	sep := string(s.sep)
	if len(s.header) > 0 {
		if _, err := fmt.Fprintln(w, strings.Join(s.header, sep)); err != nil {
			return err
		}
	}
	for _, row := range body {
		if _, err := fmt.Fprintln(w, strings.Join(row, sep)); err != nil {
			return err
		}
	}
	return nil
}
