package render

import (
	"fmt"
	"io"
	"strings"
)

func writeMarkdown[T any](w io.Writer, items []T, s settings) error {
	body, err := rows(Markdown, items)
	if err != nil {
		return err
	}
	if len(s.header) == 0 {
		return fmt.Errorf("%w: format %q needs a header row", ErrMissingHeader, Markdown)
	}

	for i, row := range body {
		body[i] = escapeRow(row)
	}
	// Cells past the header get a blank heading rather than being dropped.
	numCols := colCount(s.header, body)
	header := make([]string, numCols)
	copy(header, escapeRow(s.header))

	// Minimum width 3 leaves room for alignment markers.
	widths := computeWidths(numCols, header, body)
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}
	aligns := extendAligns(s.aligns, numCols)

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}

	sep := make([]string, numCols)
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range body {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cellAt(cells, i), width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

// escapeRow keeps a literal pipe from splitting a cell.
func escapeRow(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return out
}
