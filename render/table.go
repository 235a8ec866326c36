package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
}

func writeTable[T any](w io.Writer, items []T, s settings) error {
	body, err := rows(Table, items)
	if err != nil {
		return err
	}
	if len(body) == 0 && len(s.header) == 0 {
		return nil
	}

	numCols := colCount(s.header, body)
	widths := computeWidths(numCols, s.header, body)
	aligns := extendAligns(s.aligns, numCols)

	if s.border == BorderNone {
		return renderPlainTable(w, s.title, s.header, body, widths, aligns)
	}
	return renderBorderedTable(w, s.title, s.header, body, widths, aligns, borderSets[s.border])
}

// colCount is the widest of the header and every row.
func colCount(header []string, rows [][]string) int {
	n := len(header)
	for _, row := range rows {
		n = max(n, len(row))
	}
	return n
}

// cellAt is cells[i], or "" past the end of a short row.
func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

// computeWidths measures every column in terminal cells.
func computeWidths(numCols int, header []string, rows [][]string) []int {
	widths := make([]int, numCols)
	measure := func(cells []string) {
		for i, cell := range cells[:min(len(cells), numCols)] {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}
	return widths
}

func extendAligns(aligns []Alignment, numCols int) []Alignment {
	if len(aligns) >= numCols {
		return aligns[:numCols]
	}
	extended := make([]Alignment, numCols)
	copy(extended, aligns)
	return extended
}

// alignCell pads s with spaces to width. Wider strings are returned as is.
func alignCell(s string, width int, align Alignment) string {
	pad := max(width-runewidth.StringWidth(s), 0)
	left := 0
	switch align {
	case AlignRight:
		left = pad
	case AlignCenter:
		left = pad / 2
	}
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// --- Plain table (BorderNone) ---

func renderPlainTable(w io.Writer, title string, header []string, rows [][]string, widths []int, aligns []Alignment) error {
	var lines []string
	if title != "" {
		lines = append(lines, title)
	}
	if len(header) > 0 {
		dashes := make([]string, len(widths))
		for i, n := range widths {
			dashes[i] = strings.Repeat("-", n)
		}
		lines = append(lines, plainRow(header, widths, aligns), strings.Join(dashes, "  "))
	}
	for _, row := range rows {
		lines = append(lines, plainRow(row, widths, aligns))
	}
	return writeLines(w, lines)
}

func plainRow(cells []string, widths []int, aligns []Alignment) string {
	parts := make([]string, len(widths))
	for i, n := range widths {
		parts[i] = alignCell(cellAt(cells, i), n, aligns[i])
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

func writeLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

// --- Bordered table ---

// ruleKind picks the corner and junction characters of a horizontal rule.
type ruleKind int

const (
	ruleTop      ruleKind = iota // above the header
	ruleTitleTop                 // above a title: no column junctions
	ruleUnder                    // below a title
	ruleMiddle                   // between header and body
	ruleBottom
)

func (bc borderChars) rule(kind ruleKind, widths []int) string {
	left, mid, right := bc.topLeft, bc.topTee, bc.topRight
	switch kind {
	case ruleTitleTop:
		mid = bc.horizontal
	case ruleUnder:
		left, right = bc.leftTee, bc.rightTee
	case ruleMiddle:
		left, mid, right = bc.leftTee, bc.cross, bc.rightTee
	case ruleBottom:
		left, mid, right = bc.bottomLeft, bc.bottomTee, bc.bottomRight
	}
	segs := make([]string, len(widths))
	for i, n := range widths {
		segs[i] = strings.Repeat(bc.horizontal, n+2)
	}
	return left + strings.Join(segs, mid) + right
}

func (bc borderChars) row(cells []string, widths []int, aligns []Alignment) string {
	segs := make([]string, len(widths))
	for i, n := range widths {
		segs[i] = " " + alignCell(cellAt(cells, i), n, aligns[i]) + " "
	}
	return bc.vertical + strings.Join(segs, bc.vertical) + bc.vertical
}

func renderBorderedTable(w io.Writer, title string, header []string, rows [][]string, widths []int, aligns []Alignment, bc borderChars) error {
	var lines []string
	if title != "" {
		inner := tableInnerWidth(widths) - 2
		lines = append(lines,
			bc.rule(ruleTitleTop, widths),
			bc.vertical+" "+alignCell(title, inner, AlignCenter)+" "+bc.vertical,
			bc.rule(ruleUnder, widths),
		)
	} else {
		lines = append(lines, bc.rule(ruleTop, widths))
	}
	if len(header) > 0 {
		lines = append(lines, bc.row(header, widths, aligns), bc.rule(ruleMiddle, widths))
	}
	for _, r := range rows {
		lines = append(lines, bc.row(r, widths, aligns))
	}
	lines = append(lines, bc.rule(ruleBottom, widths))
	return writeLines(w, lines)
}

// tableInnerWidth is the width between the outer borders: each column plus
// its padding, and one junction between neighbours.
func tableInnerWidth(widths []int) int {
	n := max(len(widths)-1, 0)
	for _, width := range widths {
		n += width + 2
	}
	return n
}
