package lenscan

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Read loads the whole input into memory, dropping a leading UTF-8 byte
// order mark.
func Read(r io.Reader) (string, error) {
	b, err := io.ReadAll(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}

// ReadFile is [Read] for a path. A missing path wraps [ErrFileNotFound].
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// IsJSON reports whether text looks like JSON input: its first
// non-whitespace character opens an array or an object.
func IsJSON(text string) bool {
	t := strings.TrimLeft(text, " \t\r\n")
	return strings.HasPrefix(t, "[") || strings.HasPrefix(t, "{")
}

// Row is one data line split into raw fields. Line is 1-based and counts
// the header as line 1.
type Row struct {
	Line   int
	Fields []string
}

// Table is delimited input: the raw header fields, the separator in use and
// every non-empty data line after the header.
type Table struct {
	Header []string
	Sep    rune
	Rows   []Row
}

// ParseTable splits text into header and rows. A sep of 0 detects the
// separator from the header line. Blank lines (empty, or only spaces and
// tabs that are not the separator) are dropped but still count toward line
// numbers. Input without a header line yields an empty Table.
func ParseTable(text string, sep rune) *Table {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	if len(lines) == 0 {
		if sep == 0 {
			sep = ','
		}
		return &Table{Sep: sep}
	}

	if sep == 0 {
		sep = DetectSeparator(lines[0])
	}
	t := &Table{
		Header: Split(lines[0], sep),
		Sep:    sep,
		Rows:   make([]Row, 0, len(lines)-1),
	}
	for i, l := range lines[1:] {
		if blank(l, sep) {
			continue
		}
		t.Rows = append(t.Rows, Row{Line: i + 2, Fields: Split(l, sep)})
	}
	return t
}

// Names returns the normalized header.
func (t *Table) Names() []string {
	names := make([]string, len(t.Header))
	for i, h := range t.Header {
		names[i] = Normalize(h)
	}
	return names
}

// Values yields the line number and normalized target value of every row
// that is wide enough to hold col. Narrower rows are skipped.
func (t *Table) Values(col Column) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for _, r := range t.Rows {
			if col.Index >= len(r.Fields) {
				continue
			}
			if !yield(r.Line, Normalize(r.Fields[col.Index])) {
				return
			}
		}
	}
}

// Short counts the rows [Table.Values] skips for col.
func (t *Table) Short(col Column) int {
	n := 0
	for _, r := range t.Rows {
		if col.Index >= len(r.Fields) {
			n++
		}
	}
	return n
}

// blank reports whether line holds nothing but cell padding.
func blank(line string, sep rune) bool {
	return strings.TrimFunc(line, func(r rune) bool {
		return r != sep && strings.ContainsRune(cellSpace, r)
	}) == ""
}
