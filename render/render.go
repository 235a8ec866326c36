package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMissingInterface  = errors.New("missing required interface")
	ErrMissingHeader     = errors.New("missing header")
)

// Format represents an output format.
type Format string

const (
	Table      Format = "table"
	Delimited  Format = "delimited"
	Structured Format = "structured"
	YAML       Format = "yaml"
	JSONL      Format = "jsonl"
	Markdown   Format = "markdown"
	Plain      Format = "plain"
)

var formats = []Format{Table, Delimited, Structured, YAML, JSONL, Markdown, Plain}

// aliases maps familiar names onto the canonical formats.
var aliases = map[string]Format{
	"json": Structured,
	"csv":  Delimited,
	"text": Plain,
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names. Aliases are not included.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string. Matching is case-insensitive and
// accepts the aliases json (structured), csv (delimited) and text (plain).
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, f := range formats {
		if string(f) == name {
			return f, nil
		}
	}
	if f, ok := aliases[name]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedFormat, s, joinFormats())
}

func joinFormats() string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// --- Core Format Interfaces ---

// Rower provides row data. Required for Table, Delimited and Markdown.
type Rower interface {
	Row() []string
}

// --- Optional Interfaces ---

// Headed provides column headers. A [WithHeader] option takes precedence.
type Headed interface {
	Header() []string
}

// Separated controls the field separator of Delimited output.
// Default: comma. A [WithSeparator] option takes precedence.
type Separated interface {
	Separator() rune
}

// Aligned sets per-column alignment for Table and Markdown.
// Default: AlignLeft.
type Aligned interface {
	Alignments() []Alignment
}

// --- Value Types ---

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderNone    BorderStyle = iota // header, dashed rule, space-separated columns
	BorderASCII                      // +-+|
	BorderRounded                    // ╭─╮╰╯│┬┴├┤┼
)

var borderNames = map[string]BorderStyle{
	"none":    BorderNone,
	"ascii":   BorderASCII,
	"rounded": BorderRounded,
}

// ParseBorder parses a border style name: none, ascii or rounded.
func ParseBorder(s string) (BorderStyle, error) {
	if b, ok := borderNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return b, nil
	}
	return BorderNone, fmt.Errorf("%w: border %q (want none, ascii or rounded)", ErrUnsupportedFormat, s)
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// --- Options ---

// Option adjusts a single Write call.
type Option func(*settings)

type settings struct {
	header []string
	sep    rune
	title  string
	border BorderStyle
	aligns []Alignment
}

// WithHeader sets the column headers, overriding [Headed].
// It also supplies the header when there are no items to ask.
func WithHeader(header []string) Option {
	return func(s *settings) { s.header = header }
}

// WithSeparator sets the Delimited field separator, overriding [Separated].
func WithSeparator(sep rune) Option {
	return func(s *settings) {
		if sep != 0 {
			s.sep = sep
		}
	}
}

// WithTitle renders a line above Table and Plain output.
func WithTitle(title string) Option {
	return func(s *settings) { s.title = title }
}

// WithBorder selects the Table border style. Default: BorderNone.
func WithBorder(b BorderStyle) Option {
	return func(s *settings) { s.border = b }
}

// resolve collects settings from the first item (or the zero value of T
// when there are none) and then applies opts on top.
func resolve[T any](items []T, opts []Option) settings {
	var first any
	if len(items) > 0 {
		first = items[0]
	} else {
		var zero T
		first = zero
	}
	s := settings{sep: ','}
	if h, ok := first.(Headed); ok {
		s.header = h.Header()
	}
	if d, ok := first.(Separated); ok {
		if r := d.Separator(); r != 0 {
			s.sep = r
		}
	}
	if a, ok := first.(Aligned); ok {
		s.aligns = a.Alignments()
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Write formats items and writes to w.
func Write[T any](w io.Writer, f Format, items []T, opts ...Option) error {
	s := resolve(items, opts)
	switch f {
	case Table:
		return writeTable(w, items, s)
	case Delimited:
		return writeDelimited(w, items, s)
	case Structured:
		return writeJSON(w, items)
	case YAML:
		return writeYAML(w, items)
	case JSONL:
		return writeJSONL(w, items)
	case Markdown:
		return writeMarkdown(w, items, s)
	case Plain:
		return writePlain(w, items, s)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal formats items and returns the bytes.
func Marshal[T any](f Format, items []T, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, items, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// rows extracts Row() from every item, failing if T is not a Rower.
func rows[T any](f Format, items []T) ([][]string, error) {
	out := make([][]string, len(items))
	for i, item := range items {
		r, ok := any(item).(Rower)
		if !ok {
			return nil, fmt.Errorf("%w: format %q requires Rower, not implemented by %T", ErrMissingInterface, f, item)
		}
		out[i] = r.Row()
	}
	return out, nil
}
