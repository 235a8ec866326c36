package lenscan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/lenscan/render"
)

// LengthCount is one count-by-length entry.
type LengthCount struct {
	Length int `json:"length" yaml:"length"`
	Count  int `json:"count" yaml:"count"`
}

func (lc LengthCount) Row() []string {
	return []string{strconv.Itoa(lc.Length), strconv.Itoa(lc.Count)}
}

func (LengthCount) Header() []string { return []string{"length", "count"} }

func (LengthCount) Alignments() []render.Alignment {
	return []render.Alignment{render.AlignRight, render.AlignRight}
}

func (lc LengthCount) String() string {
	return fmt.Sprintf("length %d: %d", lc.Length, lc.Count)
}

// ValueLines is one min/max value with every line it occurred on.
type ValueLines struct {
	Length int    `json:"length" yaml:"length"`
	Value  string `json:"value" yaml:"value"`
	Lines  []int  `json:"lines" yaml:"lines,flow"`
}

func (vl ValueLines) Row() []string {
	return []string{strconv.Itoa(vl.Length), vl.Value, joinLines(vl.Lines, " ")}
}

func (ValueLines) Header() []string { return []string{"length", "value", "lines"} }

func (ValueLines) Alignments() []render.Alignment {
	return []render.Alignment{render.AlignRight, render.AlignLeft, render.AlignLeft}
}

func (vl ValueLines) String() string {
	noun := "line"
	if len(vl.Lines) != 1 {
		noun = "lines"
	}
	return fmt.Sprintf("%q at %s %s", vl.Value, noun, joinLines(vl.Lines, ", "))
}

func joinLines(lines []int, sep string) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = strconv.Itoa(l)
	}
	return strings.Join(parts, sep)
}

// lineKey names the line-number field of a rendered [Match].
const lineKey = "line"

// MatchHeader is the rendered header of filter output for a table whose
// normalized header is names.
func MatchHeader(names []string) []string {
	return append([]string{lineKey}, names...)
}

// Match is a row that passed a filter, with normalized fields. Structured
// output keys each field by its header name.
type Match struct {
	Line   int
	Fields []string

	names []string
	sep   rune
}

func (m Match) Row() []string {
	return append([]string{strconv.Itoa(m.Line)}, m.Fields...)
}

func (m Match) Header() []string { return MatchHeader(m.names) }

func (m Match) Separator() rune { return m.sep }

func (m Match) String() string {
	sep := m.sep
	if sep == 0 {
		sep = ','
	}
	return fmt.Sprintf("line %d: %s", m.Line, Join(m.Fields, sep))
}

// field returns the i-th field, or "" past the end of a short row.
func (m Match) field(i int) string {
	if i < len(m.Fields) {
		return m.Fields[i]
	}
	return ""
}

func (m Match) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"` + lineKey + `":`)
	buf.WriteString(strconv.Itoa(m.Line))
	for i, k := range recordKeys(m.names, len(m.Fields)) {
		buf.WriteByte(',')
		if err := writeJSONString(&buf, k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, m.field(i)); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m Match) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	node.Content = append(node.Content,
		strNode(lineKey),
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(m.Line)},
	)
	for i, k := range recordKeys(m.names, len(m.Fields)) {
		node.Content = append(node.Content, strNode(k), strNode(m.field(i)))
	}
	return node, nil
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // Encode appends a newline
	return nil
}

// recordKeys names the fields of a structured record. Blank and repeated
// header names, and fields past the header, fall back to column_<n>.
func recordKeys(names []string, fields int) []string {
	keys := make([]string, max(len(names), fields))
	seen := map[string]bool{lineKey: true}
	for i := range keys {
		k := ""
		if i < len(names) {
			k = names[i]
		}
		if k == "" || seen[k] {
			k = "column_" + strconv.Itoa(i+1)
		}
		for seen[k] {
			k += "_"
		}
		seen[k] = true
		keys[i] = k
	}
	return keys
}
