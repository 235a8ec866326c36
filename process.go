package lenscan

import (
	"iter"
	"slices"
)

// CountByLength tallies values by character length, ascending by length.
func CountByLength(values iter.Seq2[int, string]) []LengthCount {
	counts := map[int]int{}
	for _, v := range values {
		counts[Length(v)]++
	}
	out := make([]LengthCount, 0, len(counts))
	for n, c := range counts {
		out = append(out, LengthCount{Length: n, Count: c})
	}
	slices.SortFunc(out, func(a, b LengthCount) int { return a.Length - b.Length })
	return out
}

// Extreme runs a min or max pass over values.
func Extreme(values iter.Seq2[int, string], mode Mode) *Champion {
	c := &Champion{Mode: mode}
	for line, v := range values {
		c.Observe(line, v)
	}
	return c
}

// Filter returns the rows of t whose col value satisfies p, in input order.
// Rows too narrow to hold col never match.
func Filter(t *Table, col Column, p Predicate) []Match {
	names := t.Names()
	var out []Match
	for _, r := range t.Rows {
		if col.Index >= len(r.Fields) {
			continue
		}
		if !p.Match(Length(Normalize(r.Fields[col.Index]))) {
			continue
		}
		fields := make([]string, len(r.Fields))
		for i, f := range r.Fields {
			fields[i] = Normalize(f)
		}
		out = append(out, Match{Line: r.Line, Fields: fields, names: names, sep: t.Sep})
	}
	return out
}
