package lenscan

import (
	"fmt"
	"strings"
)

// Mode selects which extreme [Extreme] tracks.
type Mode string

const (
	Min Mode = "min"
	Max Mode = "max"
)

// ParseMode parses "min" or "max".
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Min, Max:
		return m, nil
	}
	return "", fmt.Errorf("%w: mode %q (want min or max)", ErrInvalidArgument, s)
}

// beats reports whether length n displaces the current best.
func (m Mode) beats(n, best int) bool {
	if m == Max {
		return n > best
	}
	return n < best
}

// Champion is the running state of a min/max pass: the best length so far
// and every distinct value seen at that length with the lines it came from.
// A strictly better length replaces the whole state.
type Champion struct {
	Mode   Mode
	Length int

	found  bool
	values []string // first-seen order
	lines  map[string][]int
}

// Observe folds one row into the champion.
func (c *Champion) Observe(line int, value string) {
	n := Length(value)
	switch {
	case !c.found || c.Mode.beats(n, c.Length):
		*c = Champion{
			Mode:   c.Mode,
			Length: n,
			found:  true,
			values: []string{value},
			lines:  map[string][]int{value: {line}},
		}
	case n == c.Length:
		if _, ok := c.lines[value]; !ok {
			c.values = append(c.values, value)
		}
		c.lines[value] = append(c.lines[value], line)
	}
}

// Found reports whether any row was observed.
func (c *Champion) Found() bool { return c.found }

// Values returns the champion values in first-seen order, each with its
// line numbers in input order.
func (c *Champion) Values() []ValueLines {
	out := make([]ValueLines, len(c.values))
	for i, v := range c.values {
		out[i] = ValueLines{Length: c.Length, Value: v, Lines: c.lines[v]}
	}
	return out
}

// Summary is a one-line description such as "min length: 2".
func (c *Champion) Summary(column string) string {
	if !c.found {
		return fmt.Sprintf("no values in column %q", column)
	}
	return fmt.Sprintf("%s length: %d", c.Mode, c.Length)
}
