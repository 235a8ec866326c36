package lenscan

import (
	"fmt"
	"strconv"
)

// Predicate selects rows by value length: either an exact length or an
// inclusive range with at least one bound. Build it with [NewPredicate].
type Predicate struct {
	exact    int
	min, max int
	hasExact bool
	hasMin   bool
	hasMax   bool
}

// NewPredicate validates a filter configuration. Nil means "not given".
// exact excludes min and max, at least one of the three is required, no
// bound may be negative and min may not exceed max.
func NewPredicate(exact, min, max *int) (Predicate, error) {
	var p Predicate
	switch {
	case exact != nil && (min != nil || max != nil):
		return p, fmt.Errorf("%w: an exact length cannot be combined with a min/max range", ErrInvalidArgument)
	case exact == nil && min == nil && max == nil:
		return p, fmt.Errorf("%w: give an exact length or a min/max range", ErrInvalidArgument)
	}
	for _, b := range []*int{exact, min, max} {
		if b != nil && *b < 0 {
			return p, fmt.Errorf("%w: length %d is negative", ErrInvalidArgument, *b)
		}
	}
	if min != nil && max != nil && *min > *max {
		return p, fmt.Errorf("%w: min length %d is greater than max length %d", ErrInvalidArgument, *min, *max)
	}
	if exact != nil {
		p.exact, p.hasExact = *exact, true
	}
	if min != nil {
		p.min, p.hasMin = *min, true
	}
	if max != nil {
		p.max, p.hasMax = *max, true
	}
	return p, nil
}

// Match reports whether a value of length n passes.
func (p Predicate) Match(n int) bool {
	if p.hasExact {
		return n == p.exact
	}
	return (!p.hasMin || n >= p.min) && (!p.hasMax || n <= p.max)
}

// String describes the predicate, e.g. "length == 3" or "2 <= length <= 5".
func (p Predicate) String() string {
	switch {
	case p.hasExact:
		return "length == " + strconv.Itoa(p.exact)
	case p.hasMin && p.hasMax:
		return fmt.Sprintf("%d <= length <= %d", p.min, p.max)
	case p.hasMin:
		return "length >= " + strconv.Itoa(p.min)
	case p.hasMax:
		return "length <= " + strconv.Itoa(p.max)
	default:
		return "none"
	}
}
