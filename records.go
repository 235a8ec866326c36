package lenscan

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// Records is JSON input: an array of flat objects.
type Records []map[string]any

// ParseRecords parses a JSON array of objects. A single top-level object is
// read as a one-record array.
func ParseRecords(text string) (Records, error) {
	data, err := oj.ParseString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: parse JSON input: %v", ErrInvalidArgument, err)
	}
	switch v := data.(type) {
	case map[string]any:
		return Records{v}, nil
	case []any:
		recs := make(Records, len(v))
		for i, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: JSON record %d is %T, not an object", ErrInvalidArgument, i+1, item)
			}
			recs[i] = m
		}
		return recs, nil
	default:
		return nil, fmt.Errorf("%w: JSON input must be an array of objects, got %T", ErrInvalidArgument, data)
	}
}

// Values yields the 1-based record position and the string form of field
// for every record. A missing field reads as the empty string.
func (rs Records) Values(field string) iter.Seq2[int, string] {
	x := jp.C(field)
	return func(yield func(int, string) bool) {
		for i, rec := range rs {
			if !yield(i+1, Stringify(x.First(rec))) {
				return
			}
		}
	}
}

// Stringify renders a decoded JSON value the way its length is measured:
// strings verbatim, numbers in shortest form, booleans as true/false, null
// as empty and nested values as compact JSON.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case map[string]any, []any:
		return oj.JSON(t, &oj.Options{Sort: true})
	default:
		return fmt.Sprintf("%v", t)
	}
}
