// Package lenscan inspects one named column of tabular text by the
// character length of its values.
//
// Input is read whole with [Read] or [ReadFile]. Delimited text goes
// through [ParseTable], which splits the header and every following line
// with [Split] on a separator that is either given or found by
// [DetectSeparator]. JSON input ([IsJSON]) goes through [ParseRecords].
//
// [ResolveColumn] maps a column name to its position; cells are cleaned by
// [Normalize] and measured in runes by [Length]. Three passes consume the
// values:
//
//   - [CountByLength]: how many values have each length
//   - [Filter]: rows whose length satisfies a [Predicate]
//   - [Extreme]: the [Champion] min or max length and its values
//
// The results ([LengthCount], [Match], [ValueLines]) implement the
// interfaces of package render, so any of its formats can print them.
//
// # Limits
//
// This is not an RFC 4180 reader. One record per line; a quoted field that
// contains the separator is split anyway, and only one pair of enclosing
// quotes is removed. Delimited output does not quote cells either.
//
// # Errors
//
// Failures wrap one of [ErrColumnNotFound], [ErrInvalidArgument],
// [ErrFileNotFound] or [ErrUnsupportedFormat].
package lenscan
