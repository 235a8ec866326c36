// Package render turns result items into one of several output formats.
//
// The central entry points are [Write] and [Marshal], which accept a
// [Format] and a slice of items of any type. Structured, YAML and JSONL
// marshal the items directly; the text formats require the items to
// implement [Rower].
//
// # Interface Design
//
// A minimal interface unlocks a format, and optional interfaces or
// per-call [Option] values refine it:
//
//   - [Rower] → Table, Delimited, Markdown (row data)
//   - [Headed] or [WithHeader] → column headers
//   - [Separated] or [WithSeparator] → Delimited field separator
//   - [Aligned] → Table and Markdown alignment
//   - [fmt.Stringer] → Plain lines
//
// Headers are looked up on the zero value of the item type when there are
// no items, so an empty result still renders its header row. Use
// [WithHeader] when the header depends on the data.
//
// # Table
//
// A header row, a dashed rule and one padded line per item. Widths are
// measured in terminal cells via go-runewidth. [WithBorder] switches to
// ASCII or rounded box drawing and [WithTitle] adds a line above.
//
// # Delimited
//
// A header line and one line per item, fields joined by the separator.
// Cells are written verbatim: a cell containing the separator is not
// quoted, so such output does not round-trip.
//
// # Structured
//
// A JSON array, always an array and never null, indented two spaces.
// Items control their own encoding through json.Marshaler.
//
// # Errors
//
//   - [ErrUnsupportedFormat]: unknown format or border name
//   - [ErrMissingInterface]: items don't implement the required interface
//   - [ErrMissingHeader]: Markdown needs a header row
package render
