package lenscan

import (
	"errors"

	"github.com/bjaus/lenscan/render"
)

// Sentinel errors for programmatic error handling. Every one of them is
// terminal for a command run.
var (
	ErrColumnNotFound  = errors.New("column not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrFileNotFound    = errors.New("file not found")

	// ErrUnsupportedFormat is the renderer's error, re-exported so callers
	// can match the whole taxonomy against this package.
	ErrUnsupportedFormat = render.ErrUnsupportedFormat
)
