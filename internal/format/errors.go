package format

import "errors"

var (
	// ErrSignatureMismatch indicates a structure had an unexpected magic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrListCorrupt indicates a HOB list violated a traversal invariant
	// (undersized record, record past the buffer end, or no end-of-list
	// marker within the bounded record count).
	ErrListCorrupt = errors.New("format: hob list corrupt")
	// ErrZeroOffset indicates a configuration region offset that must be
	// non-zero was zero, which marks a malformed module image.
	ErrZeroOffset = errors.New("format: zero region offset")
)
