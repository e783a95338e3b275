package layout

import "errors"

var (
	// ErrShortBuffer is returned when fewer bytes remain than a field needs.
	ErrShortBuffer = errors.New("layout: short buffer")
	// ErrTrailingBytes is returned when input remains after the last field.
	ErrTrailingBytes = errors.New("layout: trailing bytes")
)
