package runestring

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrRange is returned when an integer above MaxCode is used as a code point.
	ErrRange = zerr.New("code point out of range")

	// ErrOutOfBounds is returned by indexed access on an empty string or with
	// an index at or past its length.
	ErrOutOfBounds = zerr.New("index out of bounds")

	// ErrInvalidUTF8 is returned by stream decoding when the input is not
	// well-formed UTF-8.
	ErrInvalidUTF8 = zerr.New("invalid UTF-8 sequence")
)

func rangeError(code uint32) error {
	return zerr.Wrap(ErrRange, fmt.Sprintf("code point U+%04X", code))
}

func boundsError(index, length int) error {
	return zerr.Wrap(ErrOutOfBounds, fmt.Sprintf("index %d in string of length %d", index, length))
}
