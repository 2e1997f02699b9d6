package fastmask

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Encode, Decode, and HeaderOf. Each maps to
// one of the three failure categories the codec distinguishes: caller
// error (ErrInvalidShape), malformed input (everything else returned by
// Decode/HeaderOf), or a bug surfaced as ErrBitWidthOverflow. Callers
// should compare with errors.Is rather than string-matching messages.
var (
	// ErrInvalidShape is returned by Encode when the mask is not a
	// non-empty 2D array (rank != 2, or H*W == 0).
	ErrInvalidShape = errors.New("fastmask: mask must be 2D with height and width >= 1")

	// ErrInvalidMagic is returned by Decode/HeaderOf when the first 4
	// bytes of the buffer do not match the format's magic number.
	ErrInvalidMagic = errors.New("fastmask: invalid magic number")

	// ErrInvalidVersion is returned when the header's version byte is
	// not one this package knows how to decode.
	ErrInvalidVersion = errors.New("fastmask: unsupported format version")

	// ErrTruncatedInput is returned when the buffer is shorter than the
	// fixed header, or shorter than the header claims the payload to be.
	ErrTruncatedInput = errors.New("fastmask: truncated input")

	// ErrCorruptedData is returned when the header carries out-of-range
	// bit widths, symbol count or shape, or when the payload decodes to a
	// row-0 script that does not cover exactly the header's declared
	// width, a skip or run that overruns a row, or a dictionary reference
	// outside the declared symbol count.
	ErrCorruptedData = errors.New("fastmask: corrupted payload")

	// ErrBitWidthOverflow indicates an internal invariant break in Encode:
	// the dictionary holds more than 256 symbols, or the bit writer
	// rejected a field (a value that does not fit its selected width, or
	// a width outside 1..64). Seeing it means the encoder has a bug, not
	// that the input is bad.
	ErrBitWidthOverflow = errors.New("fastmask: internal bit width overflow")
)

func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)
}
