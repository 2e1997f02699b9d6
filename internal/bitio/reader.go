package bitio

import (
	"encoding/binary"
	"fmt"
)

// Reader consumes fixed-width unsigned integers from a little-endian,
// word-aligned byte buffer. Internally the buffer is viewed as a sequence
// of 64-bit words; Take tracks a word index and a bit offset (0..63)
// within the current word. Working in 64-bit words rather than
// byte-by-byte keeps the decode hot path free of per-byte overhead, which
// is why payload alignment to a multiple of 8 bytes matters upstream.
type Reader struct {
	words     []uint64
	wordIndex int
	bitOffset uint8
}

// NewReader builds a Reader over buf. buf's length must be a multiple of
// 8; callers that cannot guarantee this should zero-pad a copy first (see
// NewReaderPadded).
func NewReader(buf []byte) (*Reader, error) {
	if len(buf)%8 != 0 {
		return nil, fmt.Errorf("bitio: buffer length %d is not a multiple of 8", len(buf))
	}
	words := make([]uint64, len(buf)/8)
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	return &Reader{words: words}, nil
}

// NewReaderPadded builds a Reader over buf, copying buf into a zero-padded
// buffer first if its length is not already a multiple of 8. This is the
// defensive variant decoders are expected to use (see the boundary
// validators): it never rejects a short tail, it just treats the missing
// bytes as zero.
func NewReaderPadded(buf []byte) *Reader {
	if len(buf)%8 == 0 {
		r, _ := NewReader(buf)
		return r
	}
	padded := make([]byte, (len(buf)/8+1)*8)
	copy(padded, buf)
	r, _ := NewReader(padded)
	return r
}

// Take returns the next bitWidth bits as an unsigned value, LSB-first.
// When the request crosses a word boundary, the low bits come from the
// current word and the remaining high bits from the next; bitWidth must
// be in [1, 64]. Running out of words before satisfying the request is
// reported as an error (an underrun is always fatal to the caller).
func (r *Reader) Take(bitWidth uint8) (uint64, error) {
	if bitWidth == 0 || bitWidth > 64 {
		return 0, fmt.Errorf("bitio: bit width must be between 1 and 64, got %d", bitWidth)
	}

	var result uint64
	var gotBits uint8
	remaining := bitWidth

	for remaining > 0 {
		if r.wordIndex >= len(r.words) {
			return 0, fmt.Errorf("bitio: unexpected end of stream reading %d bits", bitWidth)
		}

		avail := 64 - r.bitOffset
		n := remaining
		if avail < n {
			n = avail
		}

		mask := (uint64(1) << n) - 1
		chunk := (r.words[r.wordIndex] >> r.bitOffset) & mask

		result |= chunk << gotBits

		gotBits += n
		remaining -= n
		r.bitOffset += n
		if r.bitOffset == 64 {
			r.bitOffset = 0
			r.wordIndex++
		}
	}

	return result, nil
}

// BitsRemaining returns the number of bits still available in the stream.
func (r *Reader) BitsRemaining() uint64 {
	total := uint64(len(r.words)) * 64
	consumed := uint64(r.wordIndex)*64 + uint64(r.bitOffset)
	if consumed >= total {
		return 0
	}
	return total - consumed
}
