// Package fastmask is a lossless codec for 2D segmentation masks: dense
// rectangular arrays of 8-bit category ids in which large contiguous
// regions tend to repeat both along a row and from one row to the next.
//
// Encode produces a small, self-describing binary blob; Decode reverses
// it bit-for-bit. The format is a two-tier run-length encoding (the first
// row compressed directly, every later row compressed as a diff against
// the row above it) packed with per-file, bit-width-adaptive fields. See
// HeaderOf for inspecting a blob's geometry without decoding the mask.
package fastmask

import "encoding/binary"

const (
	// magic is 'p','f','m','f' read as a little-endian uint32.
	magic uint32 = 0x666d6670

	version uint8 = 1

	// headerSize is the fixed on-disk size of Header, in bytes.
	headerSize = 20

	maxSymbols = 256

	// maxSymbolBitWidth and maxCountBitWidth are the header field ranges
	// the format declares: symbol_bit_width fits a dictionary index into
	// at most 256 symbols, count_bit_width and line_count_bit_width are
	// capped well below 64 so skip/run/pair-count values always fit in a
	// platform int. A header outside these ranges is corrupt, not merely
	// inconvenient: it is rejected before it ever reaches bitio.
	maxSymbolBitWidth = 8
	maxCountBitWidth  = 32
)

// Header is the fixed 20-byte descriptor written at offset 0 of every
// encoded blob. It carries the bit widths chosen for the payload plus the
// mask's geometry, and is enough on its own to answer "how big is this
// mask" without materializing it (see HeaderOf).
type Header struct {
	SymbolBitWidth    uint8
	CountBitWidth     uint8
	LineCountBitWidth uint8
	UniqueSymbols     uint32
	Height            uint32
	Width             uint32
}

// encode writes the 20-byte header to dst, little-endian, in this fixed
// order: magic (4 bytes), version, symbol, count and line-count bit widths
// (1 byte each), then symbol count, height and width (4 bytes each).
func (h Header) encode(dst []byte) {
	binary.LittleEndian.PutUint32(dst[0:4], magic)
	dst[4] = version
	dst[5] = h.SymbolBitWidth
	dst[6] = h.CountBitWidth
	dst[7] = h.LineCountBitWidth
	binary.LittleEndian.PutUint32(dst[8:12], h.UniqueSymbols)
	binary.LittleEndian.PutUint32(dst[12:16], h.Height)
	binary.LittleEndian.PutUint32(dst[16:20], h.Width)
}

// decodeHeader parses the fixed header from the front of buf, validating
// its length, magic, version and the three bit-width ranges. The payload
// starts headerSize bytes into buf.
func decodeHeader(buf []byte) (Header, error) {
	if len(buf) < headerSize {
		return Header{}, wrapf(ErrTruncatedInput, "buffer of %d bytes is shorter than the %d-byte header", len(buf), headerSize)
	}

	gotMagic := binary.LittleEndian.Uint32(buf[0:4])
	if gotMagic != magic {
		return Header{}, wrapf(ErrInvalidMagic, "got %#x, want %#x", gotMagic, magic)
	}

	gotVersion := buf[4]
	if gotVersion != version {
		return Header{}, wrapf(ErrInvalidVersion, "got %d, want %d", gotVersion, version)
	}

	h := Header{
		SymbolBitWidth:    buf[5],
		CountBitWidth:     buf[6],
		LineCountBitWidth: buf[7],
		UniqueSymbols:     binary.LittleEndian.Uint32(buf[8:12]),
		Height:            binary.LittleEndian.Uint32(buf[12:16]),
		Width:             binary.LittleEndian.Uint32(buf[16:20]),
	}

	if h.SymbolBitWidth < 1 || h.SymbolBitWidth > maxSymbolBitWidth {
		return Header{}, wrapf(ErrCorruptedData, "symbol_bit_width %d out of range [1, %d]", h.SymbolBitWidth, maxSymbolBitWidth)
	}
	if h.CountBitWidth < 1 || h.CountBitWidth > maxCountBitWidth {
		return Header{}, wrapf(ErrCorruptedData, "count_bit_width %d out of range [1, %d]", h.CountBitWidth, maxCountBitWidth)
	}
	if h.LineCountBitWidth < 1 || h.LineCountBitWidth > maxCountBitWidth {
		return Header{}, wrapf(ErrCorruptedData, "line_count_bit_width %d out of range [1, %d]", h.LineCountBitWidth, maxCountBitWidth)
	}

	return h, nil
}
