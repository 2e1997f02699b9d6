package fastmask

import (
	"math"

	"github.com/JIy3AHKO/pyfastmask/internal/bitio"
)

// HeaderOf parses just the 20-byte header of an encoded blob, without
// touching the payload. It is the cheap entry point for callers that only
// need the mask's shape or the widths the encoder chose.
func HeaderOf(buf []byte) (Header, error) {
	return decodeHeader(buf)
}

// Decode reverses Encode, reproducing the original row-major mask bytes
// along with its (height, width) shape.
//
// Decode validates the header (magic, version, minimum length) before
// touching the payload; a payload whose length is not already a multiple
// of 8 is zero-padded defensively rather than rejected, per the codec's
// boundary-validator policy. Any arithmetic inconsistency discovered while
// applying a row script (a dictionary index out of range, a skip or run
// that would overrun the row, or a row-0 script whose pairs do not cover
// exactly the declared width) is reported as ErrCorruptedData rather than
// allowed to read or write out of bounds. A diff row that covers fewer
// columns than the width is valid: its remaining columns keep the values
// of the row above.
func Decode(buf []byte) ([]byte, int, int, error) {
	header, err := decodeHeader(buf)
	if err != nil {
		return nil, 0, 0, err
	}

	payload := buf[headerSize:]
	r := bitio.NewReaderPadded(payload)

	if header.UniqueSymbols == 0 || header.UniqueSymbols > maxSymbols {
		return nil, 0, 0, wrapf(ErrCorruptedData, "unique symbol count %d out of range", header.UniqueSymbols)
	}

	dict := make([]byte, header.UniqueSymbols)
	for i := range dict {
		v, err := r.Take(8)
		if err != nil {
			return nil, 0, 0, wrapf(ErrTruncatedInput, "reading dictionary entry %d: %v", i, err)
		}
		dict[i] = byte(v)
	}

	height := int(header.Height)
	width := int(header.Width)
	if height <= 0 || width <= 0 {
		return nil, 0, 0, wrapf(ErrCorruptedData, "header declares empty shape (%d, %d)", height, width)
	}
	if width > math.MaxInt/height {
		return nil, 0, 0, wrapf(ErrCorruptedData, "header declares shape (%d, %d) too large to hold", height, width)
	}

	mask := make([]byte, height*width)

	if err := decodeFirstRow(r, header, dict, mask[0:width]); err != nil {
		return nil, 0, 0, err
	}

	for i := 1; i < height; i++ {
		prev := mask[(i-1)*width : i*width]
		curr := mask[i*width : (i+1)*width]
		copy(curr, prev)
		if err := decodeDiffRow(r, header, dict, curr); err != nil {
			return nil, 0, 0, err
		}
	}

	return mask, height, width, nil
}

// decodeFirstRow and decodeDiffRow keep every field read off the bit
// stream in uint64 and compare it against the row length before narrowing
// to int for indexing. header's bit widths are bounded by decodeHeader
// (symbol_bit_width <= 8, count/line_count_bit_width <= 32), but a field
// value itself is still attacker-controlled up to 2^32-1, and the row
// length never exceeds a platform int; comparing in uint64 first means a
// bogus skip/run/symbol index is always caught as ErrCorruptedData before
// it can produce a negative or out-of-range int.

func decodeFirstRow(r *bitio.Reader, header Header, dict []byte, row []byte) error {
	n, err := r.Take(header.LineCountBitWidth)
	if err != nil {
		return wrapf(ErrTruncatedInput, "row 0 pair count: %v", err)
	}

	rowLen := uint64(len(row))
	col := uint64(0)
	for i := uint64(0); i < n; i++ {
		symIdx, err := r.Take(header.SymbolBitWidth)
		if err != nil {
			return wrapf(ErrTruncatedInput, "row 0 pair %d symbol index: %v", i, err)
		}
		run, err := r.Take(header.CountBitWidth)
		if err != nil {
			return wrapf(ErrTruncatedInput, "row 0 pair %d run length: %v", i, err)
		}
		if symIdx >= uint64(len(dict)) {
			return wrapf(ErrCorruptedData, "row 0 pair %d references symbol index %d, dictionary has %d entries", i, symIdx, len(dict))
		}
		if run > rowLen-col {
			return wrapf(ErrCorruptedData, "row 0 run overflows row width %d at column %d", len(row), col)
		}
		sym := dict[symIdx]
		for j := uint64(0); j < run; j++ {
			row[col] = sym
			col++
		}
	}

	if col != rowLen {
		return wrapf(ErrCorruptedData, "row 0 pairs cover %d columns, want %d", col, rowLen)
	}

	return nil
}

func decodeDiffRow(r *bitio.Reader, header Header, dict []byte, row []byte) error {
	n, err := r.Take(header.LineCountBitWidth)
	if err != nil {
		return wrapf(ErrTruncatedInput, "diff row triple count: %v", err)
	}

	rowLen := uint64(len(row))
	col := uint64(0)
	for i := uint64(0); i < n; i++ {
		skip, err := r.Take(header.CountBitWidth)
		if err != nil {
			return wrapf(ErrTruncatedInput, "diff row triple %d skip: %v", i, err)
		}
		symIdx, err := r.Take(header.SymbolBitWidth)
		if err != nil {
			return wrapf(ErrTruncatedInput, "diff row triple %d symbol index: %v", i, err)
		}
		run, err := r.Take(header.CountBitWidth)
		if err != nil {
			return wrapf(ErrTruncatedInput, "diff row triple %d run length: %v", i, err)
		}

		if skip > rowLen-col {
			return wrapf(ErrCorruptedData, "diff row triple %d skip overflows row width %d at column %d", i, len(row), col)
		}
		col += skip
		if symIdx >= uint64(len(dict)) {
			return wrapf(ErrCorruptedData, "diff row triple %d references symbol index %d, dictionary has %d entries", i, symIdx, len(dict))
		}
		if run > rowLen-col {
			return wrapf(ErrCorruptedData, "diff row triple overflows row width %d at column %d", len(row), col)
		}

		sym := dict[symIdx]
		for j := uint64(0); j < run; j++ {
			row[col] = sym
			col++
		}
	}

	// Remaining columns from col to len(row)-1 stay equal to prev, which
	// the caller already copied in before calling us.
	return nil
}
