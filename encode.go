package fastmask

import (
	"github.com/JIy3AHKO/pyfastmask/internal/bitio"
	"github.com/JIy3AHKO/pyfastmask/internal/rle"
)

// Encode compresses a row-major mask of shape (height, width) into a
// self-contained byte buffer. The mask must be non-empty: height and
// width must both be at least 1, and len(mask) must equal height*width.
//
// Encoding proceeds in the order described by the format: row 0 is
// compressed directly; every later row is compressed as a diff against
// the row above it; the symbols actually used form an ascending-order
// dictionary; three per-file bit widths are chosen as the minimum able to
// hold every emitted field; the header and bit-packed payload are then
// written out back to back.
func Encode(mask []byte, height, width int) ([]byte, error) {
	if height <= 0 || width <= 0 || len(mask) != height*width {
		return nil, ErrInvalidShape
	}

	rows := make([][]rle.Triple, height)
	rows[0] = rle.BuildFirstRow(mask[0:width])
	for i := 1; i < height; i++ {
		curr := mask[i*width : (i+1)*width]
		prev := mask[(i-1)*width : i*width]
		rows[i] = rle.BuildDiffRow(curr, prev)
	}

	dict := rle.Dictionary(rows)
	if len(dict) > maxSymbols {
		// Unreachable: a byte mask has at most 256 distinct values.
		return nil, wrapf(ErrBitWidthOverflow, "dictionary has %d symbols, more than %d possible byte values", len(dict), maxSymbols)
	}

	widths := rle.SelectWidths(rows, len(dict))

	header := Header{
		SymbolBitWidth:    widths.Symbol,
		CountBitWidth:     widths.Count,
		LineCountBitWidth: widths.LineCount,
		UniqueSymbols:     uint32(len(dict)),
		Height:            uint32(height),
		Width:             uint32(width),
	}

	w := bitio.NewWriter()

	for _, sym := range dict {
		if err := w.Append(uint64(sym), 8); err != nil {
			return nil, wrapf(ErrBitWidthOverflow, "%v", err)
		}
	}

	for i, row := range rows {
		if err := w.Append(uint64(len(row)), header.LineCountBitWidth); err != nil {
			return nil, wrapf(ErrBitWidthOverflow, "row %d pair count: %v", i, err)
		}
		for _, t := range row {
			if i > 0 {
				if err := w.Append(uint64(t.Skip), header.CountBitWidth); err != nil {
					return nil, wrapf(ErrBitWidthOverflow, "row %d skip: %v", i, err)
				}
			}
			if err := w.Append(uint64(t.SymbolIndex), header.SymbolBitWidth); err != nil {
				return nil, wrapf(ErrBitWidthOverflow, "row %d symbol index: %v", i, err)
			}
			if err := w.Append(uint64(t.RunLength), header.CountBitWidth); err != nil {
				return nil, wrapf(ErrBitWidthOverflow, "row %d run length: %v", i, err)
			}
		}
	}

	payload := w.Finish()

	out := make([]byte, headerSize+len(payload))
	header.encode(out[:headerSize])
	copy(out[headerSize:], payload)

	return out, nil
}
