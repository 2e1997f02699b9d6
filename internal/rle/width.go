package rle

import "math/bits"

// Dictionary builds the ascending-order symbol dictionary referenced by
// rows, assigns each triple its SymbolIndex in place, and returns the
// dictionary bytes. Decoders never depend on the ordering (symbol indices
// are explicit in the stream); ascending order is simply the convention
// this encoder emits.
func Dictionary(rows [][]Triple) []byte {
	seen := make(map[byte]bool)
	for _, row := range rows {
		for _, t := range row {
			seen[t.Symbol] = true
		}
	}

	dict := make([]byte, 0, len(seen))
	for sym := 0; sym <= 0xFF; sym++ {
		if seen[byte(sym)] {
			dict = append(dict, byte(sym))
		}
	}

	index := make(map[byte]uint32, len(dict))
	for i, sym := range dict {
		index[sym] = uint32(i)
	}
	for _, row := range rows {
		for i := range row {
			row[i].SymbolIndex = index[row[i].Symbol]
		}
	}

	return dict
}

// Widths holds the three bit widths selected for a file, per the encoder's
// width-minimality requirement: each is the smallest width that can hold
// every value actually emitted.
type Widths struct {
	Symbol    uint8
	Count     uint8
	LineCount uint8
}

// SelectWidths computes the minimum bit widths for the dictionary size and
// the per-row scripts. symbolCount is the size of the dictionary K.
func SelectWidths(rows [][]Triple, symbolCount int) Widths {
	var maxPairsPerRow, maxCount uint64

	for _, row := range rows {
		if n := uint64(len(row)); n > maxPairsPerRow {
			maxPairsPerRow = n
		}
		for _, t := range row {
			if v := uint64(t.Skip); v > maxCount {
				maxCount = v
			}
			if v := uint64(t.RunLength); v > maxCount {
				maxCount = v
			}
		}
	}

	return Widths{
		Symbol:    widthAtLeast(symbolCount),
		Count:     widthGreaterThan(maxCount),
		LineCount: widthGreaterThan(maxPairsPerRow),
	}
}

// widthGreaterThan returns the smallest w >= 1 with 2^w > value.
func widthGreaterThan(value uint64) uint8 {
	w := bits.Len64(value)
	if w == 0 {
		w = 1
	}
	return uint8(w)
}

// widthAtLeast returns the smallest w >= 1 with 2^w >= value.
func widthAtLeast(value int) uint8 {
	if value <= 0 {
		return 1
	}
	w := bits.Len64(uint64(value - 1))
	if w == 0 {
		w = 1
	}
	return uint8(w)
}
