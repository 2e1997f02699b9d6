// Package rle builds the per-row run-length scripts that the fastmask
// codec packs into its payload, and picks the minimum bit widths those
// scripts need.
//
// Row 0 of a mask is compressed directly; every later row is compressed as
// a diff against the row above it. Both shapes are represented by the same
// Triple slice: row 0 is built by diffing against a virtual row that never
// matches (so every triple's Skip is 0 and the row degenerates into plain
// (symbol, run) pairs), and later rows are built by diffing against the
// real previous row. The row index alone tells the encoder which bit
// layout to emit; Triple never carries that distinction itself.
package rle

// Triple is one (skip, symbol, run_length) entry of a row script. For row
// 0, Skip is always 0 and is not written to the bit stream.
type Triple struct {
	Skip        uint32
	Symbol      byte
	RunLength   uint32
	SymbolIndex uint32 // filled in once the dictionary is known
}

// BuildFirstRow produces the plain run-length script for row 0.
func BuildFirstRow(row []byte) []Triple {
	return buildRow(row, nil)
}

// BuildDiffRow produces the diff script for row against prev. A trailing
// run of columns equal to prev is discarded: it is implied at decode time
// by copying prev into the output row before applying the script.
func BuildDiffRow(row, prev []byte) []Triple {
	return buildRow(row, prev)
}

// buildRow scans row left to right, alternating between runs of columns
// equal to prev (a "skip", silently accumulated) and maximal runs of
// columns that share a concrete value differing from prev. prev == nil
// means every column counts as differing (used for row 0), which collapses
// the skip runs to length 0 throughout.
func buildRow(row, prev []byte) []Triple {
	w := len(row)
	var triples []Triple
	col := 0

	sameAsPrev := func(c int) bool {
		return prev != nil && row[c] == prev[c]
	}

	for col < w {
		skipStart := col
		for col < w && sameAsPrev(col) {
			col++
		}
		skip := col - skipStart

		if col >= w {
			// Trailing skip run: implied by the prior-row copy, not emitted.
			break
		}

		sym := row[col]
		runStart := col
		for col < w && row[col] == sym && !sameAsPrev(col) {
			col++
		}

		triples = append(triples, Triple{
			Skip:      uint32(skip),
			Symbol:    sym,
			RunLength: uint32(col - runStart),
		})
	}

	return triples
}
