// Package maskio adapts between the fastmask package's flat row-major
// buffer and the [][]byte shape many array libraries hand out when a 2D
// array isn't stored contiguously (e.g. a Python buffer protocol view
// with non-trivial strides, flattened row by row on the host side before
// it ever reaches Go). It is a convenience layer only: it does not touch
// the wire format, and nothing in the core codec depends on it.
package maskio

import "fmt"

// Flatten concatenates rows into a single row-major buffer suitable for
// fastmask.Encode. Every row must have the same length; an empty rows
// slice, or rows of differing lengths, is reported as an error rather
// than silently producing a ragged buffer.
func Flatten(rows [][]byte) (buf []byte, height, width int, err error) {
	if len(rows) == 0 {
		return nil, 0, 0, fmt.Errorf("maskio: no rows to flatten")
	}

	width = len(rows[0])
	if width == 0 {
		return nil, 0, 0, fmt.Errorf("maskio: rows must be non-empty")
	}

	buf = make([]byte, 0, len(rows)*width)
	for i, row := range rows {
		if len(row) != width {
			return nil, 0, 0, fmt.Errorf("maskio: row %d has length %d, want %d", i, len(row), width)
		}
		buf = append(buf, row...)
	}

	return buf, len(rows), width, nil
}

// Unflatten splits a row-major buffer of the given shape back into one
// slice per row. The returned rows alias buf; callers that mutate a row
// in place mutate buf too.
func Unflatten(buf []byte, height, width int) ([][]byte, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("maskio: height and width must both be >= 1, got (%d, %d)", height, width)
	}
	if len(buf) != height*width {
		return nil, fmt.Errorf("maskio: buffer has %d bytes, want %d for shape (%d, %d)", len(buf), height*width, height, width)
	}

	rows := make([][]byte, height)
	for i := range rows {
		rows[i] = buf[i*width : (i+1)*width]
	}

	return rows, nil
}
