// Command fastmaskc is a thin wrapper around the fastmask package: it reads
// a raw row-major mask or an encoded blob from a file and calls straight
// through to Encode, Decode, or HeaderOf. It carries no algorithm of its
// own; see the fastmask package for the codec itself.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/JIy3AHKO/pyfastmask"
)

func main() {
	var (
		mode   = flag.String("mode", "", "encode, decode, or header")
		input  = flag.String("in", "", "input file path")
		output = flag.String("out", "", "output file path (omit for header mode)")
		height = flag.Int("height", 0, "mask height in rows (required for encode)")
		width  = flag.Int("width", 0, "mask width in columns (required for encode)")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("fastmaskc: -in is required")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("fastmaskc: reading %s: %v", *input, err)
	}

	switch *mode {
	case "encode":
		if *height <= 0 || *width <= 0 {
			log.Fatal("fastmaskc: -height and -width are required for encode")
		}
		encoded, err := fastmask.Encode(data, *height, *width)
		if err != nil {
			log.Fatalf("fastmaskc: encode: %v", err)
		}
		if err := os.WriteFile(*output, encoded, 0o644); err != nil {
			log.Fatalf("fastmaskc: writing %s: %v", *output, err)
		}

	case "decode":
		mask, h, w, err := fastmask.Decode(data)
		if err != nil {
			log.Fatalf("fastmaskc: decode: %v", err)
		}
		log.Printf("fastmaskc: decoded %d x %d mask", h, w)
		if err := os.WriteFile(*output, mask, 0o644); err != nil {
			log.Fatalf("fastmaskc: writing %s: %v", *output, err)
		}

	case "header":
		h, err := fastmask.HeaderOf(data)
		if err != nil {
			log.Fatalf("fastmaskc: header: %v", err)
		}
		fmt.Printf("shape=(%d, %d) symbols=%d symbol_bits=%d count_bits=%d line_count_bits=%d\n",
			h.Height, h.Width, h.UniqueSymbols, h.SymbolBitWidth, h.CountBitWidth, h.LineCountBitWidth)

	default:
		log.Fatalf("fastmaskc: unknown -mode %q (want encode, decode, or header)", *mode)
	}
}
