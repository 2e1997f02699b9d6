package bitio

import (
	"math/rand"
	"testing"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	type field struct {
		value    uint64
		bitWidth uint8
	}

	fields := []field{
		{value: 0, bitWidth: 1},
		{value: 1, bitWidth: 1},
		{value: 5, bitWidth: 3},
		{value: 255, bitWidth: 8},
		{value: 1 << 20, bitWidth: 21},
		{value: 0xFFFFFFFF, bitWidth: 32},
		{value: 0x123456789ABCDEF0, bitWidth: 64},
		{value: 7, bitWidth: 3},
	}

	w := NewWriter()
	for _, f := range fields {
		if err := w.Append(f.value, f.bitWidth); err != nil {
			t.Fatalf("Append(%d, %d) failed: %v", f.value, f.bitWidth, err)
		}
	}
	buf := w.Finish()

	if len(buf)%8 != 0 {
		t.Fatalf("Finish() produced buffer of length %d, not a multiple of 8", len(buf))
	}

	r, err := NewReader(buf)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	for _, f := range fields {
		got, err := r.Take(f.bitWidth)
		if err != nil {
			t.Fatalf("Take(%d) failed: %v", f.bitWidth, err)
		}
		want := f.value
		if f.bitWidth < 64 {
			want &= (uint64(1) << f.bitWidth) - 1
		}
		if got != want {
			t.Fatalf("Take(%d) = %d, want %d", f.bitWidth, got, want)
		}
	}
}

func TestWriterRejectsOutOfRangeValue(t *testing.T) {
	w := NewWriter()
	if err := w.Append(4, 2); err == nil {
		t.Fatal("expected error for value not fitting in bit width")
	}
}

func TestWriterRejectsBadBitWidth(t *testing.T) {
	w := NewWriter()
	if err := w.Append(0, 0); err == nil {
		t.Fatal("expected error for bit width 0")
	}
	if err := w.Append(0, 65); err == nil {
		t.Fatal("expected error for bit width 65")
	}
}

func TestReaderUnderrunIsFatal(t *testing.T) {
	w := NewWriter()
	_ = w.Append(1, 1)
	buf := w.Finish()

	r, err := NewReader(buf)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	for i := 0; i < 8; i++ {
		if _, err := r.Take(8); err != nil {
			t.Fatalf("unexpected error on word %d: %v", i, err)
		}
	}
	if _, err := r.Take(1); err == nil {
		t.Fatal("expected underrun error past end of stream")
	}
}

func TestReaderRejectsUnalignedBuffer(t *testing.T) {
	if _, err := NewReader(make([]byte, 5)); err == nil {
		t.Fatal("expected error for non-multiple-of-8 buffer")
	}
}

func TestReaderPaddedAcceptsUnalignedTail(t *testing.T) {
	r := NewReaderPadded([]byte{0xFF, 0x01})
	v, err := r.Take(9)
	if err != nil {
		t.Fatalf("Take failed: %v", err)
	}
	if v != 0x1FF {
		t.Fatalf("Take(9) = %#x, want 0x1ff", v)
	}
}

func TestRandomWidthsRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var widths []uint8
	var values []uint64

	w := NewWriter()
	for i := 0; i < 5000; i++ {
		bw := uint8(1 + rng.Intn(64))
		var v uint64
		if bw == 64 {
			v = rng.Uint64()
		} else {
			v = rng.Uint64() & ((uint64(1) << bw) - 1)
		}
		widths = append(widths, bw)
		values = append(values, v)
		if err := w.Append(v, bw); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	r, err := NewReader(w.Finish())
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	for i, bw := range widths {
		got, err := r.Take(bw)
		if err != nil {
			t.Fatalf("Take failed at field %d: %v", i, err)
		}
		if got != values[i] {
			t.Fatalf("field %d: got %d, want %d (width %d)", i, got, values[i], bw)
		}
	}
}
