package ordkey

import (
	"bytes"
	"math"
	"testing"
)

// FuzzDecodeInt64 fuzzes the int64 decoder. Every 8-byte string is a valid
// key, so decode then encode must reproduce the input bytes exactly.
func FuzzDecodeInt64(f *testing.F) {
	f.Add(make([]byte, 8))
	f.Add([]byte{0x80, 0, 0, 0, 0, 0, 0, 0})
	f.Add([]byte{0x7f, 0xff, 0xff, 0xff, 0xff, 0xf0, 0xbd, 0xc1})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff})

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) < 8 {
			return
		}
		v, err := Decode[int64](data[:8])
		if err != nil {
			t.Fatalf("FuzzDecodeInt64: unexpected error: %v", err)
		}
		if got := Encode(v); !bytes.Equal(got, data[:8]) {
			t.Errorf("FuzzDecodeInt64: round-trip failed: got %x, want %x", got, data[:8])
		}
	})
}

// FuzzDecodeUint32 fuzzes the uint32 decoder the same way.
func FuzzDecodeUint32(f *testing.F) {
	f.Add(make([]byte, 4))
	f.Add([]byte{0, 0, 0x04, 0xb0})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff})

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) < 4 {
			return
		}
		v, err := Decode[uint32](data[:4])
		if err != nil {
			t.Fatalf("FuzzDecodeUint32: unexpected error: %v", err)
		}
		if got := Encode(v); !bytes.Equal(got, data[:4]) {
			t.Errorf("FuzzDecodeUint32: round-trip failed: got %x, want %x", got, data[:4])
		}
	})
}

// FuzzFloat64RoundTrip fuzzes the float64 value round trip. Byte-level
// round-trip does not hold for keys that decode to NaN or -0.0 (both
// collapse to a canonical key), so the check is on values.
func FuzzFloat64RoundTrip(f *testing.F) {
	f.Add(0.0)
	f.Add(-1.0)
	f.Add(2.5)
	f.Add(math.MaxFloat64)
	f.Add(math.SmallestNonzeroFloat64)
	f.Add(math.Inf(1))
	f.Add(math.Inf(-1))

	f.Fuzz(func(t *testing.T, v float64) {
		got, err := Decode[float64](Encode(v))
		if err != nil {
			t.Fatalf("FuzzFloat64RoundTrip(%v): unexpected error: %v", v, err)
		}
		switch {
		case math.IsNaN(v):
			if !math.IsNaN(got) {
				t.Errorf("FuzzFloat64RoundTrip(NaN): got %v, want NaN", got)
			}
		case got != v:
			t.Errorf("FuzzFloat64RoundTrip(%v): got %v", v, got)
		}
	})
}

// FuzzFloat64Order fuzzes order preservation across arbitrary pairs.
func FuzzFloat64Order(f *testing.F) {
	f.Add(0.0, 1.0)
	f.Add(-1.0, 1.0)
	f.Add(math.Inf(-1), math.Inf(1))
	f.Add(-0.0, 0.0)

	f.Fuzz(func(t *testing.T, a, b float64) {
		if math.IsNaN(a) || math.IsNaN(b) {
			return
		}
		cmp := bytes.Compare(Encode(a), Encode(b))
		switch {
		case a < b && cmp >= 0:
			t.Errorf("FuzzFloat64Order(%v, %v): a < b but bytes.Compare = %d", a, b, cmp)
		case a == b && cmp != 0:
			t.Errorf("FuzzFloat64Order(%v, %v): a == b but bytes.Compare = %d", a, b, cmp)
		case a > b && cmp <= 0:
			t.Errorf("FuzzFloat64Order(%v, %v): a > b but bytes.Compare = %d", a, b, cmp)
		}
	})
}

// FuzzInt32Order fuzzes order preservation for a signed integer type.
func FuzzInt32Order(f *testing.F) {
	f.Add(int32(0), int32(1))
	f.Add(int32(math.MinInt32), int32(math.MaxInt32))
	f.Add(int32(-1), int32(1))

	f.Fuzz(func(t *testing.T, a, b int32) {
		cmp := bytes.Compare(Encode(a), Encode(b))
		switch {
		case a < b && cmp >= 0:
			t.Errorf("FuzzInt32Order(%d, %d): a < b but bytes.Compare = %d", a, b, cmp)
		case a == b && cmp != 0:
			t.Errorf("FuzzInt32Order(%d, %d): a == b but bytes.Compare = %d", a, b, cmp)
		case a > b && cmp <= 0:
			t.Errorf("FuzzInt32Order(%d, %d): a > b but bytes.Compare = %d", a, b, cmp)
		}
	})
}
