package ordkey

// This file holds the encoders that turn a native number into its
// order-preserving byte string. Decoders live in decode.go.

import (
	"fmt"
	"math"

	"github.com/bearlytools/ordkey/internal/conversions"
	"github.com/bearlytools/ordkey/internal/endian"
)

// Every NaN input collapses to the quiet NaN pattern before encoding, so
// all NaNs share one encoding that sorts above +Inf. Decoding that key
// yields the quiet NaN.
const (
	quietNaN32 = 0x7fc00000
	quietNaN64 = 0x7ff8000000000000
)

// Encode returns the order-preserving encoding of v. The result always has
// the encoded width of v's type: 1, 2, 4 or 8 bytes. For all a, b of the
// same type, a < b exactly when bytes.Compare(Encode(a), Encode(b)) < 0.
//
// Both float zeros encode identically and decode to +0.0. NaNs all encode
// to a single key above +Inf; their order relative to each other is not
// meaningful.
func Encode[N Number](v N) []byte {
	return Append(make([]byte, 0, width[N]()), v)
}

// Append appends the encoding of v to dst and returns the extended slice.
// Appending several encoded values in sequence yields a composite key that
// sorts by the first value, then the second, and so on, because every
// encoding has a fixed width.
func Append[N Number](dst []byte, v N) []byte {
	switch n := any(v).(type) {
	case int8:
		return appendInt(dst, &n, true)
	case int16:
		return appendInt(dst, &n, true)
	case int32:
		return appendInt(dst, &n, true)
	case int64:
		return appendInt(dst, &n, true)
	case uint8:
		return appendInt(dst, &n, false)
	case uint16:
		return appendInt(dst, &n, false)
	case uint32:
		return appendInt(dst, &n, false)
	case uint64:
		return appendInt(dst, &n, false)
	case float32:
		if math.IsNaN(float64(n)) {
			n = math.Float32frombits(quietNaN32)
			return appendFloat(dst, &n, true)
		}
		return appendFloat(dst, &n, n >= 0)
	case float64:
		if math.IsNaN(n) {
			n = math.Float64frombits(quietNaN64)
			return appendFloat(dst, &n, true)
		}
		return appendFloat(dst, &n, n >= 0)
	}
	panic(fmt.Sprintf("%T passed the Number constraint but has no encoder, this is a bug", v))
}

// appendInt lays out the native bytes of v most significant first, then
// flips the sign bit for signed types. Flipping moves the negative half of
// the two's-complement range below the non-negative half, so the most
// negative value becomes all zeros and the most positive all ones.
// Unsigned magnitudes are already monotone once canonical.
func appendInt[N conversions.Fixed](dst []byte, v *N, signed bool) []byte {
	start := len(dst)
	dst = append(dst, conversions.Bytes(v)...)
	b := dst[start:]
	endian.Canonicalize(b)
	if signed {
		b[0] ^= 0x80
	}
	return dst
}

// appendFloat lays out the native IEEE-754 bytes most significant first,
// then sets the sign bit for non-negative values or complements every byte
// for negative ones. Non-negative IEEE values already sort by raw bit
// pattern; complementing the negative half reverses its internal order and
// clears its sign bit, placing all negatives below all non-negatives.
// -0.0 compares >= 0, takes the non-negative branch and lands on the same
// key as +0.0.
func appendFloat[N conversions.Fixed](dst []byte, v *N, nonNegative bool) []byte {
	start := len(dst)
	dst = append(dst, conversions.Bytes(v)...)
	b := dst[start:]
	endian.Canonicalize(b)
	if nonNegative {
		b[0] |= 0x80
	} else {
		for i := range b {
			b[i] = ^b[i]
		}
	}
	return dst
}
