package ordkey

// This file holds the decoders for keys produced by the encoders in
// encode.go. Each decoder is the exact inverse of its encoder, except that
// a zero key always decodes to +0.0 and the NaN key to the quiet NaN.

import (
	"github.com/bearlytools/ordkey/internal/conversions"
	"github.com/bearlytools/ordkey/internal/endian"
	"github.com/pkg/errors"
)

// Decode decodes an order-preserving key back to a value of type N. b must
// have exactly the encoded width of N or ErrLength is returned; no partial
// decode is produced. b is not modified.
func Decode[N Number](b []byte) (N, error) {
	var zero N
	w := width[N]()
	if len(b) != w {
		return zero, errors.Wrapf(ErrLength, "expected %d bytes for %T, got %d", w, zero, len(b))
	}

	buf := make([]byte, w)
	copy(buf, b)

	switch any(zero).(type) {
	case int8, int16, int32, int64:
		// The sign-bit flip is an involution on the leading byte.
		buf[0] ^= 0x80
	case float32, float64:
		// The encoded sign bit says which branch produced the key: set
		// means the sign bit was forced on a non-negative value, clear
		// means every byte of a negative value was complemented.
		if buf[0]&0x80 != 0 {
			buf[0] ^= 0x80
		} else {
			for i := range buf {
				buf[i] = ^buf[i]
			}
		}
	}

	endian.Canonicalize(buf)
	return *conversions.Number[N](buf), nil
}
