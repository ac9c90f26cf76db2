// Package ordkey encodes fixed-width numbers as fixed-length byte strings
// whose unsigned lexicographic order equals the numeric order of the
// values. Keys built this way can be range-scanned in byte-ordered stores
// (LSM trees, B-trees, anything memcmp-sorted) without a custom comparator.
//
// Every operation is a pure function; the only process-wide state is the
// host byte order, probed once at startup, so the package is safe for
// concurrent use without locks.
//
// The byte layout is a wire contract and is identical on every
// architecture: values are laid out most significant byte first, signed
// integers get their sign bit flipped, and floats get their sign bit set
// when non-negative or all bits complemented when negative. For example
// Encode[int32](1200) is always [0x80, 0x00, 0x04, 0xB0].
package ordkey

import (
	"github.com/bearlytools/ordkey/internal/field"
	"github.com/pkg/errors"
)

// Type identifies a supported numeric wire type.
type Type = field.Type

const (
	TUnknown = field.TUnknown
	TInt8    = field.TInt8
	TInt16   = field.TInt16
	TInt32   = field.TInt32
	TInt64   = field.TInt64
	TUint8   = field.TUint8
	TUint16  = field.TUint16
	TUint32  = field.TUint32
	TUint64  = field.TUint64
	TFloat32 = field.TFloat32
	TFloat64 = field.TFloat64
)

// ParseType maps a type name such as "int32" or "float64" to its Type.
func ParseType(s string) (Type, error) {
	return field.Parse(s)
}

// Integer are the fixed-width integer types the codec supports.
type Integer interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

// Float are the IEEE-754 types the codec supports.
type Float interface {
	float32 | float64
}

// Number are all types the codec supports.
type Number interface {
	Integer | Float
}

// ErrLength is returned by Decode when the input is not exactly the
// encoded width of the requested type.
var ErrLength = errors.New("wrong encoded length")

// width returns the encoded byte length of N.
func width[N Number]() int {
	var zero N
	switch any(zero).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	}
	return 8
}
