// Package field describes the closed set of numeric wire types the codec
// supports and their fixed encoded widths.
package field

import "github.com/pkg/errors"

// Type represents one of the fixed-width numeric wire types.
type Type uint8

const (
	TUnknown Type = 0
	TInt8    Type = 1
	TInt16   Type = 2
	TInt32   Type = 3
	TInt64   Type = 4
	TUint8   Type = 5
	TUint16  Type = 6
	TUint32  Type = 7
	TUint64  Type = 8
	TFloat32 Type = 9
	TFloat64 Type = 10
)

var names = [...]string{
	TUnknown: "unknown",
	TInt8:    "int8",
	TInt16:   "int16",
	TInt32:   "int32",
	TInt64:   "int64",
	TUint8:   "uint8",
	TUint16:  "uint16",
	TUint32:  "uint32",
	TUint64:  "uint64",
	TFloat32: "float32",
	TFloat64: "float64",
}

// String implements fmt.Stringer.
func (t Type) String() string {
	if int(t) >= len(names) {
		return "unknown"
	}
	return names[t]
}

// Size returns the encoded length in bytes.
func (t Type) Size() int {
	switch t {
	case TInt8, TUint8:
		return 1
	case TInt16, TUint16:
		return 2
	case TInt32, TUint32, TFloat32:
		return 4
	case TInt64, TUint64, TFloat64:
		return 8
	}
	return 0
}

// Signed reports whether t is a signed integer type.
func (t Type) Signed() bool {
	switch t {
	case TInt8, TInt16, TInt32, TInt64:
		return true
	}
	return false
}

// Float reports whether t is a floating-point type.
func (t Type) Float() bool {
	return t == TFloat32 || t == TFloat64
}

// Bits returns the width of t in bits.
func (t Type) Bits() int {
	return t.Size() * 8
}

// Parse maps a type name such as "int32" or "float64" to its Type.
func Parse(s string) (Type, error) {
	for t, name := range names {
		if Type(t) != TUnknown && name == s {
			return Type(t), nil
		}
	}
	return TUnknown, errors.Errorf("unknown numeric type %q", s)
}
