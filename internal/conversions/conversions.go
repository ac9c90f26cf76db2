// Package conversions is a set of unsafe conversions between fixed-width
// numbers and their native in-memory byte representation. The returned
// slices and pointers alias the original storage, so no allocation happens
// and writes through one side are visible on the other.
package conversions

import (
	"fmt"
	"unsafe"
)

// Fixed are the numeric types that have a fixed size independent of the
// host architecture.
type Fixed interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64
}

// Bytes returns the native in-memory representation of the number value
// points at. The slice aliases the number's storage; byte order is whatever
// the host uses.
func Bytes[N Fixed](value *N) []byte {
	switch unsafe.Sizeof(*value) {
	case 1:
		return (*[1]byte)(unsafe.Pointer(value))[:]
	case 2:
		return (*[2]byte)(unsafe.Pointer(value))[:]
	case 4:
		return (*[4]byte)(unsafe.Pointer(value))[:]
	case 8:
		return (*[8]byte)(unsafe.Pointer(value))[:]
	}
	panic(fmt.Sprintf("unsupported type that passed the type constraint %T", *value))
}

// Number returns a pointer to an N that uses b as the underlying storage.
// b must be in host byte order and have exactly the width of N, or this
// panics.
func Number[N Fixed](b []byte) *N {
	var zero N
	if uintptr(len(b)) != unsafe.Sizeof(zero) {
		panic(fmt.Sprintf("conversions.Number[%T]: need %d bytes, got %d", zero, unsafe.Sizeof(zero), len(b)))
	}
	return (*N)(unsafe.Pointer(unsafe.SliceData(b)))
}
