// Package endian pins down the byte order of the running host and converts
// native numeric representations to and from canonical (most significant
// byte first) order. The host order is probed exactly once, before main
// runs, and is immutable afterwards, so it is safe to read from any
// goroutine without synchronization.
package endian

import "unsafe"

// Order is a host byte order.
type Order int8

const (
	Big    Order = 0
	Little Order = 1
)

// Host is the byte order of this process. Never written after package
// initialization.
var Host = probe()

// probe inspects the native representation of a known uint16: if the low
// byte lands first in memory, the host is little-endian.
func probe() Order {
	x := uint16(0x1)
	if (*[2]byte)(unsafe.Pointer(&x))[0] == 0x1 {
		return Little
	}
	return Big
}

// Canonicalize converts b between native and canonical order in place. On a
// little-endian host this reverses b; on a big-endian host the native layout
// already is canonical and b is untouched. Reversal is its own inverse, so
// encode and decode paths call the same function.
func Canonicalize(b []byte) {
	if Host == Big {
		return
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
