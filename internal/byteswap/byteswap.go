// Package byteswap converts big-endian wire integers into host order.
package byteswap

import (
	"encoding/binary"
	"math/bits"
)

// hostLittle reports whether the host stores integers little-endian.
var hostLittle = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

// Uint32 reinterprets a big-endian 32-bit value in host order.
func Uint32(v uint32) uint32 {
	if hostLittle {
		return bits.ReverseBytes32(v)
	}
	return v
}

// Uint64 reinterprets a big-endian 64-bit value in host order.
func Uint64(v uint64) uint64 {
	if hostLittle {
		return bits.ReverseBytes64(v)
	}
	return v
}

// BigEndian32 loads the first 4 bytes of p as they appear in memory and
// swaps them into host order. p must hold at least 4 bytes.
func BigEndian32(p []byte) uint32 {
	return Uint32(binary.NativeEndian.Uint32(p))
}

// BigEndian64 loads the first 8 bytes of p and swaps them into host order.
// p must hold at least 8 bytes.
func BigEndian64(p []byte) uint64 {
	return Uint64(binary.NativeEndian.Uint64(p))
}
