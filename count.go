package bitops

const (
	h01 = 0x0101010101010101
)

// CountBits returns the number of bits set in x, in the range [0, Width[T]()].
func CountBits[T Unsigned](x T) int {
	return onesCount64(uint64(x))
}

// Parity returns 1 if x has an odd number of bits set, 0 otherwise.
func Parity[T Unsigned](x T) int {
	v := uint64(x)
	v ^= v >> 32
	v ^= v >> 16
	v ^= v >> 8
	v ^= v >> 4
	// 0x6996 is the parity table of the 16 nibble values.
	return int(0x6996>>(v&0xf)) & 1
}

// popcount64 is the software population count used when the CPU does not
// provide one.
func popcount64(x uint64) int {
	x = x - (x >> 1 & m1)
	x = x&m2 + x>>2&m2
	x = (x + x>>4) & m4
	return int(x * h01 >> 56)
}
