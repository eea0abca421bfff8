package bitops

const (
	m1 = 0x5555555555555555 // 01010101 ...
	m2 = 0x3333333333333333 // 00110011 ...
	m4 = 0x0f0f0f0f0f0f0f0f // 00001111 ...
	m8 = 0x00ff00ff00ff00ff
	mX = 0x0000ffff0000ffff
)

// ReverseBits returns the value of x with its bits in reversed order: bit i
// of the result is bit Width[T]()-1-i of x.
func ReverseBits[T Unsigned](x T) T {
	return T(reverse64(uint64(x)) >> (64 - Width[T]()))
}

// ReverseBytes returns the value of x with its bytes in reversed order. The
// order of bits within each byte is preserved.
func ReverseBytes[T Wide](x T) T {
	return T(swap64(uint64(x)) >> (64 - Width[T]()))
}

func reverse64(x uint64) uint64 {
	x = x>>1&m1 | x&m1<<1
	x = x>>2&m2 | x&m2<<2
	x = x>>4&m4 | x&m4<<4
	return swap64(x)
}

func swap64(x uint64) uint64 {
	x = x>>8&m8 | x&m8<<8
	x = x>>16&mX | x&mX<<16
	return x>>32 | x<<32
}
