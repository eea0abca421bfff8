package bitops

import (
	"errors"
	"fmt"
)

// MaxFoldWidth is the largest width that a 64 bits value can be folded to.
const MaxFoldWidth = 63

var (
	// ErrFoldWidth is returned by CheckFoldWidth, and used by FoldBits to
	// panic, when the width of a fold is out of range.
	ErrFoldWidth = errors.New("fold width out of range")
)

// CheckFoldWidth returns a non-nil error wrapping ErrFoldWidth if n is not
// a valid width to fold a 64 bits value into a T; n must be at least 1, at
// most MaxFoldWidth, and fit in the width of T.
func CheckFoldWidth[T Unsigned](n uint) error {
	limit := uint(MaxFoldWidth)
	if w := Width[T](); w < limit {
		limit = w
	}
	if n < 1 || n > limit {
		return fmt.Errorf("%w: %d not in [1,%d]", ErrFoldWidth, n, limit)
	}
	return nil
}

// FoldBits reduces value to n bits by XOR-ing together its consecutive n
// bits chunks, starting from the least significant end. The last chunk
// holds the 64%n remaining bits when n does not divide 64.
//
// Only the low n bits of the result may be set. The function panics if
// CheckFoldWidth[T](n) returns an error.
func FoldBits[T Unsigned](value uint64, n uint) T {
	if err := CheckFoldWidth[T](n); err != nil {
		panic(err)
	}
	return T(foldBits(value, n))
}

func foldBits(value uint64, n uint) uint64 {
	mask := uint64(1)<<n - 1
	fold := uint64(0)

	for remain := uint(64); remain > n; remain -= n {
		fold ^= value & mask
		value >>= n
	}

	return fold ^ value
}
