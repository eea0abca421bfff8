package bitops

// RotateLeft returns the value of x rotated left by k bits. The rotation
// amount is taken modulo the width of T, rotating by the width of T is a
// no-op.
func RotateLeft[T Unsigned](x T, k uint) T {
	w := Width[T]()
	k %= w
	return (x << k) | (x >> (w - k))
}

// RotateRight returns the value of x rotated right by k bits. The rotation
// amount is taken modulo the width of T.
func RotateRight[T Unsigned](x T, k uint) T {
	w := Width[T]()
	k %= w
	return (x >> k) | (x << (w - k))
}

// Rotate returns the value of x rotated by k bits, left when k is positive
// and right when k is negative. Rotate(x, 0) returns x.
func Rotate[T Unsigned](x T, k int) T {
	switch {
	case k > 0:
		return RotateLeft(x, uint(k))
	case k < 0:
		// uint(-k) is 1<<63 for math.MinInt, which is the right magnitude.
		return RotateRight(x, uint(-k))
	default:
		return x
	}
}
