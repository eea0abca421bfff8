package bitops

// BinaryToGray converts x to its reflected binary Gray code. The encodings
// of two consecutive integers differ by exactly one bit.
func BinaryToGray[T Unsigned](x T) T {
	return x ^ (x >> 1)
}

// GrayToBinary converts the reflected binary Gray code g back to the value
// it encodes.
func GrayToBinary[T Unsigned](g T) T {
	for s, w := uint(1), Width[T](); s < w; s <<= 1 {
		g ^= g >> s
	}
	return g
}
