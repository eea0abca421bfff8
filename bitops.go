/*
Package bitops implements exact bit-level transforms over fixed-width
unsigned integers.

Every function is generic over the width of its operand: the same code
serves uint8, uint16, uint32, uint64, uint and uintptr (and any type
derived from them), with the width taken from the type itself.

Rotation

RotateLeft and RotateRight shift circularly by an amount reduced modulo
the width. Rotate takes a signed amount, positive values rotating left
and negative values rotating right.

Reversal

ReverseBits mirrors the bit order of a value, ReverseBytes mirrors its
byte order. ReverseBytes does not accept 8 bits operands.

Counting

CountBits returns the population count of a value and Parity its low bit.

Gray code

BinaryToGray converts to the reflected binary Gray code, GrayToBinary
converts back.

Folding

FoldBits XOR-reduces a 64 bits value into a narrower field of n bits.

None of the functions in this package allocate, and all of them are safe
to call concurrently.
*/
package bitops

import "unsafe"

// Unsigned is the set of types accepted by the functions of this package.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Wide is the subset of Unsigned types made of more than one byte.
type Wide interface {
	~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Width returns the number of bits in values of type T.
func Width[T Unsigned]() uint {
	var x T
	return 8 * uint(unsafe.Sizeof(x))
}
