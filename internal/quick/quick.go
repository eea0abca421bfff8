// Package quick provides property checking over the domain of unsigned
// integer types.
package quick

import (
	"fmt"

	"github.com/segmentio/bitops-go"
	"github.com/segmentio/bitops-go/internal/xxhash"
)

const (
	// MaxExhaustiveWidth is the width of the largest types that Check
	// enumerates entirely.
	MaxExhaustiveWidth = 16

	// Samples is the number of pseudo-random values that Check generates
	// for types wider than MaxExhaustiveWidth.
	Samples = 1000000

	// Seed is the seed of the pseudo-random sequence used by Check.
	Seed = 0
)

// Check is inspired by the standard quick.Check package, but tests every
// value of T when the type is small enough to be enumerated, and a
// reproducible sample of Samples values derived from Seed otherwise. The
// extreme values of T are always part of the sample.
//
// Check returns an error describing the first input for which f returned
// false.
func Check[T bitops.Unsigned](f func(T) bool) error {
	if bitops.Width[T]() <= MaxExhaustiveWidth {
		return checkAll(f)
	}
	return CheckSample(f, Seed, Samples)
}

// CheckSample calls f with the extreme values of T followed by count
// values of the pseudo-random sequence derived from seed.
func CheckSample[T bitops.Unsigned](f func(T) bool, seed uint64, count int) error {
	for _, v := range extremes[T]() {
		if !f(v) {
			return failure(0, v)
		}
	}

	var in, out [256]uint64

	for i := 0; i < count; i += len(in) {
		n := count - i
		if n > len(in) {
			n = len(in)
		}

		for j := range in[:n] {
			in[j] = seed + uint64(i+j)
		}

		n = xxhash.MultiSum64Uint64(out[:n], in[:n])

		for j, h := range out[:n] {
			if v := T(h); !f(v) {
				return failure(i+j+1, v)
			}
		}
	}

	return nil
}

// Values fills values with the pseudo-random sequence derived from seed,
// which is the sequence that CheckSample tests after the extreme values.
func Values[T bitops.Unsigned](values []T, seed uint64) {
	for i := range values {
		values[i] = T(xxhash.Sum64Uint64(seed + uint64(i)))
	}
}

func checkAll[T bitops.Unsigned](f func(T) bool) error {
	for v := T(0); ; v++ {
		if !f(v) {
			return failure(0, v)
		}
		if v == ^T(0) {
			return nil
		}
	}
}

func extremes[T bitops.Unsigned]() []T {
	ones := ^T(0)
	return []T{0, 1, ones, ones >> 1, ^(ones >> 1)}
}

func failure[T bitops.Unsigned](test int, v T) error {
	if test == 0 {
		return fmt.Errorf("failed on input %#x", uint64(v))
	}
	return fmt.Errorf("test #%d: failed on input %#x", test, uint64(v))
}
