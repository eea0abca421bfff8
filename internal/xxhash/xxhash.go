// Package xxhash implements the 64 bits xxHash algorithm on single machine
// words, as used to generate pseudo-random inputs in tests.
//
// The hash of a uint64 is equal to the xxHash64 of its 8 bytes little-endian
// representation with a zero seed.
package xxhash

import "math/bits"

const (
	prime1 uint64 = 0x9E3779B185EBCA87
	prime2 uint64 = 0xC2B2AE3D27D4EB4F
	prime3 uint64 = 0x165667B19E3779F9
	prime4 uint64 = 0x85EBCA77C2B2AE63
	prime5 uint64 = 0x27D4EB2F165667C5
)

// Sum64Uint64 returns the hash of v.
func Sum64Uint64(v uint64) uint64 {
	h := prime5 + 8
	h ^= round(0, v)
	return avalanche(bits.RotateLeft64(h, 27)*prime1 + prime4)
}

// MultiSum64Uint64 writes the hashes of values in v to h, and returns the
// number of hashes written, which is the smallest of len(h) and len(v).
func MultiSum64Uint64(h []uint64, v []uint64) int {
	n := len(h)
	if n > len(v) {
		n = len(v)
	}
	h = h[:n]
	v = v[:n]
	for i := range v {
		h[i] = Sum64Uint64(v[i])
	}
	return n
}

func round(acc, input uint64) uint64 {
	acc += input * prime2
	acc = bits.RotateLeft64(acc, 31)
	acc *= prime1
	return acc
}

func avalanche(h uint64) uint64 {
	h ^= h >> 33
	h *= prime2
	h ^= h >> 29
	h *= prime3
	h ^= h >> 32
	return h
}
