//go:build purego || !amd64

package bitops

func onesCount64(x uint64) int { return popcount64(x) }
