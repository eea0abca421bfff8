//go:build !purego

package bitops

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

var hasPOPCNT = cpu.X86.HasPOPCNT

func onesCount64(x uint64) int {
	if hasPOPCNT {
		return bits.OnesCount64(x)
	}
	return popcount64(x)
}
