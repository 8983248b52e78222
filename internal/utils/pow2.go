package utils

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// IsPowerOfTwo returns true if n is a power of two (and nonzero).
func IsPowerOfTwo[T constraints.Unsigned](n T) bool {
	return n != 0 && n&(n-1) == 0
}

// Log2 returns the base-2 logarithm of n, assuming n is a power of two.
func Log2[T constraints.Unsigned](n T) int {
	return bits.Len64(uint64(n)) - 1
}
