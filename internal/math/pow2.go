package math

import "golang.org/x/exp/constraints"

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo[T constraints.Integer](n T) bool {
	return n > 0 && n&(n-1) == 0
}

// PowersOfTwo returns 1, 2, 4, ... up to and including limit. A limit below one
// yields an empty slice.
func PowersOfTwo(limit uint64) []uint64 {
	var out []uint64
	for p := uint64(1); p != 0 && p <= limit; p <<= 1 {
		out = append(out, p)
	}

	return out
}
