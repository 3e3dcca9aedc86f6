// Package align rounds integers and addresses to power-of-two boundaries.
//
// Every alignment passed to this package must be a positive power of two.
// Other values produce unspecified results; building with the aligndebug tag
// turns them into panics.
package align

import (
	"fmt"

	"github.com/davejbax/memalign/internal/math"
	"golang.org/x/exp/constraints"
)

// IsAligned reports whether x is a multiple of alignment.
func IsAligned[T, A constraints.Integer](x T, alignment A) bool {
	return x&mask[T](alignment) == 0
}

// Up returns the smallest multiple of alignment that is >= x. Values within
// alignment-1 of the maximum of T wrap around.
func Up[T, A constraints.Integer](x T, alignment A) T {
	m := mask[T](alignment)
	return (x + m) &^ m
}

// Down returns the largest multiple of alignment that is <= x. Negative
// values round towards negative infinity, so Down(-3, 4) is -4.
func Down[T, A constraints.Integer](x T, alignment A) T {
	return x &^ mask[T](alignment)
}

func mask[T, A constraints.Integer](alignment A) T {
	if debug && !math.IsPowerOfTwo(alignment) {
		panic(fmt.Sprintf("align: alignment %d is not a power of two", alignment))
	}

	return T(alignment - 1)
}
