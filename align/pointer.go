package align

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// IsAlignedPointer reports whether p is aligned to alignment. A nil pointer is
// aligned to every boundary.
func IsAlignedPointer[A constraints.Integer](p unsafe.Pointer, alignment A) bool {
	if p == nil {
		return true
	}

	return IsAligned(uintptr(p), alignment)
}

// UpPointer rounds p up to the next multiple of alignment. A nil pointer stays nil.
//
// The result is not checked against the allocation p points into.
func UpPointer[A constraints.Integer](p unsafe.Pointer, alignment A) unsafe.Pointer {
	if p == nil {
		return nil
	}

	addr := uintptr(p)
	return unsafe.Add(p, Up(addr, alignment)-addr)
}

// DownPointer rounds p down to the previous multiple of alignment. A nil
// pointer stays nil.
func DownPointer[A constraints.Integer](p unsafe.Pointer, alignment A) unsafe.Pointer {
	if p == nil {
		return nil
	}

	addr := uintptr(p)
	return unsafe.Add(p, -int(addr-Down(addr, alignment)))
}

// IsAlignedPtr is IsAlignedPointer for typed pointers.
func IsAlignedPtr[P ~*E, E any, A constraints.Integer](p P, alignment A) bool {
	return IsAlignedPointer(unsafe.Pointer(p), alignment)
}

// UpPtr is UpPointer for typed pointers. The result has the same type as p,
// named pointer types included.
func UpPtr[P ~*E, E any, A constraints.Integer](p P, alignment A) P {
	return P(UpPointer(unsafe.Pointer(p), alignment))
}

// DownPtr is DownPointer for typed pointers. The result has the same type as p.
func DownPtr[P ~*E, E any, A constraints.Integer](p P, alignment A) P {
	return P(DownPointer(unsafe.Pointer(p), alignment))
}
