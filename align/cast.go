package align

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// UpCast rounds p up to the alignment of U and returns it as a *U.
//
//	hdr := align.UpCast[header](&buf[off])
//
// An unsafe.Pointer is passed as a *byte:
//
//	hdr := align.UpCast[header]((*byte)(p))
func UpCast[U, E any](p *E) *U {
	return UpCastTo[U](p, alignOf[U]())
}

// DownCast rounds p down to the alignment of U and returns it as a *U.
func DownCast[U, E any](p *E) *U {
	return DownCastTo[U](p, alignOf[U]())
}

// UpCastTo rounds p up to alignment and returns it as a *U. A nil p gives a nil *U.
func UpCastTo[U, E any, A constraints.Integer](p *E, alignment A) *U {
	return (*U)(UpPointer(unsafe.Pointer(p), alignment))
}

// DownCastTo rounds p down to alignment and returns it as a *U. A nil p gives a
// nil *U.
func DownCastTo[U, E any, A constraints.Integer](p *E, alignment A) *U {
	return (*U)(DownPointer(unsafe.Pointer(p), alignment))
}

func alignOf[U any]() uintptr {
	var zero U
	return unsafe.Alignof(zero)
}
