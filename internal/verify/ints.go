package verify

import (
	"fmt"
	"slices"
	"unsafe"

	"github.com/davejbax/memalign/align"
	"golang.org/x/exp/constraints"
)

// Checks performed on every subject/alignment pair
const (
	CheckUp        = "align_up"
	CheckDown      = "align_down"
	CheckIsAligned = "is_aligned"

	CheckIdempotent    = "idempotent"
	CheckOrdered       = "ordered"
	CheckPostcondition = "postcondition"
	CheckDistance      = "distance"
)

type bounds[T constraints.Integer] struct {
	bits     uint
	signed   bool
	min, max T
}

func boundsOf[T constraints.Integer]() bounds[T] {
	var zero T
	b := bounds[T]{
		bits:   uint(unsafe.Sizeof(zero)) * 8,
		signed: ^zero < 0,
	}

	if b.signed {
		b.max = T(uint64(1)<<(b.bits-1) - 1)
		b.min = ^b.max
	} else {
		b.max = ^zero
	}

	return b
}

// contains reports whether v survives a round trip through T.
func (b bounds[T]) contains(v int64) bool {
	if v < 0 && !b.signed {
		return false
	}

	return int64(T(v)) == v
}

// alignments returns the powers of two up to limit that T can hold.
func (b bounds[T]) alignments(limit []uint64) []uint64 {
	out := make([]uint64, 0, len(limit))
	for _, a := range limit {
		if a >= uint64(1)<<b.bits && b.bits < 64 {
			break
		}
		out = append(out, a)
	}

	return out
}

func subjects[T constraints.Integer](cfg *Config, b bounds[T]) []T {
	var xs []T

	for v := cfg.Start; v < cfg.End; v++ {
		if b.contains(v) {
			xs = append(xs, T(v))
		}
	}

	if cfg.Negatives && b.signed {
		for v := -(cfg.End - cfg.Start); v < 0; v++ {
			if b.contains(v) {
				xs = append(xs, T(v))
			}
		}
	}

	if cfg.Extremes {
		for i := T(0); i < 4; i++ {
			xs = append(xs, b.min+i, b.max-i)
		}
	}

	slices.Sort(xs)
	return slices.Compact(xs)
}

// reference computes the expected results with modulo arithmetic only. The
// remainder is taken towards negative infinity so negative subjects match the
// bit-mask semantics; all sums wrap exactly the way the library's do.
func reference[T constraints.Integer](x T, a uint64) (up, down T, aligned bool) {
	at := T(a)
	r := x % at
	if r < 0 {
		r += at
	}

	if r == 0 {
		return x, x, true
	}

	return x - r + at, x - r, false
}

func checkInts[T constraints.Integer](cfg *Config, alignments []uint64) []Result {
	b := boundsOf[T]()
	typ := fmt.Sprintf("%T", T(0))
	xs := subjects(cfg, b)
	as := b.alignments(alignments)

	var results []Result
	add := func(check string, x T, a uint64, want, got any) {
		results = append(results, Result{
			Check:     check,
			Type:      typ,
			Value:     fmt.Sprint(x),
			Alignment: a,
			Want:      fmt.Sprint(want),
			Got:       fmt.Sprint(got),
		})
	}

	for _, a := range as {
		for _, x := range xs {
			up, down := align.Up(x, a), align.Down(x, a)
			wantUp, wantDown, wantAligned := reference(x, a)

			add(CheckUp, x, a, wantUp, up)
			add(CheckDown, x, a, wantDown, down)
			add(CheckIsAligned, x, a, wantAligned, align.IsAligned(x, a))

			if !cfg.Properties {
				continue
			}

			add(CheckIdempotent, x, a, true, align.Up(up, a) == up && align.Down(down, a) == down)
			add(CheckPostcondition, x, a, true, align.IsAligned(up, a) && align.IsAligned(down, a))

			// Ordering and distance only hold when a is positive in T and
			// rounding up did not wrap.
			if T(a) < 0 || up < x {
				continue
			}

			isAligned := align.IsAligned(x, a)
			add(CheckOrdered, x, a, true, down <= x && x <= up && (down == x) == isAligned && (up == x) == isAligned)
			add(CheckDistance, x, a, true, uint64(up-x) < a && uint64(x-down) < a)
		}
	}

	return results
}
