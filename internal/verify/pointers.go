package verify

import (
	"fmt"
	"unsafe"

	"github.com/davejbax/memalign/align"
)

const (
	CheckUpCast      = "align_up_cast"
	CheckDownCast    = "align_down_cast"
	CheckCastDefault = "cast_default"

	pointerType = "unsafe.Pointer"
	nilValue    = "nil"
)

// checkPointers exercises the address forms against a buffer whose base is
// aligned to the largest alignment, reporting addresses as offsets from that base.
func checkPointers(cfg *Config, alignments []uint64) []Result {
	var results []Result
	add := func(check, typ, value string, a uint64, want, got any) {
		results = append(results, Result{
			Check:     check,
			Type:      typ,
			Value:     value,
			Alignment: a,
			Want:      fmt.Sprint(want),
			Got:       fmt.Sprint(got),
		})
	}

	ptrString := func(p unsafe.Pointer) string {
		if p == nil {
			return nilValue
		}
		return fmt.Sprintf("%#x", uintptr(p))
	}

	for _, a := range alignments {
		add(CheckIsAligned, pointerType, nilValue, a, true, align.IsAlignedPointer(nil, a))
		add(CheckUp, pointerType, nilValue, a, nilValue, ptrString(align.UpPointer(nil, a)))
		add(CheckDown, pointerType, nilValue, a, nilValue, ptrString(align.DownPointer(nil, a)))
		add(CheckUpCast, "*uint64", nilValue, a, nilValue, ptrString(unsafe.Pointer(align.UpCastTo[uint64]((*byte)(nil), a))))
		add(CheckDownCast, "*uint64", nilValue, a, nilValue, ptrString(unsafe.Pointer(align.DownCastTo[uint64]((*byte)(nil), a))))
	}

	boundary := int(cfg.MaxAlignment)
	buf := make([]byte, 4*boundary)
	first := uintptr(unsafe.Pointer(&buf[0]))
	origin := int(align.Up(first, boundary)-first) + boundary

	offset := func(p unsafe.Pointer) int {
		return int(uintptr(p) - uintptr(unsafe.Pointer(&buf[origin])))
	}

	for off := max(cfg.Start, 0); off < min(cfg.End, int64(boundary)); off++ {
		p := &buf[origin+int(off)]
		value := fmt.Sprintf("base+%d", off)

		for _, a := range alignments {
			wantUp, wantDown, wantAligned := reference(off, a)

			add(CheckUp, pointerType, value, a, wantUp, offset(align.UpPointer(unsafe.Pointer(p), a)))
			add(CheckDown, pointerType, value, a, wantDown, offset(align.DownPointer(unsafe.Pointer(p), a)))
			add(CheckIsAligned, pointerType, value, a, wantAligned, align.IsAlignedPtr(p, a))
			add(CheckUpCast, "*uint64", value, a, wantUp, offset(unsafe.Pointer(align.UpCastTo[uint64](p, a))))
			add(CheckDownCast, "*uint64", value, a, wantDown, offset(unsafe.Pointer(align.DownCastTo[uint64](p, a))))
		}

		natural := uint64(unsafe.Alignof(uint64(0)))
		add(CheckCastDefault, "*uint64", value, natural,
			offset(unsafe.Pointer(align.UpCastTo[uint64](p, natural))),
			offset(unsafe.Pointer(align.UpCast[uint64](p))))
		add(CheckCastDefault, "*uint64", value, natural,
			offset(unsafe.Pointer(align.DownCastTo[uint64](p, natural))),
			offset(unsafe.Pointer(align.DownCast[uint64](p))))
	}

	return results
}
