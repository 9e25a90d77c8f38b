//go:build !amd64

package bmi2

const pdepIsHardware = false

// Supported reports whether the PDEP and PEXT instructions are usable on
// this CPU. Declared as a swappable var to mirror the amd64 build.
var Supported = func() bool { return false }

// Pdep deposits the low bits of src into the bit positions selected by
// mask. Portable loop fallback; one iteration per set mask bit.
func Pdep(src, mask uint64) uint64 {
	var dst uint64

	for ; mask != 0; mask &= mask - 1 {
		if src&1 != 0 {
			dst |= mask & -mask
		}
		src >>= 1
	}

	return dst
}

// Pext extracts the bits of src selected by mask into a contiguous
// low-order run.
func Pext(src, mask uint64) uint64 {
	var (
		dst uint64
		n   uint
	)

	for ; mask != 0; mask &= mask - 1 {
		if src&mask&-mask != 0 {
			dst |= 1 << n
		}
		n++
	}

	return dst
}
