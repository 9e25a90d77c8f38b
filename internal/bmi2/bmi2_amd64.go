//go:build amd64

package bmi2

import "golang.org/x/sys/cpu"

// pdepIsHardware marks this build as using the real instructions rather
// than the portable fallbacks.
const pdepIsHardware = true

// Supported reports whether the PDEP and PEXT instructions are usable on
// this CPU. CPU features are immutable at runtime, so the probe is resolved
// once during package init by x/sys/cpu and this is a plain read afterwards.
//
// Gets temporarily swapped out with a mock during tests.
var Supported = supportedReal

func supportedReal() bool {
	return cpu.X86.HasBMI2
}

// Pdep deposits the low bits of src into the bit positions selected by
// mask. Must not be called unless Supported() returned true - on older
// CPUs the instruction does not exist and the call faults.
//
//go:noescape
func Pdep(src, mask uint64) uint64

// Pext extracts the bits of src selected by mask into a contiguous
// low-order run. Same hardware requirement as Pdep.
//
//go:noescape
func Pext(src, mask uint64) uint64
