package zorder

import (
	"math/bits"

	"github.com/kauppie/zorder/internal/bmi2"
)

// HasHardwareSupport reports whether the CPU provides the bit-deposit and
// bit-extract instructions backing the accelerated codecs. The probe reads
// immutable CPU state resolved once at process start, so the answer never
// changes within a process.
func HasHardwareSupport() bool {
	return bmi2.Supported()
}

// Token is proof that the hardware bit-deposit and bit-extract instructions
// are usable on the current CPU. It carries no state and can be freely
// copied, cached and shared between goroutines; it never expires within the
// lifetime of a process.
//
// AcquireToken is the only sanctioned way to obtain one. Do not fabricate a
// Token directly - the accelerated methods perform no support checks of
// their own and will fault on a CPU without the instructions.
type Token struct {
	_ struct{}
}

// AcquireToken returns a Token if the CPU supports the accelerated codecs.
// When ok is false the returned Token must not be used.
func AcquireToken() (tok Token, ok bool) {
	return Token{}, bmi2.Supported()
}

// encodeHW64s is the hardware counterpart of encode64s: one bit-deposit per
// coordinate, with the single-bit interleave comb as the selector mask.
func encodeHW64s[T coord](coords []T) uint64 {
	var (
		dim  = uint(len(coords))
		mask = interleaveMask64(dim, 1)
		idx  uint64
	)

	for i, c := range coords {
		idx |= bmi2.Pdep(uint64(c), mask) << uint(i)
	}

	return idx
}

// decodeHW64s is the hardware counterpart of decode64s: one bit-extract per
// coordinate.
func decodeHW64s[T coord](idx uint64, coords []T) {
	var (
		dim  = uint(len(coords))
		mask = interleaveMask64(dim, 1)
	)

	for i := range coords {
		coords[i] = T(bmi2.Pext(idx>>uint(i), mask))
	}
}

// encodeHW128s splits the deposit across the two 64-bit halves of the mask:
// the low half consumes popcount(mask.Lo) coordinate bits, the high half
// deposits the rest.
func encodeHW128s[T coord](coords []T) Uint128 {
	var (
		dim  = uint(len(coords))
		mask = interleaveMask128(dim, 1)
		take = uint(bits.OnesCount64(mask.Lo))
		idx  Uint128
	)

	for i, c := range coords {
		x := Uint128{
			Hi: bmi2.Pdep(uint64(c)>>take, mask.Hi),
			Lo: bmi2.Pdep(uint64(c), mask.Lo),
		}
		idx = idx.Or(x.Shl(uint(i)))
	}

	return idx
}

// decodeHW128s mirrors encodeHW128s, stitching the two extracted halves
// back together at popcount(mask.Lo).
func decodeHW128s[T coord](idx Uint128, coords []T) {
	var (
		dim  = uint(len(coords))
		mask = interleaveMask128(dim, 1)
		take = uint(bits.OnesCount64(mask.Lo))
	)

	for i := range coords {
		v := idx.Shr(uint(i))
		coords[i] = T(bmi2.Pext(v.Lo, mask.Lo) | bmi2.Pext(v.Hi, mask.Hi)<<take)
	}
}

// The accelerated codecs below mirror the package-level functions one to
// one and are bit-identical to them on every valid input.

// Encode2x8 is the hardware-accelerated counterpart of Encode2x8.
func (Token) Encode2x8(c [2]uint8) uint16 { return uint16(encodeHW64s(c[:])) }

// Encode3x8 is the hardware-accelerated counterpart of Encode3x8.
func (Token) Encode3x8(c [3]uint8) uint32 { return uint32(encodeHW64s(c[:])) }

// Encode4x8 is the hardware-accelerated counterpart of Encode4x8.
func (Token) Encode4x8(c [4]uint8) uint32 { return uint32(encodeHW64s(c[:])) }

// Encode5x8 is the hardware-accelerated counterpart of Encode5x8.
func (Token) Encode5x8(c [5]uint8) uint64 { return encodeHW64s(c[:]) }

// Encode6x8 is the hardware-accelerated counterpart of Encode6x8.
func (Token) Encode6x8(c [6]uint8) uint64 { return encodeHW64s(c[:]) }

// Encode7x8 is the hardware-accelerated counterpart of Encode7x8.
func (Token) Encode7x8(c [7]uint8) uint64 { return encodeHW64s(c[:]) }

// Encode8x8 is the hardware-accelerated counterpart of Encode8x8.
func (Token) Encode8x8(c [8]uint8) uint64 { return encodeHW64s(c[:]) }

// Encode9x8 is the hardware-accelerated counterpart of Encode9x8.
func (Token) Encode9x8(c [9]uint8) Uint128 { return encodeHW128s(c[:]) }

// Encode10x8 is the hardware-accelerated counterpart of Encode10x8.
func (Token) Encode10x8(c [10]uint8) Uint128 { return encodeHW128s(c[:]) }

// Encode11x8 is the hardware-accelerated counterpart of Encode11x8.
func (Token) Encode11x8(c [11]uint8) Uint128 { return encodeHW128s(c[:]) }

// Encode12x8 is the hardware-accelerated counterpart of Encode12x8.
func (Token) Encode12x8(c [12]uint8) Uint128 { return encodeHW128s(c[:]) }

// Encode13x8 is the hardware-accelerated counterpart of Encode13x8.
func (Token) Encode13x8(c [13]uint8) Uint128 { return encodeHW128s(c[:]) }

// Encode14x8 is the hardware-accelerated counterpart of Encode14x8.
func (Token) Encode14x8(c [14]uint8) Uint128 { return encodeHW128s(c[:]) }

// Encode15x8 is the hardware-accelerated counterpart of Encode15x8.
func (Token) Encode15x8(c [15]uint8) Uint128 { return encodeHW128s(c[:]) }

// Encode16x8 is the hardware-accelerated counterpart of Encode16x8.
func (Token) Encode16x8(c [16]uint8) Uint128 { return encodeHW128s(c[:]) }

// Encode2x16 is the hardware-accelerated counterpart of Encode2x16.
func (Token) Encode2x16(c [2]uint16) uint32 { return uint32(encodeHW64s(c[:])) }

// Encode3x16 is the hardware-accelerated counterpart of Encode3x16.
func (Token) Encode3x16(c [3]uint16) uint64 { return encodeHW64s(c[:]) }

// Encode4x16 is the hardware-accelerated counterpart of Encode4x16.
func (Token) Encode4x16(c [4]uint16) uint64 { return encodeHW64s(c[:]) }

// Encode5x16 is the hardware-accelerated counterpart of Encode5x16.
func (Token) Encode5x16(c [5]uint16) Uint128 { return encodeHW128s(c[:]) }

// Encode6x16 is the hardware-accelerated counterpart of Encode6x16.
func (Token) Encode6x16(c [6]uint16) Uint128 { return encodeHW128s(c[:]) }

// Encode7x16 is the hardware-accelerated counterpart of Encode7x16.
func (Token) Encode7x16(c [7]uint16) Uint128 { return encodeHW128s(c[:]) }

// Encode8x16 is the hardware-accelerated counterpart of Encode8x16.
func (Token) Encode8x16(c [8]uint16) Uint128 { return encodeHW128s(c[:]) }

// Encode2x32 is the hardware-accelerated counterpart of Encode2x32.
func (Token) Encode2x32(c [2]uint32) uint64 { return encodeHW64s(c[:]) }

// Encode3x32 is the hardware-accelerated counterpart of Encode3x32.
func (Token) Encode3x32(c [3]uint32) Uint128 { return encodeHW128s(c[:]) }

// Encode4x32 is the hardware-accelerated counterpart of Encode4x32.
func (Token) Encode4x32(c [4]uint32) Uint128 { return encodeHW128s(c[:]) }

// Encode2x64 is the hardware-accelerated counterpart of Encode2x64.
func (Token) Encode2x64(c [2]uint64) Uint128 { return encodeHW128s(c[:]) }

// Decode2x8 is the hardware-accelerated counterpart of Decode2x8.
func (Token) Decode2x8(idx uint16) (c [2]uint8) {
	decodeHW64s(uint64(idx), c[:])
	return c
}

// Decode3x8 is the hardware-accelerated counterpart of Decode3x8.
func (Token) Decode3x8(idx uint32) (c [3]uint8) {
	decodeHW64s(uint64(idx), c[:])
	return c
}

// Decode4x8 is the hardware-accelerated counterpart of Decode4x8.
func (Token) Decode4x8(idx uint32) (c [4]uint8) {
	decodeHW64s(uint64(idx), c[:])
	return c
}

// Decode5x8 is the hardware-accelerated counterpart of Decode5x8.
func (Token) Decode5x8(idx uint64) (c [5]uint8) {
	decodeHW64s(idx, c[:])
	return c
}

// Decode6x8 is the hardware-accelerated counterpart of Decode6x8.
func (Token) Decode6x8(idx uint64) (c [6]uint8) {
	decodeHW64s(idx, c[:])
	return c
}

// Decode7x8 is the hardware-accelerated counterpart of Decode7x8.
func (Token) Decode7x8(idx uint64) (c [7]uint8) {
	decodeHW64s(idx, c[:])
	return c
}

// Decode8x8 is the hardware-accelerated counterpart of Decode8x8.
func (Token) Decode8x8(idx uint64) (c [8]uint8) {
	decodeHW64s(idx, c[:])
	return c
}

// Decode9x8 is the hardware-accelerated counterpart of Decode9x8.
func (Token) Decode9x8(idx Uint128) (c [9]uint8) {
	decodeHW128s(idx, c[:])
	return c
}

// Decode10x8 is the hardware-accelerated counterpart of Decode10x8.
func (Token) Decode10x8(idx Uint128) (c [10]uint8) {
	decodeHW128s(idx, c[:])
	return c
}

// Decode11x8 is the hardware-accelerated counterpart of Decode11x8.
func (Token) Decode11x8(idx Uint128) (c [11]uint8) {
	decodeHW128s(idx, c[:])
	return c
}

// Decode12x8 is the hardware-accelerated counterpart of Decode12x8.
func (Token) Decode12x8(idx Uint128) (c [12]uint8) {
	decodeHW128s(idx, c[:])
	return c
}

// Decode13x8 is the hardware-accelerated counterpart of Decode13x8.
func (Token) Decode13x8(idx Uint128) (c [13]uint8) {
	decodeHW128s(idx, c[:])
	return c
}

// Decode14x8 is the hardware-accelerated counterpart of Decode14x8.
func (Token) Decode14x8(idx Uint128) (c [14]uint8) {
	decodeHW128s(idx, c[:])
	return c
}

// Decode15x8 is the hardware-accelerated counterpart of Decode15x8.
func (Token) Decode15x8(idx Uint128) (c [15]uint8) {
	decodeHW128s(idx, c[:])
	return c
}

// Decode16x8 is the hardware-accelerated counterpart of Decode16x8.
func (Token) Decode16x8(idx Uint128) (c [16]uint8) {
	decodeHW128s(idx, c[:])
	return c
}

// Decode2x16 is the hardware-accelerated counterpart of Decode2x16.
func (Token) Decode2x16(idx uint32) (c [2]uint16) {
	decodeHW64s(uint64(idx), c[:])
	return c
}

// Decode3x16 is the hardware-accelerated counterpart of Decode3x16.
func (Token) Decode3x16(idx uint64) (c [3]uint16) {
	decodeHW64s(idx, c[:])
	return c
}

// Decode4x16 is the hardware-accelerated counterpart of Decode4x16.
func (Token) Decode4x16(idx uint64) (c [4]uint16) {
	decodeHW64s(idx, c[:])
	return c
}

// Decode5x16 is the hardware-accelerated counterpart of Decode5x16.
func (Token) Decode5x16(idx Uint128) (c [5]uint16) {
	decodeHW128s(idx, c[:])
	return c
}

// Decode6x16 is the hardware-accelerated counterpart of Decode6x16.
func (Token) Decode6x16(idx Uint128) (c [6]uint16) {
	decodeHW128s(idx, c[:])
	return c
}

// Decode7x16 is the hardware-accelerated counterpart of Decode7x16.
func (Token) Decode7x16(idx Uint128) (c [7]uint16) {
	decodeHW128s(idx, c[:])
	return c
}

// Decode8x16 is the hardware-accelerated counterpart of Decode8x16.
func (Token) Decode8x16(idx Uint128) (c [8]uint16) {
	decodeHW128s(idx, c[:])
	return c
}

// Decode2x32 is the hardware-accelerated counterpart of Decode2x32.
func (Token) Decode2x32(idx uint64) (c [2]uint32) {
	decodeHW64s(idx, c[:])
	return c
}

// Decode3x32 is the hardware-accelerated counterpart of Decode3x32.
func (Token) Decode3x32(idx Uint128) (c [3]uint32) {
	decodeHW128s(idx, c[:])
	return c
}

// Decode4x32 is the hardware-accelerated counterpart of Decode4x32.
func (Token) Decode4x32(idx Uint128) (c [4]uint32) {
	decodeHW128s(idx, c[:])
	return c
}

// Decode2x64 is the hardware-accelerated counterpart of Decode2x64.
func (Token) Decode2x64(idx Uint128) (c [2]uint64) {
	decodeHW128s(idx, c[:])
	return c
}
