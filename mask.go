package zorder

// log2 of the bit width of each supported coordinate type. Valid only
// because all supported widths are powers of two.
const (
	log8  = 3
	log16 = 4
	log32 = 5
	log64 = 6
)

// lowMask64 returns a mask with the n least significant bits set.
//
// n is always derived from compile-time constants, so a value outside of
// (0, 64] is a bug in this package rather than bad input - fail loudly
// instead of producing a silently wrong mask.
func lowMask64(n uint) uint64 {
	if n == 0 || n > 64 {
		panic("zorder: mask width out of range")
	}

	return ^uint64(0) >> (64 - n)
}

// interleaveMask64 returns the stage filter used while interleaving and
// deinterleaving: runs of `bits` set bits, the first starting at bit 0,
// repeating every dim*bits positions across the whole word.
func interleaveMask64(dim, bits uint) uint64 {
	var (
		mask = lowMask64(bits)
		acc  uint64
	)

	for shift := uint(0); shift < 64; shift += dim * bits {
		acc |= mask << shift
	}

	return acc
}

// interleaveMask128 is interleaveMask64 over a 128-bit word.
func interleaveMask128(dim, bits uint) Uint128 {
	var (
		mask = Uint128{Lo: lowMask64(bits)}
		acc  Uint128
	)

	for shift := uint(0); shift < 128; shift += dim * bits {
		acc = acc.Or(mask.Shl(shift))
	}

	return acc
}

// interleaveShift returns the shift distance applied at the given doubling
// stage: (dim - 1) * 2^stage.
func interleaveShift(stage, dim uint) uint {
	return (dim - 1) << stage
}
