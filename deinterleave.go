package zorder

// deinterleave64 gathers every dim-th bit of v, starting at bit position
// axis, back into a contiguous 2^outLog2-bit value. It mirrors interleave64:
// stages run in increasing order and shift right, merging ever larger groups.
func deinterleave64(v uint64, dim, outLog2, axis uint) uint64 {
	x := (v >> axis) & interleaveMask64(dim, 1)

	for i := uint(0); i < outLog2; i++ {
		x = (x | x>>interleaveShift(i, dim)) & interleaveMask64(dim, 2<<i)
	}

	return x
}

// deinterleave128 is deinterleave64 over a 128-bit word. The gathered value
// is at most 64 bits wide, so it fits the low half.
func deinterleave128(v Uint128, dim, outLog2, axis uint) uint64 {
	x := v.Shr(axis).And(interleaveMask128(dim, 1))

	for i := uint(0); i < outLog2; i++ {
		x = x.Or(x.Shr(interleaveShift(i, dim))).And(interleaveMask128(dim, 2<<i))
	}

	return x.Lo
}
