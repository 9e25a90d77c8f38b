package zorder

// The interleave engines spread the bits of one coordinate so that
// consecutive bits end up dim positions apart, leaving room for the other
// dim-1 coordinates. A naive implementation moves one bit at a time and is
// O(n) in the bit width; the engines below halve the group size being moved
// at every stage and finish in O(log n) word operations. Extrapolated and
// generalized from the 2D algorithm described at
// http://graphics.stanford.edu/~seander/bithacks.html#InterleaveBMN.
//
// A single 64-bit engine serves every output width up to 64: the stage masks
// agree on their low bits across widths and intermediate values never exceed
// dim * 2^srcLog2 bits, so computing in a wider word and truncating is exact.

// interleave64 spreads the low 2^srcLog2 bits of v across dim-bit strides,
// placing them at positions 0, dim, 2*dim, ...
func interleave64(v uint64, dim, srcLog2 uint) uint64 {
	x := v

	for i := int(srcLog2) - 1; i >= 0; i-- {
		x = (x | x<<interleaveShift(uint(i), dim)) & interleaveMask64(dim, 1<<uint(i))
	}

	return x
}

// interleave128 is interleave64 over a 128-bit word, for outputs too wide
// for uint64.
func interleave128(v uint64, dim, srcLog2 uint) Uint128 {
	x := Uint128{Lo: v}

	for i := int(srcLog2) - 1; i >= 0; i-- {
		shift := interleaveShift(uint(i), dim)
		x = x.Or(x.Shl(shift)).And(interleaveMask128(dim, 1<<uint(i)))
	}

	return x
}
