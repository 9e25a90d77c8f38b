package zorder

// decode64s extracts all coordinates of a uint64-sized index. Note that the
// dimension count is taken from len(coords) - it cannot be recovered from
// the index value itself, since several (width, dimension) combinations
// share the same index type.
func decode64s[T coord](idx uint64, coords []T, outLog2 uint) {
	dim := uint(len(coords))

	for i := range coords {
		coords[i] = T(deinterleave64(idx, dim, outLog2, uint(i)))
	}
}

// decode128s is decode64s for indexes wider than 64 bits.
func decode128s[T coord](idx Uint128, coords []T, outLog2 uint) {
	dim := uint(len(coords))

	for i := range coords {
		coords[i] = T(deinterleave128(idx, dim, outLog2, uint(i)))
	}
}

// Decode2x8 returns the two 8-bit coordinates of the given Morton index.
func Decode2x8(idx uint16) (c [2]uint8) {
	decode64s(uint64(idx), c[:], log8)
	return c
}

// Decode3x8 returns the three 8-bit coordinates of the given Morton index.
func Decode3x8(idx uint32) (c [3]uint8) {
	decode64s(uint64(idx), c[:], log8)
	return c
}

// Decode4x8 returns the four 8-bit coordinates of the given Morton index.
func Decode4x8(idx uint32) (c [4]uint8) {
	decode64s(uint64(idx), c[:], log8)
	return c
}

// Decode5x8 returns the five 8-bit coordinates of the given Morton index.
func Decode5x8(idx uint64) (c [5]uint8) {
	decode64s(idx, c[:], log8)
	return c
}

// Decode6x8 returns the six 8-bit coordinates of the given Morton index.
func Decode6x8(idx uint64) (c [6]uint8) {
	decode64s(idx, c[:], log8)
	return c
}

// Decode7x8 returns the seven 8-bit coordinates of the given Morton index.
func Decode7x8(idx uint64) (c [7]uint8) {
	decode64s(idx, c[:], log8)
	return c
}

// Decode8x8 returns the eight 8-bit coordinates of the given Morton index.
func Decode8x8(idx uint64) (c [8]uint8) {
	decode64s(idx, c[:], log8)
	return c
}

// Decode9x8 returns the nine 8-bit coordinates of the given Morton index.
func Decode9x8(idx Uint128) (c [9]uint8) {
	decode128s(idx, c[:], log8)
	return c
}

// Decode10x8 returns the ten 8-bit coordinates of the given Morton index.
func Decode10x8(idx Uint128) (c [10]uint8) {
	decode128s(idx, c[:], log8)
	return c
}

// Decode11x8 returns the eleven 8-bit coordinates of the given Morton index.
func Decode11x8(idx Uint128) (c [11]uint8) {
	decode128s(idx, c[:], log8)
	return c
}

// Decode12x8 returns the twelve 8-bit coordinates of the given Morton index.
func Decode12x8(idx Uint128) (c [12]uint8) {
	decode128s(idx, c[:], log8)
	return c
}

// Decode13x8 returns the thirteen 8-bit coordinates of the given Morton index.
func Decode13x8(idx Uint128) (c [13]uint8) {
	decode128s(idx, c[:], log8)
	return c
}

// Decode14x8 returns the fourteen 8-bit coordinates of the given Morton index.
func Decode14x8(idx Uint128) (c [14]uint8) {
	decode128s(idx, c[:], log8)
	return c
}

// Decode15x8 returns the fifteen 8-bit coordinates of the given Morton index.
func Decode15x8(idx Uint128) (c [15]uint8) {
	decode128s(idx, c[:], log8)
	return c
}

// Decode16x8 returns the sixteen 8-bit coordinates of the given Morton index.
func Decode16x8(idx Uint128) (c [16]uint8) {
	decode128s(idx, c[:], log8)
	return c
}

// Decode2x16 returns the two 16-bit coordinates of the given Morton index.
func Decode2x16(idx uint32) (c [2]uint16) {
	decode64s(uint64(idx), c[:], log16)
	return c
}

// Decode3x16 returns the three 16-bit coordinates of the given Morton index.
func Decode3x16(idx uint64) (c [3]uint16) {
	decode64s(idx, c[:], log16)
	return c
}

// Decode4x16 returns the four 16-bit coordinates of the given Morton index.
func Decode4x16(idx uint64) (c [4]uint16) {
	decode64s(idx, c[:], log16)
	return c
}

// Decode5x16 returns the five 16-bit coordinates of the given Morton index.
func Decode5x16(idx Uint128) (c [5]uint16) {
	decode128s(idx, c[:], log16)
	return c
}

// Decode6x16 returns the six 16-bit coordinates of the given Morton index.
func Decode6x16(idx Uint128) (c [6]uint16) {
	decode128s(idx, c[:], log16)
	return c
}

// Decode7x16 returns the seven 16-bit coordinates of the given Morton index.
func Decode7x16(idx Uint128) (c [7]uint16) {
	decode128s(idx, c[:], log16)
	return c
}

// Decode8x16 returns the eight 16-bit coordinates of the given Morton index.
func Decode8x16(idx Uint128) (c [8]uint16) {
	decode128s(idx, c[:], log16)
	return c
}

// Decode2x32 returns the two 32-bit coordinates of the given Morton index.
func Decode2x32(idx uint64) (c [2]uint32) {
	decode64s(idx, c[:], log32)
	return c
}

// Decode3x32 returns the three 32-bit coordinates of the given Morton index.
func Decode3x32(idx Uint128) (c [3]uint32) {
	decode128s(idx, c[:], log32)
	return c
}

// Decode4x32 returns the four 32-bit coordinates of the given Morton index.
func Decode4x32(idx Uint128) (c [4]uint32) {
	decode128s(idx, c[:], log32)
	return c
}

// Decode2x64 returns the two 64-bit coordinates of the given Morton index.
func Decode2x64(idx Uint128) (c [2]uint64) {
	decode128s(idx, c[:], log64)
	return c
}
