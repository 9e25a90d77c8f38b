package zorder

// coord is the closed set of supported coordinate scalars. Every other
// integer type is rejected at the interface boundary.
type coord interface {
	uint8 | uint16 | uint32 | uint64
}

// encode64s interleaves all coordinates into one index, for outputs that
// fit a uint64. Coordinate i occupies index bits {i, i+N, i+2N, ...} where
// N = len(coords).
func encode64s[T coord](coords []T, srcLog2 uint) uint64 {
	var (
		dim = uint(len(coords))
		idx uint64
	)

	for i, c := range coords {
		idx |= interleave64(uint64(c), dim, srcLog2) << uint(i)
	}

	return idx
}

// encode128s is encode64s for outputs wider than 64 bits.
func encode128s[T coord](coords []T, srcLog2 uint) Uint128 {
	var (
		dim = uint(len(coords))
		idx Uint128
	)

	for i, c := range coords {
		idx = idx.Or(interleave128(uint64(c), dim, srcLog2).Shl(uint(i)))
	}

	return idx
}

// Encode2x8 returns the Morton index of two 8-bit coordinates.
func Encode2x8(c [2]uint8) uint16 { return uint16(encode64s(c[:], log8)) }

// Encode3x8 returns the Morton index of three 8-bit coordinates.
func Encode3x8(c [3]uint8) uint32 { return uint32(encode64s(c[:], log8)) }

// Encode4x8 returns the Morton index of four 8-bit coordinates.
func Encode4x8(c [4]uint8) uint32 { return uint32(encode64s(c[:], log8)) }

// Encode5x8 returns the Morton index of five 8-bit coordinates.
func Encode5x8(c [5]uint8) uint64 { return encode64s(c[:], log8) }

// Encode6x8 returns the Morton index of six 8-bit coordinates.
func Encode6x8(c [6]uint8) uint64 { return encode64s(c[:], log8) }

// Encode7x8 returns the Morton index of seven 8-bit coordinates.
func Encode7x8(c [7]uint8) uint64 { return encode64s(c[:], log8) }

// Encode8x8 returns the Morton index of eight 8-bit coordinates.
func Encode8x8(c [8]uint8) uint64 { return encode64s(c[:], log8) }

// Encode9x8 returns the Morton index of nine 8-bit coordinates.
func Encode9x8(c [9]uint8) Uint128 { return encode128s(c[:], log8) }

// Encode10x8 returns the Morton index of ten 8-bit coordinates.
func Encode10x8(c [10]uint8) Uint128 { return encode128s(c[:], log8) }

// Encode11x8 returns the Morton index of eleven 8-bit coordinates.
func Encode11x8(c [11]uint8) Uint128 { return encode128s(c[:], log8) }

// Encode12x8 returns the Morton index of twelve 8-bit coordinates.
func Encode12x8(c [12]uint8) Uint128 { return encode128s(c[:], log8) }

// Encode13x8 returns the Morton index of thirteen 8-bit coordinates.
func Encode13x8(c [13]uint8) Uint128 { return encode128s(c[:], log8) }

// Encode14x8 returns the Morton index of fourteen 8-bit coordinates.
func Encode14x8(c [14]uint8) Uint128 { return encode128s(c[:], log8) }

// Encode15x8 returns the Morton index of fifteen 8-bit coordinates.
func Encode15x8(c [15]uint8) Uint128 { return encode128s(c[:], log8) }

// Encode16x8 returns the Morton index of sixteen 8-bit coordinates.
func Encode16x8(c [16]uint8) Uint128 { return encode128s(c[:], log8) }

// Encode2x16 returns the Morton index of two 16-bit coordinates.
func Encode2x16(c [2]uint16) uint32 { return uint32(encode64s(c[:], log16)) }

// Encode3x16 returns the Morton index of three 16-bit coordinates.
func Encode3x16(c [3]uint16) uint64 { return encode64s(c[:], log16) }

// Encode4x16 returns the Morton index of four 16-bit coordinates.
func Encode4x16(c [4]uint16) uint64 { return encode64s(c[:], log16) }

// Encode5x16 returns the Morton index of five 16-bit coordinates.
func Encode5x16(c [5]uint16) Uint128 { return encode128s(c[:], log16) }

// Encode6x16 returns the Morton index of six 16-bit coordinates.
func Encode6x16(c [6]uint16) Uint128 { return encode128s(c[:], log16) }

// Encode7x16 returns the Morton index of seven 16-bit coordinates.
func Encode7x16(c [7]uint16) Uint128 { return encode128s(c[:], log16) }

// Encode8x16 returns the Morton index of eight 16-bit coordinates.
func Encode8x16(c [8]uint16) Uint128 { return encode128s(c[:], log16) }

// Encode2x32 returns the Morton index of two 32-bit coordinates.
func Encode2x32(c [2]uint32) uint64 { return encode64s(c[:], log32) }

// Encode3x32 returns the Morton index of three 32-bit coordinates.
func Encode3x32(c [3]uint32) Uint128 { return encode128s(c[:], log32) }

// Encode4x32 returns the Morton index of four 32-bit coordinates.
func Encode4x32(c [4]uint32) Uint128 { return encode128s(c[:], log32) }

// Encode2x64 returns the Morton index of two 64-bit coordinates.
func Encode2x64(c [2]uint64) Uint128 { return encode128s(c[:], log64) }
