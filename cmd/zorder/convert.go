package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kauppie/zorder"
)

// encode parses one coordinate per argument, interleaves them and prints the
// resulting index.
func encode(args []string) {
	if uint(len(args)) != dims {
		fail("encode expects exactly %d coordinate(s) with -dims %d, got %d", dims, dims, len(args))
	}

	coords := make([]uint64, dims)
	for i, arg := range args {
		v, err := strconv.ParseUint(arg, 0, 64)
		if err != nil {
			fail("invalid coordinate [%s]: %s", arg, err)
		}
		if width < 64 && v>>width != 0 {
			fail("coordinate [%s] does not fit into %d bits", arg, width)
		}
		coords[i] = v
	}

	out, err := encodeIndex(coords)
	if err != nil {
		fail("%s", err)
	}

	fmt.Println(out)
	os.Exit(0)
}

// decode parses a single index argument and prints its coordinates.
func decode(args []string) {
	if len(args) != 1 {
		fail("decode expects exactly one index argument")
	}

	coords, err := decodeIndex(args[0])
	if err != nil {
		fail("%s", err)
	}

	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = strconv.FormatUint(c, 10)
	}

	fmt.Println(strings.Join(parts, " "))
	os.Exit(0)
}

// narrow converts parsed coordinates to the scalar type the codec expects.
// Range validation already happened during argument parsing.
func narrow[T uint8 | uint16 | uint32 | uint64](c []uint64) []T {
	out := make([]T, len(c))
	for i, v := range c {
		out[i] = T(v)
	}
	return out
}

// widen converts decoded coordinates back to uint64 for printing.
func widen[T uint8 | uint16 | uint32 | uint64](c []T) []uint64 {
	out := make([]uint64, len(c))
	for i, v := range c {
		out[i] = uint64(v)
	}
	return out
}

func u64out(idx uint64) string {
	return fmt.Sprintf("%d (0b%b)", idx, idx)
}

func u128out(idx zorder.Uint128) string {
	return "0x" + idx.String()
}

func parseU64(s string, bits uint) (uint64, error) {
	idx, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid index [%s]: %s", s, err)
	}
	if bits < 64 && idx>>bits != 0 {
		return 0, fmt.Errorf("index [%s] does not fit into %d bits", s, bits)
	}
	return idx, nil
}

func parseU128(s string, bits uint) (zorder.Uint128, error) {
	h := strings.TrimPrefix(strings.ToLower(s), "0x")
	if h == "" || len(h) > 32 {
		return zorder.Uint128{}, fmt.Errorf("invalid 128-bit index [%s]: expected up to 32 hex digits", s)
	}

	var lo, hi string
	if len(h) > 16 {
		hi, lo = h[:len(h)-16], h[len(h)-16:]
	} else {
		lo = h
	}

	var out zorder.Uint128
	var err error
	if out.Lo, err = strconv.ParseUint(lo, 16, 64); err != nil {
		return zorder.Uint128{}, fmt.Errorf("invalid 128-bit index [%s]: %s", s, err)
	}
	if hi != "" {
		if out.Hi, err = strconv.ParseUint(hi, 16, 64); err != nil {
			return zorder.Uint128{}, fmt.Errorf("invalid 128-bit index [%s]: %s", s, err)
		}
	}

	// Shr(128) is defined as 0, so a full-width index needs no special case.
	if !out.Shr(bits).IsZero() {
		return zorder.Uint128{}, fmt.Errorf("index [%s] does not fit into %d bits", s, bits)
	}

	return out, nil
}

// encodeIndex is the runtime dispatch over the statically typed codec set,
// keyed by the -width and -dims flags.
func encodeIndex(c []uint64) (string, error) {
	switch width {
	case 8:
		a := narrow[uint8](c)
		switch dims {
		case 2:
			return u64out(uint64(zorder.Encode2x8([2]uint8(a)))), nil
		case 3:
			return u64out(uint64(zorder.Encode3x8([3]uint8(a)))), nil
		case 4:
			return u64out(uint64(zorder.Encode4x8([4]uint8(a)))), nil
		case 5:
			return u64out(zorder.Encode5x8([5]uint8(a))), nil
		case 6:
			return u64out(zorder.Encode6x8([6]uint8(a))), nil
		case 7:
			return u64out(zorder.Encode7x8([7]uint8(a))), nil
		case 8:
			return u64out(zorder.Encode8x8([8]uint8(a))), nil
		case 9:
			return u128out(zorder.Encode9x8([9]uint8(a))), nil
		case 10:
			return u128out(zorder.Encode10x8([10]uint8(a))), nil
		case 11:
			return u128out(zorder.Encode11x8([11]uint8(a))), nil
		case 12:
			return u128out(zorder.Encode12x8([12]uint8(a))), nil
		case 13:
			return u128out(zorder.Encode13x8([13]uint8(a))), nil
		case 14:
			return u128out(zorder.Encode14x8([14]uint8(a))), nil
		case 15:
			return u128out(zorder.Encode15x8([15]uint8(a))), nil
		case 16:
			return u128out(zorder.Encode16x8([16]uint8(a))), nil
		}
	case 16:
		a := narrow[uint16](c)
		switch dims {
		case 2:
			return u64out(uint64(zorder.Encode2x16([2]uint16(a)))), nil
		case 3:
			return u64out(zorder.Encode3x16([3]uint16(a))), nil
		case 4:
			return u64out(zorder.Encode4x16([4]uint16(a))), nil
		case 5:
			return u128out(zorder.Encode5x16([5]uint16(a))), nil
		case 6:
			return u128out(zorder.Encode6x16([6]uint16(a))), nil
		case 7:
			return u128out(zorder.Encode7x16([7]uint16(a))), nil
		case 8:
			return u128out(zorder.Encode8x16([8]uint16(a))), nil
		}
	case 32:
		a := narrow[uint32](c)
		switch dims {
		case 2:
			return u64out(zorder.Encode2x32([2]uint32(a))), nil
		case 3:
			return u128out(zorder.Encode3x32([3]uint32(a))), nil
		case 4:
			return u128out(zorder.Encode4x32([4]uint32(a))), nil
		}
	case 64:
		if dims == 2 {
			return u128out(zorder.Encode2x64([2]uint64(c))), nil
		}
	}

	return "", fmt.Errorf("no codec for %d coordinate(s) of %d bits", dims, width)
}

// decodeIndex is the inverse dispatch of encodeIndex.
func decodeIndex(arg string) ([]uint64, error) {
	switch width {
	case 8:
		switch dims {
		case 2:
			idx, err := parseU64(arg, 16)
			if err != nil {
				return nil, err
			}
			v := zorder.Decode2x8(uint16(idx))
			return widen(v[:]), nil
		case 3:
			idx, err := parseU64(arg, 24)
			if err != nil {
				return nil, err
			}
			v := zorder.Decode3x8(uint32(idx))
			return widen(v[:]), nil
		case 4:
			idx, err := parseU64(arg, 32)
			if err != nil {
				return nil, err
			}
			v := zorder.Decode4x8(uint32(idx))
			return widen(v[:]), nil
		case 5:
			idx, err := parseU64(arg, 40)
			if err != nil {
				return nil, err
			}
			v := zorder.Decode5x8(idx)
			return widen(v[:]), nil
		case 6:
			idx, err := parseU64(arg, 48)
			if err != nil {
				return nil, err
			}
			v := zorder.Decode6x8(idx)
			return widen(v[:]), nil
		case 7:
			idx, err := parseU64(arg, 56)
			if err != nil {
				return nil, err
			}
			v := zorder.Decode7x8(idx)
			return widen(v[:]), nil
		case 8:
			idx, err := parseU64(arg, 64)
			if err != nil {
				return nil, err
			}
			v := zorder.Decode8x8(idx)
			return widen(v[:]), nil
		case 9, 10, 11, 12, 13, 14, 15, 16:
			idx, err := parseU128(arg, width*dims)
			if err != nil {
				return nil, err
			}
			switch dims {
			case 9:
				v := zorder.Decode9x8(idx)
				return widen(v[:]), nil
			case 10:
				v := zorder.Decode10x8(idx)
				return widen(v[:]), nil
			case 11:
				v := zorder.Decode11x8(idx)
				return widen(v[:]), nil
			case 12:
				v := zorder.Decode12x8(idx)
				return widen(v[:]), nil
			case 13:
				v := zorder.Decode13x8(idx)
				return widen(v[:]), nil
			case 14:
				v := zorder.Decode14x8(idx)
				return widen(v[:]), nil
			case 15:
				v := zorder.Decode15x8(idx)
				return widen(v[:]), nil
			default:
				v := zorder.Decode16x8(idx)
				return widen(v[:]), nil
			}
		}
	case 16:
		switch dims {
		case 2:
			idx, err := parseU64(arg, 32)
			if err != nil {
				return nil, err
			}
			v := zorder.Decode2x16(uint32(idx))
			return widen(v[:]), nil
		case 3:
			idx, err := parseU64(arg, 48)
			if err != nil {
				return nil, err
			}
			v := zorder.Decode3x16(idx)
			return widen(v[:]), nil
		case 4:
			idx, err := parseU64(arg, 64)
			if err != nil {
				return nil, err
			}
			v := zorder.Decode4x16(idx)
			return widen(v[:]), nil
		case 5, 6, 7, 8:
			idx, err := parseU128(arg, width*dims)
			if err != nil {
				return nil, err
			}
			switch dims {
			case 5:
				v := zorder.Decode5x16(idx)
				return widen(v[:]), nil
			case 6:
				v := zorder.Decode6x16(idx)
				return widen(v[:]), nil
			case 7:
				v := zorder.Decode7x16(idx)
				return widen(v[:]), nil
			default:
				v := zorder.Decode8x16(idx)
				return widen(v[:]), nil
			}
		}
	case 32:
		switch dims {
		case 2:
			idx, err := parseU64(arg, 64)
			if err != nil {
				return nil, err
			}
			v := zorder.Decode2x32(idx)
			return widen(v[:]), nil
		case 3, 4:
			idx, err := parseU128(arg, width*dims)
			if err != nil {
				return nil, err
			}
			if dims == 3 {
				v := zorder.Decode3x32(idx)
				return widen(v[:]), nil
			}
			v := zorder.Decode4x32(idx)
			return widen(v[:]), nil
		}
	case 64:
		if dims == 2 {
			idx, err := parseU128(arg, width*dims)
			if err != nil {
				return nil, err
			}
			v := zorder.Decode2x64(idx)
			return widen(v[:]), nil
		}
	}

	return nil, fmt.Errorf("no codec for %d coordinate(s) of %d bits", dims, width)
}
