package zorder

import (
	"math/rand"
	"testing"
)

const randRounds = 2000

func TestEncode(t *testing.T) {
	t.Run("known-values", testEncodeKnownValues)
	t.Run("zero", testEncodeZero)
}

func testEncodeKnownValues(t *testing.T) {
	if actual := Encode2x32([2]uint32{3, 7}); actual != 0b101_111 {
		t.Errorf("expected [47], got [%d]", actual)
	}
	if actual := Decode2x32(0b101_111); actual != ([2]uint32{3, 7}) {
		t.Errorf("expected [[3 7]], got [%v]", actual)
	}

	if actual := Encode2x16([2]uint16{1, 1}); actual != 3 {
		t.Errorf("expected [3], got [%d]", actual)
	}
	if actual := Decode2x16(3); actual != ([2]uint16{1, 1}) {
		t.Errorf("expected [[1 1]], got [%v]", actual)
	}

	if actual := Encode2x32([2]uint32{7, 7}); actual != 0b111111 {
		t.Errorf("expected [63], got [%d]", actual)
	}

	// One full 8-bit axis of three lands on every third bit.
	if actual := Encode3x8([3]uint8{0xFF, 0, 0}); actual != 0b001_001_001_001_001_001_001_001 {
		t.Errorf("expected [0x249249], got [%#x]", actual)
	}
}

func testEncodeZero(t *testing.T) {
	if actual := Encode3x8([3]uint8{}); actual != 0 {
		t.Errorf("expected [0], got [%d]", actual)
	}
	if actual := Encode3x16([3]uint16{}); actual != 0 {
		t.Errorf("expected [0], got [%d]", actual)
	}
	if actual := Encode3x32([3]uint32{}); !actual.IsZero() {
		t.Errorf("expected [0], got [%v]", actual)
	}
	if actual := Encode16x8([16]uint8{}); !actual.IsZero() {
		t.Errorf("expected [0], got [%v]", actual)
	}
}

// TestRoundTrip covers decode(encode(c)) == c for every codec pair: the
// 2x8 pair exhaustively, everything else with a fixed-seed random sweep.
func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(0x5eed))

	t.Run("2x8-exhaustive", func(t *testing.T) {
		for x := 0; x < 1<<8; x++ {
			for y := 0; y < 1<<8; y++ {
				c := [2]uint8{uint8(x), uint8(y)}
				if actual := Decode2x8(Encode2x8(c)); actual != c {
					t.Fatalf("expected [%v], got [%v]", c, actual)
				}
			}
		}
	})

	r8 := func() uint8 { return uint8(r.Uint64()) }
	r16 := func() uint16 { return uint16(r.Uint64()) }
	r32 := func() uint32 { return uint32(r.Uint64()) }

	t.Run("3x8", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			c := [3]uint8{r8(), r8(), r8()}
			if actual := Decode3x8(Encode3x8(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("4x8", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			c := [4]uint8{r8(), r8(), r8(), r8()}
			if actual := Decode4x8(Encode4x8(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("5x8", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			c := [5]uint8{r8(), r8(), r8(), r8(), r8()}
			if actual := Decode5x8(Encode5x8(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("6x8", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			c := [6]uint8{r8(), r8(), r8(), r8(), r8(), r8()}
			if actual := Decode6x8(Encode6x8(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("7x8", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			c := [7]uint8{r8(), r8(), r8(), r8(), r8(), r8(), r8()}
			if actual := Decode7x8(Encode7x8(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("8x8", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			c := [8]uint8{r8(), r8(), r8(), r8(), r8(), r8(), r8(), r8()}
			if actual := Decode8x8(Encode8x8(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("9x8", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			var c [9]uint8
			for i := range c {
				c[i] = r8()
			}
			if actual := Decode9x8(Encode9x8(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("10x8", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			var c [10]uint8
			for i := range c {
				c[i] = r8()
			}
			if actual := Decode10x8(Encode10x8(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("11x8", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			var c [11]uint8
			for i := range c {
				c[i] = r8()
			}
			if actual := Decode11x8(Encode11x8(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("12x8", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			var c [12]uint8
			for i := range c {
				c[i] = r8()
			}
			if actual := Decode12x8(Encode12x8(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("13x8", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			var c [13]uint8
			for i := range c {
				c[i] = r8()
			}
			if actual := Decode13x8(Encode13x8(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("14x8", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			var c [14]uint8
			for i := range c {
				c[i] = r8()
			}
			if actual := Decode14x8(Encode14x8(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("15x8", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			var c [15]uint8
			for i := range c {
				c[i] = r8()
			}
			if actual := Decode15x8(Encode15x8(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("16x8", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			var c [16]uint8
			for i := range c {
				c[i] = r8()
			}
			if actual := Decode16x8(Encode16x8(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("2x16", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			c := [2]uint16{r16(), r16()}
			if actual := Decode2x16(Encode2x16(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("3x16", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			c := [3]uint16{r16(), r16(), r16()}
			if actual := Decode3x16(Encode3x16(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("4x16", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			c := [4]uint16{r16(), r16(), r16(), r16()}
			if actual := Decode4x16(Encode4x16(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("5x16", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			c := [5]uint16{r16(), r16(), r16(), r16(), r16()}
			if actual := Decode5x16(Encode5x16(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("6x16", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			c := [6]uint16{r16(), r16(), r16(), r16(), r16(), r16()}
			if actual := Decode6x16(Encode6x16(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("7x16", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			c := [7]uint16{r16(), r16(), r16(), r16(), r16(), r16(), r16()}
			if actual := Decode7x16(Encode7x16(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("8x16", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			c := [8]uint16{r16(), r16(), r16(), r16(), r16(), r16(), r16(), r16()}
			if actual := Decode8x16(Encode8x16(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("2x32", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			c := [2]uint32{r32(), r32()}
			if actual := Decode2x32(Encode2x32(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("3x32", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			c := [3]uint32{r32(), r32(), r32()}
			if actual := Decode3x32(Encode3x32(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("4x32", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			c := [4]uint32{r32(), r32(), r32(), r32()}
			if actual := Decode4x32(Encode4x32(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})

	t.Run("2x64", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			c := [2]uint64{r.Uint64(), r.Uint64()}
			if actual := Decode2x64(Encode2x64(c)); actual != c {
				t.Fatalf("expected [%v], got [%v]", c, actual)
			}
		}
	})
}

// TestInverseRoundTrip covers encode(decode(i)) == i for indexes whose
// unused high bits are zero - the full image of encode.
func TestInverseRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(0xd1ce))

	t.Run("2x8", func(t *testing.T) {
		for idx := 0; idx <= 0xFFFF; idx++ {
			if actual := Encode2x8(Decode2x8(uint16(idx))); actual != uint16(idx) {
				t.Fatalf("expected [%#x], got [%#x]", idx, actual)
			}
		}
	})

	t.Run("3x8", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			idx := uint32(r.Uint64()) & 0x00FF_FFFF // 24 used bits.
			if actual := Encode3x8(Decode3x8(idx)); actual != idx {
				t.Fatalf("expected [%#x], got [%#x]", idx, actual)
			}
		}
	})

	t.Run("5x8", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			idx := r.Uint64() & 0xFF_FFFF_FFFF // 40 used bits.
			if actual := Encode5x8(Decode5x8(idx)); actual != idx {
				t.Fatalf("expected [%#x], got [%#x]", idx, actual)
			}
		}
	})

	t.Run("2x16", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			idx := uint32(r.Uint64())
			if actual := Encode2x16(Decode2x16(idx)); actual != idx {
				t.Fatalf("expected [%#x], got [%#x]", idx, actual)
			}
		}
	})

	t.Run("3x16", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			idx := r.Uint64() & 0xFFFF_FFFF_FFFF // 48 used bits.
			if actual := Encode3x16(Decode3x16(idx)); actual != idx {
				t.Fatalf("expected [%#x], got [%#x]", idx, actual)
			}
		}
	})

	t.Run("2x32", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			idx := r.Uint64()
			if actual := Encode2x32(Decode2x32(idx)); actual != idx {
				t.Fatalf("expected [%#x], got [%#x]", idx, actual)
			}
		}
	})

	t.Run("13x8", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			// 104 used bits: mask the high half down to 40.
			idx := Uint128{Hi: r.Uint64() & 0xFF_FFFF_FFFF, Lo: r.Uint64()}
			if actual := Encode13x8(Decode13x8(idx)); actual != idx {
				t.Fatalf("expected [%v], got [%v]", idx, actual)
			}
		}
	})

	t.Run("3x32", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			// 96 used bits.
			idx := Uint128{Hi: r.Uint64() & 0xFFFF_FFFF, Lo: r.Uint64()}
			if actual := Encode3x32(Decode3x32(idx)); actual != idx {
				t.Fatalf("expected [%v], got [%v]", idx, actual)
			}
		}
	})

	t.Run("2x64", func(t *testing.T) {
		for n := 0; n < randRounds; n++ {
			idx := Uint128{Hi: r.Uint64(), Lo: r.Uint64()}
			if actual := Encode2x64(Decode2x64(idx)); actual != idx {
				t.Fatalf("expected [%v], got [%v]", idx, actual)
			}
		}
	})
}
