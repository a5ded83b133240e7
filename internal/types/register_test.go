package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// seeded returns a register file with every register holding a
// distinct value, so stray writes are visible.
func seeded() Registers {
	return Registers{
		A: 0x11, B: 0x22, C: 0x33, D: 0x44, E: 0x55, H: 0x66, L: 0x77,
		F: Flags{Zero: true, Carry: true},
	}
}

func TestRegisters_Pair(t *testing.T) {
	r := seeded()
	assert.Equal(t, uint16(0x1190), r.Pair(AF))
	assert.Equal(t, uint16(0x2233), r.Pair(BC))
	assert.Equal(t, uint16(0x4455), r.Pair(DE))
	assert.Equal(t, uint16(0x6677), r.Pair(HL))
}

func TestRegisters_SetPair(t *testing.T) {
	values := []uint16{0x0000, 0x0001, 0x00FF, 0x0100, 0x1234, 0x8000, 0xABCD, 0xFFFF}
	for _, p := range []Pair{BC, DE, HL} {
		for _, v := range values {
			r := seeded()
			r.SetPair(p, v)
			assert.Equal(t, v, r.Pair(p), "%s=%04X", p, v)

			// every register outside the pair keeps its value
			want := seeded()
			switch p {
			case BC:
				want.B, want.C = uint8(v>>8), uint8(v)
			case DE:
				want.D, want.E = uint8(v>>8), uint8(v)
			case HL:
				want.H, want.L = uint8(v>>8), uint8(v)
			}
			assert.Equal(t, want, r, "%s=%04X", p, v)
		}
	}
}

func TestRegisters_SetPairAF(t *testing.T) {
	for v := 0; v <= 0xFFFF; v += 0x0107 {
		r := seeded()
		r.SetPair(AF, uint16(v))
		assert.Equal(t, uint16(v)&0xFFF0, r.Pair(AF))

		want := seeded()
		want.A = uint8(v >> 8)
		want.F = ByteToFlags(uint8(v))
		assert.Equal(t, want, r)
	}
}

func TestPostBoot(t *testing.T) {
	r := PostBoot(DMGABC)
	assert.Equal(t, uint16(0x01B0), r.Pair(AF))
	assert.Equal(t, uint16(0x0013), r.Pair(BC))
	assert.Equal(t, uint16(0x00D8), r.Pair(DE))
	assert.Equal(t, uint16(0x014D), r.Pair(HL))

	assert.Equal(t, PostBoot(Unset), PostBoot(Model(42)))

	r.Reset()
	assert.Equal(t, Registers{}, r)
}

func TestPair_String(t *testing.T) {
	assert.Equal(t, "HL", HL.String())
	assert.Equal(t, "Pair(9)", Pair(9).String())
	assert.Equal(t, DMGABC, StringToModel("dmg"))
}
