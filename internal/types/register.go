package types

import (
	"fmt"

	"github.com/thelolagemann/sm83/pkg/bits"
)

// Register represents a GB Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it is used to hold the flags, see Flags.
type Register = uint8

// Pair names one of the 4 virtual 16-bit registers formed by two
// 8-bit registers, high byte first.
type Pair uint8

const (
	AF Pair = iota // A:F
	BC             // B:C
	DE             // D:E
	HL             // H:L
)

var pairNames = [...]string{AF: "AF", BC: "BC", DE: "DE", HL: "HL"}

func (p Pair) String() string {
	if int(p) < len(pairNames) {
		return pairNames[p]
	}
	return fmt.Sprintf("Pair(%d)", uint8(p))
}

// Pairs lists every register pair, in encoding order.
var Pairs = [...]Pair{AF, BC, DE, HL}

// Registers represents the GB CPU registers.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Flags
	H Register
	L Register
}

// Pair returns the value of the given register pair as an uint16,
// the high register shifted into the upper byte.
func (r *Registers) Pair(p Pair) uint16 {
	switch p {
	case AF:
		return bits.Join(r.A, FlagsToByte(r.F))
	case BC:
		return bits.Join(r.B, r.C)
	case DE:
		return bits.Join(r.D, r.E)
	case HL:
		return bits.Join(r.H, r.L)
	}
	return 0
}

// SetPair splits value into its high and low bytes and stores them in
// the two registers backing the given pair. No other register is
// touched.
//
// Writing AF stores the low byte through ByteToFlags, so the lower
// nibble is always dropped.
func (r *Registers) SetPair(p Pair, value uint16) {
	high, low := bits.Split(value)
	switch p {
	case AF:
		r.A, r.F = high, ByteToFlags(low)
	case BC:
		r.B, r.C = high, low
	case DE:
		r.D, r.E = high, low
	case HL:
		r.H, r.L = high, low
	}
}

// Reset zeroes every register.
func (r *Registers) Reset() {
	*r = Registers{}
}

// PostBoot returns the register values the boot ROM of the given
// model leaves behind when it hands control to the cartridge.
func PostBoot(m Model) Registers {
	v, ok := ModelRegisters[m]
	if !ok {
		v = ModelRegisters[Unset]
	}
	return Registers{
		A: v[0],
		F: ByteToFlags(v[1]),
		B: v[2],
		C: v[3],
		D: v[4],
		E: v[5],
		H: v[6],
		L: v[7],
	}
}

func (r Registers) String() string {
	return fmt.Sprintf("A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X",
		r.A, FlagsToByte(r.F), r.B, r.C, r.D, r.E, r.H, r.L)
}
