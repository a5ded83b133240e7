package cpu

import "github.com/thelolagemann/sm83/pkg/bits"

// testBit tests the bit at the given position in the given value.
//
//	BIT n, r
//	n = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit n of r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, position uint8) {
	c.setFlags(!bits.Test(value, position), false, true, c.F.Carry)
}

// generateBitInstructions generates the bit instructions
// for the CB instruction set, BIT, RES, and SET.
//
// The instructions are generated in the form of;
//
//	0x40 - BIT 0, B
//	0x41 - BIT 0, C
//	...
//	0xFF - SET 7, A
//
// RES and SET on (HL) write back to memory and are left undefined.
func generateBitInstructions() {
	for bit := uint8(0); bit <= 7; bit++ {
		for r, reg := range registerOperands {
			op := bit<<3 | uint8(r)

			define(Instruction{Opcode: 0x40 | op, Prefixed: true, Mnemonic: BIT, Bit: bit, Target: reg}, sequential(func(c *CPU, ins Instruction) {
				c.testBit(c.read8(ins.Target), ins.Bit)
			}))

			if reg == MemHL {
				continue
			}

			define(Instruction{Opcode: 0x80 | op, Prefixed: true, Mnemonic: RES, Bit: bit, Target: reg}, sequential(func(c *CPU, ins Instruction) {
				c.write8(ins.Target, bits.Reset(c.read8(ins.Target), ins.Bit))
			}))
			define(Instruction{Opcode: 0xC0 | op, Prefixed: true, Mnemonic: SET, Bit: bit, Target: reg}, sequential(func(c *CPU, ins Instruction) {
				c.write8(ins.Target, bits.Set(c.read8(ins.Target), ins.Bit))
			}))
		}
	}
}

func init() {
	generateBitInstructions()
}
