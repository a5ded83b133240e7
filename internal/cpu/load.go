package cpu

import "github.com/thelolagemann/sm83/internal/types"

func init() {
	// 0x40 - 0x7F - LD r, r'
	for op := 0x40; op <= 0x7F; op++ {
		dst, src := registerOperands[op>>3&7], registerOperands[op&7]
		if dst == MemHL {
			continue // 0x70 - 0x77 store to (HL), 0x76 is HALT
		}
		define(Instruction{Opcode: uint8(op), Mnemonic: LD, Target: dst, Source: src}, sequential(load8))
	}

	// 0x06, 0x0E ... 0x3E - LD r, d8
	for r, dst := range registerOperands {
		if dst == MemHL {
			continue
		}
		define(Instruction{Opcode: uint8(r<<3) | 0x06, Mnemonic: LD, Target: dst, Source: Imm8}, sequential(load8))
	}

	// 0x01, 0x11, 0x21, 0x31 - LD rr, d16
	for p, dst := range pairOperands {
		define(Instruction{Opcode: uint8(p<<4) | 0x01, Mnemonic: LD, Target: dst, Source: Imm16}, sequential(load16))
	}

	// 0x0A, 0x1A, 0x2A, 0x3A - LD A, (rr)
	for i, src := range []Operand{MemBC, MemDE, MemHLInc, MemHLDec} {
		define(Instruction{Opcode: uint8(i<<4) | 0x0A, Mnemonic: LD, Target: RegA, Source: src}, sequential(load8))
	}

	define(Instruction{Opcode: 0xF0, Mnemonic: LDH, Target: RegA, Source: Addr8}, sequential(load8))
	define(Instruction{Opcode: 0xF2, Mnemonic: LD, Target: RegA, Source: MemC}, sequential(load8))
	define(Instruction{Opcode: 0xFA, Mnemonic: LD, Target: RegA, Source: Addr16}, sequential(load8))
	define(Instruction{Opcode: 0xF9, Mnemonic: LD, Target: RegSP, Source: RegHL}, sequential(load16))
	define(Instruction{Opcode: 0xF8, Mnemonic: LD, Target: RegHL, Source: SPRel8}, sequential(func(c *CPU, _ Instruction) {
		c.SetPair(types.HL, c.addSPSigned())
	}))

	// 0xC1, 0xD1, 0xE1, 0xF1 - POP rr
	for p, dst := range []Operand{RegBC, RegDE, RegHL, RegAF} {
		define(Instruction{Opcode: uint8(p<<4) | 0xC1, Mnemonic: POP, Target: dst}, sequential(func(c *CPU, ins Instruction) {
			// POP AF discards the lower nibble of F
			c.write16(ins.Target, c.pop())
		}))
	}
}

// load8 copies an 8-bit value.
//
//	LD r, n
//	r = A, B, C, D, E, H, L
//	n = A, B, C, D, E, H, L, (HL), d8, (BC), (DE), (HL+), (HL-), (C), (a8), (a16)
//
// Flags affected: none.
func load8(c *CPU, ins Instruction) {
	c.write8(ins.Target, c.read8(ins.Source))
}

// load16 copies a 16-bit value.
//
//	LD rr, nn
//	rr = BC, DE, HL, SP
//	nn = d16, HL
//
// Flags affected: none.
func load16(c *CPU, ins Instruction) {
	c.write16(ins.Target, c.read16(ins.Source))
}
