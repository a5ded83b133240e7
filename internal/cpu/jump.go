package cpu

import (
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/bits"
)

// jumpAbsolute jumps to the address encoded after the opcode if cc
// holds, otherwise it skips the address bytes.
//
//	JP nn
//	JP cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit little-endian immediate value
func (c *CPU) jumpAbsolute(cc Condition) uint16 {
	if c.condition(cc) {
		return c.immediate16()
	}
	return c.PC + 3
}

// jumpRelative jumps by the signed offset encoded after the opcode,
// relative to the address of the next instruction, if cc holds.
//
//	JR e
//	JR cc, e
//	cc = NZ, Z, NC, C
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(cc Condition) uint16 {
	next := c.PC + 2
	if c.condition(cc) {
		return uint16(int32(next) + int32(int8(c.immediate8())))
	}
	return next
}

// ret pops the return address off the stack and jumps to it if cc
// holds.
//
//	RET
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) ret(cc Condition) uint16 {
	if c.condition(cc) {
		return c.pop()
	}
	return c.PC + 1
}

// pop reads the little-endian word at SP and moves SP past it.
func (c *CPU) pop() uint16 {
	low := c.b.Read(c.SP)
	high := c.b.Read(c.SP + 1)
	c.SP += 2
	return bits.Join(high, low)
}

func init() {
	define(Instruction{Opcode: 0xC3, Mnemonic: JP, Target: Abs16}, func(c *CPU, ins Instruction) uint16 {
		return c.jumpAbsolute(ins.Condition)
	})
	define(Instruction{Opcode: 0xE9, Mnemonic: JP, Target: RegHL}, func(c *CPU, _ Instruction) uint16 {
		return c.Pair(types.HL)
	})
	define(Instruction{Opcode: 0x18, Mnemonic: JR, Target: Rel8}, func(c *CPU, ins Instruction) uint16 {
		return c.jumpRelative(ins.Condition)
	})
	define(Instruction{Opcode: 0xC9, Mnemonic: RET}, func(c *CPU, ins Instruction) uint16 {
		return c.ret(ins.Condition)
	})

	for i, cc := range conditions {
		op := uint8(i << 3)
		// 0xC2, 0xCA, 0xD2, 0xDA - JP cc, a16
		define(Instruction{Opcode: 0xC2 | op, Mnemonic: JP, Condition: cc, Target: Abs16}, func(c *CPU, ins Instruction) uint16 {
			return c.jumpAbsolute(ins.Condition)
		})
		// 0x20, 0x28, 0x30, 0x38 - JR cc, r8
		define(Instruction{Opcode: 0x20 | op, Mnemonic: JR, Condition: cc, Target: Rel8}, func(c *CPU, ins Instruction) uint16 {
			return c.jumpRelative(ins.Condition)
		})
		// 0xC0, 0xC8, 0xD0, 0xD8 - RET cc
		define(Instruction{Opcode: 0xC0 | op, Mnemonic: RET, Condition: cc}, func(c *CPU, ins Instruction) uint16 {
			return c.ret(ins.Condition)
		})
	}
}
