package cpu

import "github.com/thelolagemann/sm83/internal/types"

// add is a helper function for adding two bytes together and
// setting the flags accordingly.
//
// Used by:
//
//	ADD A, n
//	ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(a, b uint8, withCarry bool) uint8 {
	var carry uint16
	if withCarry && c.F.Carry {
		carry = 1
	}
	sum := uint16(a) + uint16(b) + carry
	c.setFlags(uint8(sum) == 0, false, uint16(a&0xF)+uint16(b&0xF)+carry > 0xF, sum > 0xFF)
	return uint8(sum)
}

// sub is a helper function for subtracting two bytes and
// setting the flags accordingly.
//
// Used by:
//
//	SUB A, n
//	SBC A, n
//	CP n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(a, b uint8, withCarry bool) uint8 {
	var carry int16
	if withCarry && c.F.Carry {
		carry = 1
	}
	diff := int16(a) - int16(b) - carry
	c.setFlags(uint8(diff) == 0, true, int16(a&0xF)-int16(b&0xF)-carry < 0, diff < 0)
	return uint8(diff)
}

// increment the given value and set the flags accordingly.
//
//	INC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(value uint8) uint8 {
	incremented := value + 1
	c.setFlags(incremented == 0, false, value&0xF == 0xF, c.F.Carry)
	return incremented
}

// decrement the given value and set the flags accordingly.
//
//	DEC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(value uint8) uint8 {
	decremented := value - 1
	c.setFlags(decremented == 0, true, value&0xF == 0x0, c.F.Carry)
	return decremented
}

// addUint16 is a helper function for adding two uint16 values together and
// setting the flags accordingly.
//
// Used by:
//
//	ADD HL, nn
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addUint16(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	c.setFlags(c.F.Zero, false, (a&0xFFF)+(b&0xFFF) > 0xFFF, sum > 0xFFFF)
	return uint16(sum)
}

// addSPSigned returns SP offset by the signed operand. The flags are
// computed as an unsigned addition on the low byte.
//
// Used by:
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned() uint16 {
	value := c.immediate8()
	result := uint16(int32(c.SP) + int32(int8(value)))
	c.setFlags(false, false, (c.SP&0xF)+uint16(value&0xF) > 0xF, (c.SP&0xFF)+uint16(value) > 0xFF)
	return result
}

// decimalAdjust corrects A to binary coded decimal after an addition
// or subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if the adjustment overflowed.
func (c *CPU) decimalAdjust() {
	if !c.F.Subtract {
		if c.F.Carry || c.A > 0x99 {
			c.A += 0x60
			c.F.Carry = true
		}
		if c.F.HalfCarry || c.A&0xF > 0x9 {
			c.A += 0x06
		}
	} else {
		if c.F.Carry {
			c.A -= 0x60
		}
		if c.F.HalfCarry {
			c.A -= 0x06
		}
	}
	c.F.Zero = c.A == 0
	c.F.HalfCarry = false
}

func init() {
	// 0x80 - 0x9F - ADD/ADC/SUB/SBC A, r
	// 0xC6, 0xCE, 0xD6, 0xDE - ADD/ADC/SUB/SBC A, d8
	for i, m := range []Mnemonic{ADD, ADC, SUB, SBC} {
		op := uint8(0x80 + i*8)
		for r, src := range registerOperands {
			define(Instruction{Opcode: op + uint8(r), Mnemonic: m, Target: RegA, Source: src}, sequential(arithmetic))
		}
		define(Instruction{Opcode: op + 0x46, Mnemonic: m, Target: RegA, Source: Imm8}, sequential(arithmetic))
	}

	// 0x04, 0x0C ... 0x3C - INC r
	// 0x05, 0x0D ... 0x3D - DEC r
	for r, reg := range registerOperands {
		if reg == MemHL {
			continue // INC (HL) and DEC (HL) write back to memory
		}
		op := uint8(r << 3)
		define(Instruction{Opcode: op | 0x04, Mnemonic: INC, Target: reg}, sequential(func(c *CPU, ins Instruction) {
			c.write8(ins.Target, c.increment(c.read8(ins.Target)))
		}))
		define(Instruction{Opcode: op | 0x05, Mnemonic: DEC, Target: reg}, sequential(func(c *CPU, ins Instruction) {
			c.write8(ins.Target, c.decrement(c.read8(ins.Target)))
		}))
	}

	// 0x03, 0x13, 0x23, 0x33 - INC rr
	// 0x0B, 0x1B, 0x2B, 0x3B - DEC rr
	// 0x09, 0x19, 0x29, 0x39 - ADD HL, rr
	for p, rr := range pairOperands {
		op := uint8(p << 4)
		define(Instruction{Opcode: op | 0x03, Mnemonic: INC, Target: rr}, sequential(func(c *CPU, ins Instruction) {
			c.write16(ins.Target, c.read16(ins.Target)+1)
		}))
		define(Instruction{Opcode: op | 0x0B, Mnemonic: DEC, Target: rr}, sequential(func(c *CPU, ins Instruction) {
			c.write16(ins.Target, c.read16(ins.Target)-1)
		}))
		define(Instruction{Opcode: op | 0x09, Mnemonic: ADD, Target: RegHL, Source: rr}, sequential(func(c *CPU, ins Instruction) {
			c.SetPair(types.HL, c.addUint16(c.Pair(types.HL), c.read16(ins.Source)))
		}))
	}

	define(Instruction{Opcode: 0xE8, Mnemonic: ADD, Target: RegSP, Source: Signed8}, sequential(func(c *CPU, _ Instruction) {
		c.SP = c.addSPSigned()
	}))
	define(Instruction{Opcode: 0x27, Mnemonic: DAA}, sequential(func(c *CPU, _ Instruction) {
		c.decimalAdjust()
	}))
	define(Instruction{Opcode: 0x2F, Mnemonic: CPL}, sequential(func(c *CPU, _ Instruction) {
		c.A = 0xFF ^ c.A
		c.F.Subtract = true
		c.F.HalfCarry = true
	}))
	define(Instruction{Opcode: 0x37, Mnemonic: SCF}, sequential(func(c *CPU, _ Instruction) {
		c.setFlags(c.F.Zero, false, false, true)
	}))
	define(Instruction{Opcode: 0x3F, Mnemonic: CCF}, sequential(func(c *CPU, _ Instruction) {
		c.setFlags(c.F.Zero, false, false, !c.F.Carry)
	}))
}

// arithmetic executes ADD, ADC, SUB and SBC against A.
func arithmetic(c *CPU, ins Instruction) {
	value := c.read8(ins.Source)
	switch ins.Mnemonic {
	case ADD:
		c.A = c.add(c.A, value, false)
	case ADC:
		c.A = c.add(c.A, value, true)
	case SUB:
		c.A = c.sub(c.A, value, false)
	case SBC:
		c.A = c.sub(c.A, value, true)
	}
}
