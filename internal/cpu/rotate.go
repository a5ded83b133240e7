package cpu

// rotateLeft rotates value left, bit 7 moving into both bit 0 and
// the carry flag.
//
//	RLC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeft(value uint8) uint8 {
	computed := value<<1 | value>>7
	c.setFlags(computed == 0, false, false, value&0x80 != 0)
	return computed
}

// rotateRight rotates value right, bit 0 moving into both bit 7 and
// the carry flag.
//
//	RRC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRight(value uint8) uint8 {
	computed := value>>1 | value<<7
	c.setFlags(computed == 0, false, false, value&0x01 != 0)
	return computed
}

// rotateLeftThroughCarry rotates value left through the carry flag.
//
//	RL n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftThroughCarry(value uint8) uint8 {
	computed := value << 1
	if c.F.Carry {
		computed |= 0x01
	}
	c.setFlags(computed == 0, false, false, value&0x80 != 0)
	return computed
}

// rotateRightThroughCarry rotates value right through the carry flag.
//
//	RR n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightThroughCarry(value uint8) uint8 {
	computed := value >> 1
	if c.F.Carry {
		computed |= 0x80
	}
	c.setFlags(computed == 0, false, false, value&0x01 != 0)
	return computed
}

func init() {
	// RLCA, RRCA, RLA and RRA behave as their CB counterparts on A,
	// except that the zero flag is always reset.
	accumulator := func(rotate func(*CPU, uint8) uint8) executor {
		return sequential(func(c *CPU, _ Instruction) {
			c.A = rotate(c, c.A)
			c.F.Zero = false
		})
	}
	define(Instruction{Opcode: 0x07, Mnemonic: RLCA}, accumulator((*CPU).rotateLeft))
	define(Instruction{Opcode: 0x0F, Mnemonic: RRCA}, accumulator((*CPU).rotateRight))
	define(Instruction{Opcode: 0x17, Mnemonic: RLA}, accumulator((*CPU).rotateLeftThroughCarry))
	define(Instruction{Opcode: 0x1F, Mnemonic: RRA}, accumulator((*CPU).rotateRightThroughCarry))

	// 0xCB00 - 0xCB1F - RLC/RRC/RL/RR r
	defineRegisterCB(0x00, RLC, (*CPU).rotateLeft)
	defineRegisterCB(0x08, RRC, (*CPU).rotateRight)
	defineRegisterCB(0x10, RL, (*CPU).rotateLeftThroughCarry)
	defineRegisterCB(0x18, RR, (*CPU).rotateRightThroughCarry)
}

// defineRegisterCB defines the 7 register forms of a CB operation
// starting at base. The (HL) form writes back to memory and is left
// undefined.
func defineRegisterCB(base uint8, m Mnemonic, fn func(*CPU, uint8) uint8) {
	for r, reg := range registerOperands {
		if reg == MemHL {
			continue
		}
		define(Instruction{Opcode: base + uint8(r), Prefixed: true, Mnemonic: m, Target: reg}, sequential(func(c *CPU, ins Instruction) {
			c.write8(ins.Target, fn(c, c.read8(ins.Target)))
		}))
	}
}
