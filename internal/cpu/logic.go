package cpu

// and performs a bitwise AND operation on A and the
// given value, and sets the flags accordingly.
//
//	AND n
//	n = A, B, C, D, E, H, L, (HL), d8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(value uint8) {
	c.A &= value
	c.setFlags(c.A == 0, false, true, false)
}

// xor performs a bitwise XOR operation on A and the given value.
//
//	XOR n
//	n = A, B, C, D, E, H, L, (HL), d8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(value uint8) {
	c.A ^= value
	c.setFlags(c.A == 0, false, false, false)
}

// or performs a bitwise OR operation on A and the given value.
//
//	OR n
//	n = A, B, C, D, E, H, L, (HL), d8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(value uint8) {
	c.A |= value
	c.setFlags(c.A == 0, false, false, false)
}

// compare subtracts the given value from A without storing
// the result.
//
//	CP n
//	n = A, B, C, D, E, H, L, (HL), d8
//
// Flags affected:
//
//	Z - Set if A == n.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if A < n.
func (c *CPU) compare(value uint8) {
	c.sub(c.A, value, false)
}

func init() {
	// 0xA0 - 0xBF - AND/XOR/OR/CP r
	// 0xE6, 0xEE, 0xF6, 0xFE - AND/XOR/OR/CP d8
	for i, m := range []Mnemonic{AND, XOR, OR, CP} {
		op := uint8(0xA0 + i*8)
		for r, src := range registerOperands {
			define(Instruction{Opcode: op + uint8(r), Mnemonic: m, Source: src}, sequential(logic))
		}
		define(Instruction{Opcode: op + 0x46, Mnemonic: m, Source: Imm8}, sequential(logic))
	}
}

func logic(c *CPU, ins Instruction) {
	value := c.read8(ins.Source)
	switch ins.Mnemonic {
	case AND:
		c.and(value)
	case XOR:
		c.xor(value)
	case OR:
		c.or(value)
	case CP:
		c.compare(value)
	}
}
