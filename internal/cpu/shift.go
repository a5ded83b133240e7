package cpu

// shiftLeftIntoCarry shifts value left into the carry flag. The least
// significant bit is reset.
//
//	SLA n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) shiftLeftIntoCarry(value uint8) uint8 {
	computed := value << 1
	c.setFlags(computed == 0, false, false, value&0x80 != 0)
	return computed
}

// shiftRightIntoCarry shifts value right into the carry flag. The
// most significant bit keeps its value.
//
//	SRA n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightIntoCarry(value uint8) uint8 {
	computed := value>>1 | value&0x80
	c.setFlags(computed == 0, false, false, value&0x01 != 0)
	return computed
}

// shiftRightLogical shifts value right into the carry flag. The most
// significant bit is reset.
//
//	SRL n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightLogical(value uint8) uint8 {
	computed := value >> 1
	c.setFlags(computed == 0, false, false, value&0x01 != 0)
	return computed
}

func init() {
	// 0xCB20 - 0xCB2F, 0xCB38 - 0xCB3F - SLA/SRA/SRL r
	defineRegisterCB(0x20, SLA, (*CPU).shiftLeftIntoCarry)
	defineRegisterCB(0x28, SRA, (*CPU).shiftRightIntoCarry)
	defineRegisterCB(0x38, SRL, (*CPU).shiftRightLogical)
}
