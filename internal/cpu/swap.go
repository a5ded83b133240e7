package cpu

// swap the upper and lower nibbles of a byte
//
//	SWAP n
//	n = A, B, C, D, E, H, L
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(value uint8) uint8 {
	computed := value<<4 | value>>4
	c.setFlags(computed == 0, false, false, false)
	return computed
}

func init() {
	// 0xCB30 - 0xCB37 - SWAP r
	defineRegisterCB(0x30, SWAP, (*CPU).swap)
}
