package types

// Flags is the F register, held as discrete booleans. The packed form
// is only produced through FlagsToByte and ByteToFlags.
//
//	Bit 7: zero
//	Bit 6: subtract
//	Bit 5: half carry
//	Bit 4: carry
//	Bit 3-0: always 0
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

const (
	FlagZero      = Bit7
	FlagSubtract  = Bit6
	FlagHalfCarry = Bit5
	FlagCarry     = Bit4
)

// FlagsToByte packs f into its 8-bit form. The lower nibble is always 0.
func FlagsToByte(f Flags) uint8 {
	var b uint8
	if f.Zero {
		b |= FlagZero
	}
	if f.Subtract {
		b |= FlagSubtract
	}
	if f.HalfCarry {
		b |= FlagHalfCarry
	}
	if f.Carry {
		b |= FlagCarry
	}
	return b
}

// ByteToFlags unpacks b. The lower nibble is ignored.
func ByteToFlags(b uint8) Flags {
	return Flags{
		Zero:      b&FlagZero != 0,
		Subtract:  b&FlagSubtract != 0,
		HalfCarry: b&FlagHalfCarry != 0,
		Carry:     b&FlagCarry != 0,
	}
}

// Byte is shorthand for FlagsToByte(f).
func (f Flags) Byte() uint8 { return FlagsToByte(f) }

func (f Flags) String() string {
	s := []byte("----")
	if f.Zero {
		s[0] = 'Z'
	}
	if f.Subtract {
		s[1] = 'N'
	}
	if f.HalfCarry {
		s[2] = 'H'
	}
	if f.Carry {
		s[3] = 'C'
	}
	return string(s)
}
