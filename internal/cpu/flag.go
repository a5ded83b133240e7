package cpu

import "github.com/thelolagemann/sm83/internal/types"

// setFlags replaces all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.F = types.Flags{Zero: zero, Subtract: subtract, HalfCarry: halfCarry, Carry: carry}
}

// condition evaluates cc against the current flags.
func (c *CPU) condition(cc Condition) bool {
	switch cc {
	case NotZero:
		return !c.F.Zero
	case Zero:
		return c.F.Zero
	case NotCarry:
		return !c.F.Carry
	case Carry:
		return c.F.Carry
	}
	return true
}
