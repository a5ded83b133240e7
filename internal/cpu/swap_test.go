package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/types"
)

func TestInstruction_Swap(t *testing.T) {
	for i, name := range registerNames {
		if name == "(HL)" {
			continue
		}
		reg := registerOperands[i]
		testInstructionCB(t, "SWAP "+name, 0x30+uint8(i), func(t *testing.T, c *CPU, m *mmu.MMU) {
			*c.register(reg) = 0x12
			c.F = types.Flags{Subtract: true, HalfCarry: true, Carry: true}
			step(t, c)
			assert.Equal(t, uint8(0x21), *c.register(reg))
			assert.Equal(t, types.Flags{}, c.F)

			c.PC = 0
			*c.register(reg) = 0x00
			step(t, c)
			assert.Equal(t, types.Flags{Zero: true}, c.F)
		})
	}
}
