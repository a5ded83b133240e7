package cpu

import (
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Opt is a function that modifies a CPU
// instance.
type Opt func(c *CPU)

func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// PostBoot sets the registers to the values the boot ROM of model m
// leaves behind, with SP at the top of the stack and PC at the
// cartridge entry point.
func PostBoot(m types.Model) Opt {
	return func(c *CPU) {
		c.Registers = types.PostBoot(m)
		c.SP = types.StackTop
		c.PC = types.EntryPoint
	}
}

// EntryPoint sets the address of the first instruction.
func EntryPoint(address uint16) Opt {
	return func(c *CPU) {
		c.PC = address
	}
}

// WithTracer installs t, called after every executed instruction.
func WithTracer(t Tracer) Opt {
	return func(c *CPU) {
		c.tracer = t
	}
}

// WithState restores registers previously written by CPU.Save.
func WithState(s *types.State) Opt {
	return func(c *CPU) {
		c.Load(s)
	}
}
