// Package cpu implements the Sharp SM83 core of the Game Boy. It
// fetches opcodes from a Bus, decodes them through the base and CB
// instruction sets and executes them against its registers.
package cpu

import (
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Bus is the memory device the CPU fetches from. Every address is
// readable; faults, banking and I/O side effects belong to the device.
type Bus interface {
	Read(address uint16) uint8
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers and the flags.
	types.Registers

	b      Bus
	log    log.Logger
	tracer Tracer
}

// NewCPU creates a new CPU reading from b. Registers start zeroed with
// PC at 0x0000 unless an Opt says otherwise.
func NewCPU(b Bus, opts ...Opt) *CPU {
	c := &CPU{
		b:   b,
		log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Step fetches, decodes and executes a single instruction. If the
// opcode at PC is undefined a *DecodeError is returned and the CPU is
// left untouched, so stepping again reproduces the same error.
func (c *CPU) Step() error {
	def, err := c.fetch()
	if err != nil {
		c.log.Debugf("%s", err)
		return err
	}
	c.execute(def)
	return nil
}

// Run steps up to n instructions, stopping at the first error. It
// returns the number of instructions executed.
func (c *CPU) Run(n int) (int, error) {
	for i := 0; i < n; i++ {
		if err := c.Step(); err != nil {
			return i, err
		}
	}
	return n, nil
}

// Execute runs ins as if it had been fetched from PC and returns the
// new PC. Operands are read from the bytes following PC. Only the
// opcode and prefix of ins are used to select the operation.
func (c *CPU) Execute(ins Instruction) (uint16, error) {
	def := lookup(ins.Opcode, ins.Prefixed)
	if def == nil {
		return c.PC, &DecodeError{PC: c.PC, Opcode: ins.Opcode, Prefixed: ins.Prefixed}
	}
	c.execute(def)
	return c.PC, nil
}

// fetch reads the opcode at PC, following the CB prefix to the next
// byte, and looks it up.
func (c *CPU) fetch() (*definition, error) {
	opcode := c.b.Read(c.PC)
	prefixed := opcode == Prefix
	if prefixed {
		opcode = c.b.Read(c.PC + 1)
	}

	def := lookup(opcode, prefixed)
	if def == nil {
		return nil, &DecodeError{PC: c.PC, Opcode: opcode, Prefixed: prefixed}
	}
	return def, nil
}

func (c *CPU) execute(def *definition) {
	pc := c.PC
	c.PC = def.execute(c, def.Instruction)

	if c.tracer != nil {
		c.tracer(Trace{PC: pc, Instruction: def.Instruction, Registers: c.Registers, SP: c.SP, Next: c.PC})
	}
}

var _ types.Stater = (*CPU)(nil)

func (c *CPU) Load(s *types.State) {
	c.A = s.Read8()
	c.F = types.ByteToFlags(s.Read8())
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.SP = s.Read16()
	c.PC = s.Read16()
}

func (c *CPU) Save(s *types.State) {
	s.Write8(c.A)
	s.Write8(types.FlagsToByte(c.F))
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.PC)
}
