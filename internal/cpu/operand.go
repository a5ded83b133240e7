package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/bits"
)

// Operand identifies where an instruction reads or writes a value.
type Operand uint8

const (
	None Operand = iota

	// 8-bit registers
	RegA
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL

	// 16-bit registers
	RegAF
	RegBC
	RegDE
	RegHL
	RegSP

	// indirect memory
	MemBC    // (BC)
	MemDE    // (DE)
	MemHL    // (HL)
	MemHLInc // (HL+), HL is incremented after the access
	MemHLDec // (HL-), HL is decremented after the access
	MemC     // (0xFF00+C)

	// operands encoded after the opcode
	Imm8   // d8
	Imm16  // d16
	Addr8  // (0xFF00+a8)
	Addr16 // (a16)
	Abs16  // a16, a jump target
	Rel8    // r8, signed offset from the next instruction
	Signed8 // r8, signed value
	SPRel8  // SP+r8
)

var operandNames = [...]string{
	None: "",
	RegA: "A", RegB: "B", RegC: "C", RegD: "D", RegE: "E", RegH: "H", RegL: "L",
	RegAF: "AF", RegBC: "BC", RegDE: "DE", RegHL: "HL", RegSP: "SP",
	MemBC: "(BC)", MemDE: "(DE)", MemHL: "(HL)", MemHLInc: "(HL+)", MemHLDec: "(HL-)", MemC: "(C)",
	Imm8: "d8", Imm16: "d16", Addr8: "(a8)", Addr16: "(a16)", Abs16: "a16", Rel8: "r8", Signed8: "r8", SPRel8: "SP+r8",
}

func (o Operand) String() string {
	if int(o) < len(operandNames) {
		return operandNames[o]
	}
	return fmt.Sprintf("Operand(%d)", uint8(o))
}

// width returns the number of bytes the operand occupies after the
// opcode.
func (o Operand) width() uint8 {
	switch o {
	case Imm8, Addr8, Rel8, Signed8, SPRel8:
		return 1
	case Imm16, Addr16, Abs16:
		return 2
	}
	return 0
}

// registerOperands maps the 3-bit register field of an opcode.
var registerOperands = [8]Operand{RegB, RegC, RegD, RegE, RegH, RegL, MemHL, RegA}

// pairOperands maps the 2-bit register pair field (bits 4-5) of an
// opcode, for instructions other than POP.
var pairOperands = [4]Operand{RegBC, RegDE, RegHL, RegSP}

// pair returns the register pair backing a 16-bit register operand.
func pair(o Operand) (types.Pair, bool) {
	switch o {
	case RegAF:
		return types.AF, true
	case RegBC:
		return types.BC, true
	case RegDE:
		return types.DE, true
	case RegHL:
		return types.HL, true
	}
	return 0, false
}

// register returns the 8-bit register named by o, or nil.
func (c *CPU) register(o Operand) *types.Register {
	switch o {
	case RegA:
		return &c.A
	case RegB:
		return &c.B
	case RegC:
		return &c.C
	case RegD:
		return &c.D
	case RegE:
		return &c.E
	case RegH:
		return &c.H
	case RegL:
		return &c.L
	}
	return nil
}

// immediate8 reads the byte following the opcode at PC.
func (c *CPU) immediate8() uint8 {
	return c.b.Read(c.PC + 1)
}

// immediate16 reads the little-endian word following the opcode at PC.
func (c *CPU) immediate16() uint16 {
	low := c.b.Read(c.PC + 1)
	high := c.b.Read(c.PC + 2)
	return bits.Join(high, low)
}

// read8 returns the 8-bit value of o.
func (c *CPU) read8(o Operand) uint8 {
	if r := c.register(o); r != nil {
		return *r
	}
	switch o {
	case MemBC:
		return c.b.Read(c.Pair(types.BC))
	case MemDE:
		return c.b.Read(c.Pair(types.DE))
	case MemHL:
		return c.b.Read(c.Pair(types.HL))
	case MemHLInc:
		hl := c.Pair(types.HL)
		c.SetPair(types.HL, hl+1)
		return c.b.Read(hl)
	case MemHLDec:
		hl := c.Pair(types.HL)
		c.SetPair(types.HL, hl-1)
		return c.b.Read(hl)
	case MemC:
		return c.b.Read(0xFF00 | uint16(c.C))
	case Imm8:
		return c.immediate8()
	case Addr8:
		return c.b.Read(0xFF00 | uint16(c.immediate8()))
	case Addr16:
		return c.b.Read(c.immediate16())
	}
	return 0
}

// write8 stores value in the register named by o. Memory operands are
// not writable through the read-only bus.
func (c *CPU) write8(o Operand, value uint8) {
	if r := c.register(o); r != nil {
		*r = value
	}
}

// read16 returns the 16-bit value of o.
func (c *CPU) read16(o Operand) uint16 {
	if p, ok := pair(o); ok {
		return c.Pair(p)
	}
	switch o {
	case RegSP:
		return c.SP
	case Imm16, Abs16:
		return c.immediate16()
	}
	return 0
}

// write16 stores value in the 16-bit register named by o.
func (c *CPU) write16(o Operand, value uint16) {
	if p, ok := pair(o); ok {
		c.SetPair(p, value)
		return
	}
	if o == RegSP {
		c.SP = value
	}
}
