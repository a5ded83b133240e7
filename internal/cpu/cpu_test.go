package cpu

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// newTestCPU returns a CPU with program loaded at address 0x0000.
func newTestCPU(program ...uint8) (*CPU, *mmu.MMU) {
	m := mmu.NewMMU(program)
	return NewCPU(m), m
}

// testInstruction runs fn as a subtest against a fresh CPU whose
// memory holds opcode at 0x0000, after checking opcode decodes to an
// instruction called name.
func testInstruction(t *testing.T, name string, opcode uint8, fn func(t *testing.T, c *CPU, m *mmu.MMU)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		ins, ok := Decode(opcode, false)
		require.True(t, ok, "0x%02X is undefined", opcode)
		require.Equal(t, name, ins.String())

		c, m := newTestCPU(opcode)
		fn(t, c, m)
	})
}

// testInstructionCB is testInstruction for the CB instruction set.
func testInstructionCB(t *testing.T, name string, opcode uint8, fn func(t *testing.T, c *CPU, m *mmu.MMU)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		ins, ok := Decode(opcode, true)
		require.True(t, ok, "0xCB%02X is undefined", opcode)
		require.Equal(t, name, ins.String())

		c, m := newTestCPU(Prefix, opcode)
		fn(t, c, m)
	})
}

// step executes one instruction, failing the test on error.
func step(t *testing.T, c *CPU) {
	t.Helper()
	require.NoError(t, c.Step())
}

func TestNewCPU(t *testing.T) {
	c, _ := newTestCPU()
	assert.Equal(t, uint16(0), c.PC)
	assert.Equal(t, uint16(0), c.SP)
	assert.Equal(t, types.Registers{}, c.Registers)

	c = NewCPU(mmu.NewMMU(nil), PostBoot(types.DMGABC))
	assert.Equal(t, types.EntryPoint, c.PC)
	assert.Equal(t, types.StackTop, c.SP)
	assert.Equal(t, uint16(0x01B0), c.Pair(types.AF))

	c = NewCPU(mmu.NewMMU(nil), EntryPoint(0x0150))
	assert.Equal(t, uint16(0x0150), c.PC)
}

func TestCPU_Step(t *testing.T) {
	// ADD A, C ; JP NZ, 0x0010 ; NOP
	c, _ := newTestCPU(0x81, 0xC2, 0x10, 0x00, 0x00)
	c.A, c.C = 0x01, 0x02

	step(t, c)
	assert.Equal(t, uint8(0x03), c.A)
	assert.Equal(t, uint16(0x0001), c.PC)

	step(t, c)
	assert.Equal(t, uint16(0x0010), c.PC)
}

func TestCPU_StepPrefixed(t *testing.T) {
	// SWAP A ; BIT 7, A
	c, _ := newTestCPU(0xCB, 0x37, 0xCB, 0x7F)
	c.A = 0x0F

	step(t, c)
	assert.Equal(t, uint8(0xF0), c.A)
	assert.Equal(t, uint16(0x0002), c.PC)

	step(t, c)
	assert.False(t, c.F.Zero)
	assert.True(t, c.F.HalfCarry)
	assert.Equal(t, uint16(0x0004), c.PC)
}

func TestCPU_DecodeError(t *testing.T) {
	t.Run("base", func(t *testing.T) {
		c, _ := newTestCPU(0x00, 0xD3)
		c.PC = 0x0001

		err := c.Step()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownOpcode)

		var decodeErr *DecodeError
		require.True(t, errors.As(err, &decodeErr))
		assert.Equal(t, DecodeError{PC: 0x0001, Opcode: 0xD3, Prefixed: false}, *decodeErr)
		assert.Equal(t, "unknown opcode 0xD3 at 0x0001", err.Error())
	})
	t.Run("prefixed", func(t *testing.T) {
		// RLC (HL) is not part of the read-only instruction set
		c, _ := newTestCPU(0xCB, 0x06)
		c.A = 0x42

		err := c.Step()
		var decodeErr *DecodeError
		require.True(t, errors.As(err, &decodeErr))
		assert.True(t, decodeErr.Prefixed)
		assert.Equal(t, uint8(0x06), decodeErr.Opcode)
		assert.Equal(t, "unknown opcode 0xCB06 at 0x0000", err.Error())

		// state is untouched and retrying reproduces the failure
		assert.Equal(t, uint16(0x0000), c.PC)
		assert.Equal(t, uint8(0x42), c.A)
		assert.Equal(t, err, c.Step())
	})
	t.Run("logged", func(t *testing.T) {
		var buf bytes.Buffer
		c := NewCPU(mmu.NewMMU([]byte{0xFD}), WithLogger(log.NewWithWriter(&buf, true)))
		require.Error(t, c.Step())
		assert.Contains(t, buf.String(), "unknown opcode 0xFD at 0x0000")
	})
}

func TestCPU_Run(t *testing.T) {
	// INC A x3 ; undefined
	c, _ := newTestCPU(0x3C, 0x3C, 0x3C, 0xDD)

	n, err := c.Run(2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = c.Run(10)
	assert.ErrorIs(t, err, ErrUnknownOpcode)
	assert.Equal(t, 1, n)
	assert.Equal(t, uint8(3), c.A)
	assert.Equal(t, uint16(0x0003), c.PC)
}

func TestCPU_Execute(t *testing.T) {
	c, m := newTestCPU()
	m.Write(0x0201, 0x34)
	m.Write(0x0202, 0x12)
	c.PC = 0x0200

	ins, ok := Decode(0xC3, false)
	require.True(t, ok)
	pc, err := c.Execute(ins)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), pc)
	assert.Equal(t, uint16(0x1234), c.PC)

	_, err = c.Execute(Instruction{Opcode: 0xD3})
	assert.ErrorIs(t, err, ErrUnknownOpcode)
	assert.Equal(t, uint16(0x1234), c.PC)
}

func TestCPU_Wraparound(t *testing.T) {
	// JP a16 with its address bytes wrapping to 0x0000 and 0x0001
	c, m := newTestCPU(0x34, 0x12)
	m.Write(0xFFFF, 0xC3)
	c.PC = 0xFFFF
	c.F.Zero = true

	step(t, c)
	assert.Equal(t, uint16(0x1234), c.PC)

	// NOP at 0xFFFF
	m.Write(0xFFFF, 0x00)
	c.PC = 0xFFFF
	step(t, c)
	assert.Equal(t, uint16(0x0000), c.PC)
}

func TestCPU_Tracer(t *testing.T) {
	var traces []Trace
	m := mmu.NewMMU([]byte{0x3E, 0x42, 0x47})
	c := NewCPU(m, WithTracer(func(tr Trace) { traces = append(traces, tr) }))

	_, err := c.Run(2)
	require.NoError(t, err)
	require.Len(t, traces, 2)

	assert.Equal(t, uint16(0x0000), traces[0].PC)
	assert.Equal(t, uint16(0x0002), traces[0].Next)
	assert.Equal(t, "LD A, d8", traces[0].Instruction.String())
	assert.Equal(t, uint8(0x42), traces[0].Registers.A)

	assert.Equal(t, uint8(0x42), traces[1].Registers.B)
	assert.Equal(t, "0002  LD B, A          A: 42 F: 00 B: 42 C: 00 D: 00 E: 00 H: 00 L: 00 SP: 0000 PC: 0003", traces[1].String())
}

func TestCPU_State(t *testing.T) {
	c, _ := newTestCPU()
	c.Registers = types.PostBoot(types.DMGABC)
	c.SP, c.PC = 0xFFFE, 0x0150

	s := types.NewState()
	c.Save(s)
	assert.Len(t, s.Bytes(), 12)

	restored := NewCPU(mmu.NewMMU(nil), WithState(types.StateFromBytes(s.Bytes())))
	assert.Equal(t, c.Registers, restored.Registers)
	assert.Equal(t, c.SP, restored.SP)
	assert.Equal(t, c.PC, restored.PC)

	other := types.NewState()
	restored.Save(other)
	assert.Equal(t, s.Hash(), other.Hash())
}
