package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/types"
)

// Trace describes one executed instruction and the state it left
// behind.
type Trace struct {
	PC          uint16 // address the instruction was fetched from
	Next        uint16 // PC after execution
	SP          uint16
	Instruction Instruction
	Registers   types.Registers
}

// Tracer observes executed instructions.
type Tracer func(Trace)

func (t Trace) String() string {
	return fmt.Sprintf("%04X  %-16s %s SP: %04X PC: %04X", t.PC, t.Instruction, t.Registers, t.SP, t.Next)
}
