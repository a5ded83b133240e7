package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/pkg/bits"
)

// Disassemble decodes the instruction at address without executing
// it. An undefined opcode yields a *DecodeError.
func Disassemble(b Bus, address uint16) (Instruction, error) {
	opcode := b.Read(address)
	prefixed := opcode == Prefix
	if prefixed {
		opcode = b.Read(address + 1)
	}
	ins, ok := Decode(opcode, prefixed)
	if !ok {
		return ins, &DecodeError{PC: address, Opcode: opcode, Prefixed: prefixed}
	}
	return ins, nil
}

// Format renders ins, located at address, with the operand bytes that
// follow it substituted, e.g. "JP NZ, $1234" or "JR $0150".
func Format(b Bus, address uint16, ins Instruction) string {
	imm8 := func() uint8 { return b.Read(address + 1) }
	imm16 := func() uint16 { return bits.Join(b.Read(address+2), b.Read(address+1)) }

	return ins.format(func(o Operand) string {
		switch o {
		case Imm8:
			return fmt.Sprintf("$%02X", imm8())
		case Imm16, Abs16:
			return fmt.Sprintf("$%04X", imm16())
		case Addr8:
			return fmt.Sprintf("($FF%02X)", imm8())
		case Addr16:
			return fmt.Sprintf("($%04X)", imm16())
		case Rel8:
			return fmt.Sprintf("$%04X", uint16(int32(address+2)+int32(int8(imm8()))))
		case Signed8:
			return fmt.Sprintf("%d", int8(imm8()))
		case SPRel8:
			return fmt.Sprintf("SP%+d", int8(imm8()))
		}
		return o.String()
	})
}
