package cpu

import (
	"errors"
	"fmt"
)

// ErrUnknownOpcode matches every *DecodeError through errors.Is.
var ErrUnknownOpcode = errors.New("unknown opcode")

// DecodeError reports an opcode with no instruction in the selected
// instruction set.
type DecodeError struct {
	PC       uint16 // address of the opcode (or of the prefix)
	Opcode   uint8  // the undefined opcode, without the prefix
	Prefixed bool   // true if Opcode followed the CB prefix
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s %s at 0x%04X", ErrUnknownOpcode, opcodeName(e.Opcode, e.Prefixed), e.PC)
}

func (e *DecodeError) Unwrap() error {
	return ErrUnknownOpcode
}
