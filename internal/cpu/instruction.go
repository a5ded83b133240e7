package cpu

import (
	"fmt"
	"strings"
)

// Prefix is the opcode that selects the CB instruction set for the
// byte that follows it.
const Prefix uint8 = 0xCB

// Mnemonic identifies the operation an Instruction performs.
type Mnemonic uint8

const (
	NOP Mnemonic = iota
	LD
	LDH
	INC
	DEC
	ADD
	ADC
	SUB
	SBC
	AND
	XOR
	OR
	CP
	RLCA
	RRCA
	RLA
	RRA
	DAA
	CPL
	SCF
	CCF
	JP
	JR
	RET
	POP
	RLC
	RRC
	RL
	RR
	SLA
	SRA
	SWAP
	SRL
	BIT
	RES
	SET
)

var mnemonicNames = [...]string{
	NOP: "NOP", LD: "LD", LDH: "LDH", INC: "INC", DEC: "DEC",
	ADD: "ADD", ADC: "ADC", SUB: "SUB", SBC: "SBC",
	AND: "AND", XOR: "XOR", OR: "OR", CP: "CP",
	RLCA: "RLCA", RRCA: "RRCA", RLA: "RLA", RRA: "RRA",
	DAA: "DAA", CPL: "CPL", SCF: "SCF", CCF: "CCF",
	JP: "JP", JR: "JR", RET: "RET", POP: "POP",
	RLC: "RLC", RRC: "RRC", RL: "RL", RR: "RR",
	SLA: "SLA", SRA: "SRA", SWAP: "SWAP", SRL: "SRL",
	BIT: "BIT", RES: "RES", SET: "SET",
}

func (m Mnemonic) String() string {
	if int(m) < len(mnemonicNames) {
		return mnemonicNames[m]
	}
	return fmt.Sprintf("Mnemonic(%d)", uint8(m))
}

// Condition is the flag test made by a conditional jump or return.
type Condition uint8

const (
	Always Condition = iota
	NotZero
	Zero
	NotCarry
	Carry
)

var conditionNames = [...]string{Always: "", NotZero: "NZ", Zero: "Z", NotCarry: "NC", Carry: "C"}

func (cc Condition) String() string {
	if int(cc) < len(conditionNames) {
		return conditionNames[cc]
	}
	return fmt.Sprintf("Condition(%d)", uint8(cc))
}

// conditions maps the 2-bit condition field (bits 3-4) of an opcode.
var conditions = [4]Condition{NotZero, Zero, NotCarry, Carry}

// Instruction is a decoded opcode. It describes what to execute and on
// which operands; it carries no behaviour and is only produced by
// Decode, so two decodes of the same byte compare equal.
type Instruction struct {
	Opcode    uint8
	Prefixed  bool
	Mnemonic  Mnemonic
	Target    Operand
	Source    Operand
	Condition Condition
	Bit       uint8 // bit index for BIT, RES and SET
	Length    uint8 // bytes occupied, including the prefix
}

// String renders the instruction in assembly form, e.g. "ADD A, C"
// or "JP NZ, a16".
func (i Instruction) String() string {
	return i.format(Operand.String)
}

func (i Instruction) format(operand func(Operand) string) string {
	var args []string
	if i.Condition != Always {
		args = append(args, i.Condition.String())
	}
	switch i.Mnemonic {
	case BIT, RES, SET:
		args = append(args, fmt.Sprintf("%d", i.Bit))
	}
	if i.Target != None {
		args = append(args, operand(i.Target))
	}
	if i.Source != None {
		args = append(args, operand(i.Source))
	}
	if len(args) == 0 {
		return i.Mnemonic.String()
	}
	return i.Mnemonic.String() + " " + strings.Join(args, ", ")
}

// executor runs an instruction located at the current PC and returns
// the address of the next instruction.
type executor func(c *CPU, ins Instruction) uint16

type definition struct {
	Instruction
	execute executor
}

var (
	// instructionSet holds the base opcodes, nil slots are undefined.
	instructionSet [256]*definition
	// instructionSetCB holds the opcodes following the CB prefix.
	instructionSetCB [256]*definition
)

// define adds ins to the instruction set selected by ins.Prefixed,
// filling in its Length from the operands. It is only called from
// package init functions; redefining an opcode is a programming error.
func define(ins Instruction, fn executor) {
	ins.Length = 1 + ins.Target.width() + ins.Source.width()
	table := &instructionSet
	if ins.Prefixed {
		ins.Length++
		table = &instructionSetCB
	}
	if table[ins.Opcode] != nil {
		panic(fmt.Sprintf("cpu: opcode %s redefined as %q", opcodeName(ins.Opcode, ins.Prefixed), ins))
	}
	table[ins.Opcode] = &definition{Instruction: ins, execute: fn}
}

// sequential adapts an operation that never branches into an executor
// that continues with the instruction directly after it.
func sequential(fn func(c *CPU, ins Instruction)) executor {
	return func(c *CPU, ins Instruction) uint16 {
		fn(c, ins)
		return c.PC + uint16(ins.Length)
	}
}

func lookup(opcode uint8, prefixed bool) *definition {
	if prefixed {
		return instructionSetCB[opcode]
	}
	return instructionSet[opcode]
}

// Decode returns the instruction for opcode in the base instruction
// set, or in the CB instruction set when prefixed is set. It reports
// false when the selected set has no instruction for opcode.
func Decode(opcode uint8, prefixed bool) (Instruction, bool) {
	def := lookup(opcode, prefixed)
	if def == nil {
		return Instruction{}, false
	}
	return def.Instruction, true
}

func opcodeName(opcode uint8, prefixed bool) string {
	if prefixed {
		return fmt.Sprintf("0xCB%02X", opcode)
	}
	return fmt.Sprintf("0x%02X", opcode)
}

func init() {
	define(Instruction{Opcode: 0x00, Mnemonic: NOP}, sequential(func(*CPU, Instruction) {}))
}
