package bytecode

import (
	"fmt"
)

// Opcode is a single bytecode operation.
type Opcode byte

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_INC   = Opcode(0) // INC
	OP_DEC   = Opcode(1) // DEC
	OP_LEFT  = Opcode(2) // LT
	OP_RIGHT = Opcode(3) // RT
	OP_JZ    = Opcode(4) // JZ
	OP_JNZ   = Opcode(5) // JNZ
	OP_PUT   = Opcode(6) // PUT
	OP_GET   = Opcode(7) // GET
	OP_HALT  = Opcode(8) // FIN
)

// INSTRUCTION_SIZE is the number of bytes in every encoded instruction.
const INSTRUCTION_SIZE = 2

// MAX_COUNT is the largest repeat count a single instruction can carry.
const MAX_COUNT = 255

// Valid returns true if the opcode is part of the instruction set.
func (op Opcode) Valid() bool {
	return op <= OP_HALT
}

// IsJump returns true if the operand of the opcode is a jump table id.
func (op Opcode) IsJump() bool {
	return op == OP_JZ || op == OP_JNZ
}

// Symbol returns the source symbol that compiles to the opcode, or 0
// if the opcode has no direct source symbol.
func (op Opcode) Symbol() byte {
	switch op {
	case OP_INC:
		return '+'
	case OP_DEC:
		return '-'
	case OP_LEFT:
		return '<'
	case OP_RIGHT:
		return '>'
	case OP_JZ:
		return '['
	case OP_JNZ:
		return ']'
	case OP_PUT:
		return '.'
	case OP_GET:
		return ','
	}

	return 0
}

// Instruction is a decoded opcode and operand pair.
type Instruction struct {
	Op      Opcode
	Operand byte
}

// String returns the disassembly of the instruction, without jump resolution.
func (ins Instruction) String() string {
	switch {
	case ins.Op == OP_HALT:
		return ins.Op.String()
	case ins.Op.IsJump():
		return fmt.Sprintf("%-3v #%d", ins.Op, ins.Operand)
	default:
		return fmt.Sprintf("%-3v %d", ins.Op, ins.Operand)
	}
}
