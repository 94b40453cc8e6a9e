// Package bytecode defines the ubf instruction set and the Chunk container
// produced by the compiler and consumed by the virtual machine.
//
// Every instruction is two bytes: an Opcode followed by an operand. The
// operand is a repeat count for INC, DEC, LT, RT, PUT and GET, and a jump
// table id for JZ and JNZ. A Chunk's jump table maps up to OFFSET_LIMIT ids
// to absolute bytecode positions, each position holding at most one id.
package bytecode
