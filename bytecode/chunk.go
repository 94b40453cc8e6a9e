// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package bytecode

import (
	"bufio"
	"fmt"
	"io"
	"iter"
)

const (
	OFFSET_LIMIT  = 256 // Capacity of the jump offset table.
	CHUNK_MINIMUM = 8   // Smallest non-zero bytecode buffer capacity.
)

// Chunk is a compiled unit of bytecode and its jump offset table.
type Chunk struct {
	code    []byte
	offsets []int
}

// NewChunk creates an empty chunk with an initial bytecode capacity.
func NewChunk(capacity int) (chunk *Chunk) {
	chunk = &Chunk{
		code: make([]byte, 0, max(capacity, 0)),
	}

	return
}

// grow reallocates the bytecode buffer to a new capacity.
func (chunk *Chunk) grow(capacity int) {
	code := make([]byte, len(chunk.code), capacity)
	copy(code, chunk.code)
	chunk.code = code
}

// Write appends a single byte to the bytecode.
// The buffer doubles when full, starting at CHUNK_MINIMUM.
func (chunk *Chunk) Write(b byte) {
	if cap(chunk.code) < len(chunk.code)+1 {
		chunk.grow(max(cap(chunk.code)*2, CHUNK_MINIMUM))
	}
	chunk.code = append(chunk.code, b)
}

// Emit appends an instruction, returning its bytecode position.
func (chunk *Chunk) Emit(op Opcode, operand byte) (pos int) {
	pos = len(chunk.code)
	chunk.Write(byte(op))
	chunk.Write(operand)
	return
}

// Patch replaces the operand of the instruction at pos.
func (chunk *Chunk) Patch(pos int, operand byte) {
	chunk.code[pos+1] = operand
}

// Intern returns the jump id for a bytecode position, allocating a new
// id if the position has not been seen before.
func (chunk *Chunk) Intern(pos int) (id byte, err error) {
	for n, offset := range chunk.offsets {
		if offset == pos {
			id = byte(n)
			return
		}
	}

	if len(chunk.offsets) == OFFSET_LIMIT {
		err = ErrOffsetFull
		return
	}

	id = byte(len(chunk.offsets))
	chunk.offsets = append(chunk.offsets, pos)
	return
}

// Target returns the bytecode position registered for a jump id.
func (chunk *Chunk) Target(id byte) (pos int, ok bool) {
	if int(id) >= len(chunk.offsets) {
		return
	}

	return chunk.offsets[id], true
}

// Len returns the length of the bytecode in bytes.
func (chunk *Chunk) Len() int {
	return len(chunk.code)
}

// Cap returns the capacity of the bytecode buffer.
func (chunk *Chunk) Cap() int {
	return cap(chunk.code)
}

// Bytes returns the raw bytecode. The caller must not modify it.
func (chunk *Chunk) Bytes() []byte {
	return chunk.code
}

// Offsets returns the jump offset table, indexed by jump id.
func (chunk *Chunk) Offsets() []int {
	return chunk.offsets
}

// Fetch decodes the instruction at pos.
func (chunk *Chunk) Fetch(pos int) (ins Instruction, ok bool) {
	if pos < 0 || pos+INSTRUCTION_SIZE > len(chunk.code) {
		return
	}

	ins = Instruction{
		Op:      Opcode(chunk.code[pos]),
		Operand: chunk.code[pos+1],
	}
	ok = true
	return
}

// Instructions iterates over the decoded instructions, keyed by position.
func (chunk *Chunk) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(pos int, ins Instruction) bool) {
		for pos := 0; pos+INSTRUCTION_SIZE <= len(chunk.code); pos += INSTRUCTION_SIZE {
			ins, _ := chunk.Fetch(pos)
			if !yield(pos, ins) {
				return
			}
		}
	}
}

// Dump writes the raw bytecode as hex.
func (chunk *Chunk) Dump(w io.Writer) (err error) {
	_, err = fmt.Fprintf(w, "% x\n", chunk.code)
	return
}

// Disassemble writes the raw bytecode, followed by a symbolic listing of
// each instruction up to and including the first FIN.
func (chunk *Chunk) Disassemble(w io.Writer) (err error) {
	err = chunk.Dump(w)
	if err != nil {
		return
	}

	bw := bufio.NewWriter(w)
	for pos, ins := range chunk.Instructions() {
		fmt.Fprintf(bw, "%08x  ", pos)
		switch {
		case ins.Op == OP_HALT:
			fmt.Fprintln(bw, ins.Op)
		case ins.Op.IsJump():
			target, ok := chunk.Target(ins.Operand)
			if ok {
				fmt.Fprintf(bw, "%-3v @%08x\n", ins.Op, target)
			} else {
				fmt.Fprintf(bw, "%-3v #%d ?\n", ins.Op, ins.Operand)
			}
		default:
			fmt.Fprintf(bw, "%-3v %d\n", ins.Op, ins.Operand)
		}
		if ins.Op == OP_HALT {
			break
		}
	}

	return bw.Flush()
}
