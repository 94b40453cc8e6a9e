// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package compiler translates ubf source text into bytecode.
//
// The six simple symbols (+ - < > . ,) are run-length collapsed into a
// single instruction with a repeat count of at most bytecode.MAX_COUNT.
// Loops compile to the structured pattern
//
//	JZ  after
//	<body>
//	JNZ before
//
// where 'before' is the position of the JZ, and 'after' is the position
// following the JNZ. Every other byte is a comment.
package compiler

import (
	"bytes"
	"errors"
	"log"

	"github.com/ezrec/ubf/bytecode"
)

// symbolMap maps run-length collapsible source symbols to opcodes.
var symbolMap = map[byte]bytecode.Opcode{
	'+': bytecode.OP_INC,
	'-': bytecode.OP_DEC,
	'<': bytecode.OP_LEFT,
	'>': bytecode.OP_RIGHT,
	'.': bytecode.OP_PUT,
	',': bytecode.OP_GET,
}

// Compiler is a single pass, recursive ubf to bytecode translator.
type Compiler struct {
	Verbose bool // If set, verbosely logs each emitted instruction.

	source []byte
	index  int
	chunk  *bytecode.Chunk
}

// Compile translates source with a default Compiler.
func Compile(source []byte) (chunk *bytecode.Chunk, err error) {
	cc := &Compiler{}
	return cc.Compile(source)
}

// Compile translates source into a new chunk terminated by FIN.
func (cc *Compiler) Compile(source []byte) (chunk *bytecode.Chunk, err error) {
	cc.source = source
	cc.index = 0
	cc.chunk = bytecode.NewChunk(0)
	defer func() {
		cc.source = nil
		cc.chunk = nil
	}()

	for cc.index < len(cc.source) {
		if cc.source[cc.index] == ']' {
			err = cc.syntaxError(cc.index, ErrUnbalancedLoop)
			return
		}
		err = cc.compileOne()
		if err != nil {
			return
		}
	}

	cc.emit(bytecode.OP_HALT, 0)

	chunk = cc.chunk
	return
}

// emit appends an instruction to the chunk.
func (cc *Compiler) emit(op bytecode.Opcode, operand byte) (pos int) {
	pos = cc.chunk.Emit(op, operand)
	if cc.Verbose {
		log.Printf("compiler: %08x: %v", pos, bytecode.Instruction{Op: op, Operand: operand})
	}
	return
}

// intern registers a jump target, reporting table exhaustion at the
// source offset 'at'.
func (cc *Compiler) intern(pos int, at int) (id byte, err error) {
	id, err = cc.chunk.Intern(pos)
	if err != nil {
		err = cc.syntaxError(at, errors.Join(ErrTooManyJumpTargets, err))
	}
	return
}

// compileOne compiles the symbol at the current index, and any run of
// identical symbols following it.
func (cc *Compiler) compileOne() (err error) {
	symbol := cc.source[cc.index]

	if symbol == '[' {
		return cc.compileLoop()
	}

	op, ok := symbolMap[symbol]
	if !ok {
		// Comment
		cc.index++
		return
	}

	count := 0
	for cc.index < len(cc.source) && cc.source[cc.index] == symbol {
		if count == bytecode.MAX_COUNT {
			cc.emit(op, byte(count))
			count = 0
		}
		count++
		cc.index++
	}
	cc.emit(op, byte(count))

	return
}

// compileLoop compiles a '[' through its matching ']'.
func (cc *Compiler) compileLoop() (err error) {
	start := cc.index
	cc.index++

	jz := cc.chunk.Len()
	before, err := cc.intern(jz, start)
	if err != nil {
		return
	}
	cc.emit(bytecode.OP_JZ, before)

	for cc.index < len(cc.source) && cc.source[cc.index] != ']' {
		err = cc.compileOne()
		if err != nil {
			return
		}
	}

	if cc.index == len(cc.source) {
		err = cc.syntaxError(start, ErrUnbalancedLoop)
		return
	}
	cc.index++

	cc.emit(bytecode.OP_JNZ, before)

	after, err := cc.intern(cc.chunk.Len(), start)
	if err != nil {
		return
	}
	cc.chunk.Patch(jz, after)

	if cc.Verbose {
		log.Printf("compiler: %08x: patch %v", jz, bytecode.Instruction{Op: bytecode.OP_JZ, Operand: after})
	}

	return
}

// syntaxError locates offset in the source.
func (cc *Compiler) syntaxError(offset int, err error) error {
	prefix := cc.source[:offset]
	line := bytes.Count(prefix, []byte{'\n'}) + 1
	column := offset - bytes.LastIndexByte(prefix, '\n')

	return &ErrSyntax{
		Offset: offset,
		Line:   line,
		Column: column,
		Err:    err,
	}
}
