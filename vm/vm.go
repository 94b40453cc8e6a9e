// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/ubf/bytecode"
	"github.com/ezrec/ubf/compiler"
	ubfio "github.com/ezrec/ubf/io"
	"github.com/ezrec/ubf/tape"
)

// Vm is the execution engine state: a tape, a program counter, and the I/O
// hooks. A Vm may run any number of chunks; the tape carries over between
// runs.
type Vm struct {
	Verbose   bool         // Set to enable verbose logging.
	Input     ubfio.Input  // Input hook for GET.
	Output    ubfio.Output // Output hook for PUT.
	EOF       EOFMode      // Value stored by GET at end of input.
	TickLimit int          // If non-zero, maximum ticks per run.

	Tape  *tape.Tape // Cell memory.
	Pc    int        // Bytecode position of the next instruction.
	Ticks int        // Instructions executed in the current run.
}

// NewVm creates a VM reading keypresses from stdin and writing to stdout.
// Standard output is flushed at every newline.
func NewVm() (vm *Vm) {
	output := ubfio.NewStream(nil, os.Stdout)
	output.LineBuffered = true

	vm = &Vm{
		Input:  ubfio.NewTerminal(os.Stdin),
		Output: output,
		Tape:   tape.NewTape(),
	}

	return
}

// Close flushes pending output and releases the tape.
func (vm *Vm) Close() (err error) {
	if vm.Tape == nil {
		return
	}

	err = ubfio.Flush(vm.Output)
	vm.Tape = nil

	return
}

// Reset clears the tape and counters. Hooks are kept.
func (vm *Vm) Reset() {
	if vm.Tape == nil {
		vm.Tape = tape.NewTape()
	} else {
		vm.Tape.Reset()
	}
	vm.Pc = 0
	vm.Ticks = 0
}

// Position returns the tape head offset from the origin cell.
func (vm *Vm) Position() int {
	if vm.Tape == nil {
		return 0
	}
	return vm.Tape.Position()
}

// String returns the current VM state as a string.
func (vm *Vm) String() (text string) {
	text += fmt.Sprintf("% 5s: %08x\n", "pc", vm.Pc)
	text += fmt.Sprintf("% 5s: %d\n", "ticks", vm.Ticks)
	if vm.Tape != nil {
		text += fmt.Sprintf("% 5s: %d\n", "pos", vm.Tape.Position())
		text += fmt.Sprintf("% 5s: %02x\n", "cell", uint8(vm.Tape.Value()))
		text += fmt.Sprintf("% 5s: %v\n", "tape", vm.Tape)
	}

	return
}

// Interpret compiles source and runs it.
func (vm *Vm) Interpret(source []byte) (err error) {
	cc := &compiler.Compiler{Verbose: vm.Verbose}

	chunk, err := cc.Compile(source)
	if err != nil {
		return
	}

	return vm.Run(chunk)
}

// Run executes chunk from its first instruction until FIN.
// Output is flushed before returning.
func (vm *Vm) Run(chunk *bytecode.Chunk) (err error) {
	if vm.Tape == nil {
		return ErrClosed
	}

	vm.Pc = 0
	vm.Ticks = 0

	if vm.Verbose {
		log.Printf("vm: run %d bytes, %d jump targets", chunk.Len(), len(chunk.Offsets()))
	}

	defer func() {
		ferr := ubfio.Flush(vm.Output)
		if err == nil {
			err = ferr
		}
	}()

	for {
		var done bool
		done, err = vm.Tick(chunk)
		if err != nil || done {
			break
		}
	}

	if vm.Verbose {
		log.Printf("vm: halted after %d ticks, err %v", vm.Ticks, err)
	}

	return
}

// Tick executes a single instruction of chunk.
func (vm *Vm) Tick(chunk *bytecode.Chunk) (done bool, err error) {
	pc := vm.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Err: err}
		}
	}()

	if vm.Tape == nil {
		err = ErrClosed
		return
	}

	if vm.TickLimit > 0 && vm.Ticks >= vm.TickLimit {
		err = ErrTickLimit
		return
	}

	ins, ok := chunk.Fetch(pc)
	if !ok {
		err = ErrPcRange
		return
	}

	vm.Pc += bytecode.INSTRUCTION_SIZE
	vm.Ticks++

	if vm.Verbose {
		log.Printf("vm: %08x: %v", pc, ins)
	}

	return vm.Execute(chunk, ins)
}

// jump moves the program counter to the target of a jump id.
func (vm *Vm) jump(chunk *bytecode.Chunk, id byte) (err error) {
	target, ok := chunk.Target(id)
	if !ok {
		return ErrJumpTarget
	}

	vm.Pc = target
	return
}

// Execute executes a single decoded instruction.
func (vm *Vm) Execute(chunk *bytecode.Chunk, ins bytecode.Instruction) (done bool, err error) {
	defer func() {
		if err != nil && !errors.Is(err, ErrOpcode{}) {
			err = errors.Join(ErrOpcode(ins), err)
		}
	}()

	tp := vm.Tape
	count := int(ins.Operand)

	switch ins.Op {
	case bytecode.OP_INC:
		tp.Add(ins.Operand)
	case bytecode.OP_DEC:
		tp.Sub(ins.Operand)
	case bytecode.OP_LEFT:
		tp.Left(count)
	case bytecode.OP_RIGHT:
		tp.Right(count)
	case bytecode.OP_JZ:
		if tp.Value() == 0 {
			err = vm.jump(chunk, ins.Operand)
		}
	case bytecode.OP_JNZ:
		if tp.Value() != 0 {
			err = vm.jump(chunk, ins.Operand)
		}
	case bytecode.OP_PUT:
		err = vm.put(count)
	case bytecode.OP_GET:
		err = vm.get(count)
	case bytecode.OP_HALT:
		done = true
	default:
		err = ErrOpcode(ins)
	}

	return
}

// put writes the current cell to the output hook count times.
func (vm *Vm) put(count int) (err error) {
	if vm.Output == nil {
		return ubfio.ErrNoOutput
	}

	value := byte(vm.Tape.Value())
	for range count {
		err = vm.Output.WriteByte(value)
		if err != nil {
			return
		}
	}

	return
}

// get reads count bytes from the input hook, storing each into the
// current cell.
func (vm *Vm) get(count int) (err error) {
	if vm.Input == nil {
		return ubfio.ErrNoInput
	}

	// Make any prompt visible before blocking.
	err = ubfio.Flush(vm.Output)
	if err != nil {
		return
	}

	for range count {
		var value byte
		value, err = vm.Input.ReadByte()
		if errors.Is(err, io.EOF) {
			err = nil
			switch vm.EOF {
			case EOF_ZERO:
				vm.Tape.Set(0)
			case EOF_KEEP:
			default:
				vm.Tape.Set(-1)
			}
			continue
		}
		if err != nil {
			return
		}
		vm.Tape.Set(int8(value))
	}

	return
}
