package vm

import (
	"errors"

	"github.com/ezrec/ubf/bytecode"
	"github.com/ezrec/ubf/translate"
)

var f = translate.From

var (
	// Execution errors
	ErrPcRange    = errors.New(f("pc out of range"))
	ErrJumpTarget = errors.New(f("jump target unknown"))
	ErrTickLimit  = errors.New(f("tick limit exceeded"))
	ErrClosed     = errors.New(f("vm closed"))
)

// ErrOpcode reports an instruction that could not be executed.
type ErrOpcode bytecode.Instruction

func (eo ErrOpcode) Error() string {
	return f("bad instruction %v", bytecode.Instruction(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrRuntime indicates the bytecode position of a runtime error.
type ErrRuntime struct {
	Pc  int
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc %08x %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
