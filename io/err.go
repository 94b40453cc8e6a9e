package io

import (
	"errors"

	"github.com/ezrec/ubf/translate"
)

var f = translate.From

var (
	// Hook errors
	ErrNoInput  = errors.New(f("no input attached"))
	ErrNoOutput = errors.New(f("no output attached"))
)

// ErrTerminal reports a failure to change terminal modes.
type ErrTerminal struct {
	Fd  uintptr
	Err error
}

func (err *ErrTerminal) Error() string {
	return f("terminal fd %d %v", err.Fd, err.Err)
}

func (err *ErrTerminal) Unwrap() error {
	return err.Err
}
