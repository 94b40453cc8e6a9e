package compiler

import (
	"errors"

	"github.com/ezrec/ubf/translate"
)

var f = translate.From

var (
	// Compiler errors
	ErrUnbalancedLoop     = errors.New(f("unbalanced loop"))
	ErrTooManyJumpTargets = errors.New(f("too many jump targets"))
)

// ErrSyntax indicates the source location of a compile error.
type ErrSyntax struct {
	Offset int // Byte offset into the source.
	Line   int // 1-based line number.
	Column int // 1-based column number.
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d column %d (offset %d) %v", err.Line, err.Column, err.Offset, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
