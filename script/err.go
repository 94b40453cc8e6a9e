package script

import (
	"errors"

	"github.com/ezrec/ubf/translate"
)

var f = translate.From

var (
	// Builtin errors
	ErrKeywords = errors.New(f("unexpected keyword arguments"))
)

type ErrNotString string

func (err ErrNotString) Error() string {
	return f("got %v, want string", string(err))
}

type ErrNegative int

func (err ErrNegative) Error() string {
	return f("count %d is negative", int(err))
}

// ErrScript indicates the script that failed.
type ErrScript struct {
	Filename string
	Err      error
}

func (err *ErrScript) Error() string {
	return f("%v: %v", err.Filename, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}
