package bytecode

import (
	"errors"

	"github.com/ezrec/ubf/translate"
)

var f = translate.From

var (
	// Chunk errors
	ErrOffsetFull = errors.New(f("jump offset table full"))
)
