package io

import (
	"bufio"
	"io"
)

// Stream adapts an io.Reader and io.Writer to the Input and Output hooks.
// Output is buffered until Flush, or until a newline when LineBuffered.
type Stream struct {
	Input        io.Reader
	Output       io.Writer
	LineBuffered bool

	writer *bufio.Writer
}

var _ Input = (*Stream)(nil)
var _ Output = (*Stream)(nil)
var _ Flusher = (*Stream)(nil)

// NewStream creates a stream hook. Either side may be nil.
func NewStream(input io.Reader, output io.Writer) *Stream {
	return &Stream{
		Input:  input,
		Output: output,
	}
}

// ReadByte reads exactly one byte from the input.
// The input is not read ahead, so the remainder is left for other readers.
func (st *Stream) ReadByte() (value byte, err error) {
	if st.Input == nil {
		err = ErrNoInput
		return
	}

	var one [1]byte
	_, err = io.ReadFull(st.Input, one[:])
	if err != nil {
		return
	}

	value = one[0]
	return
}

// WriteByte buffers one byte for the output, flushing at a newline when
// the stream is line buffered.
func (st *Stream) WriteByte(c byte) (err error) {
	if st.Output == nil {
		return ErrNoOutput
	}

	if st.writer == nil {
		st.writer = bufio.NewWriter(st.Output)
	}

	err = st.writer.WriteByte(c)
	if err != nil {
		return
	}

	if st.LineBuffered && c == '\n' {
		err = st.writer.Flush()
	}

	return
}

// Flush writes any buffered output.
func (st *Stream) Flush() (err error) {
	if st.writer == nil {
		return
	}

	return st.writer.Flush()
}
