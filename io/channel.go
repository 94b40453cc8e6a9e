// Package io provides the byte I/O hooks used by the ubf virtual machine.
// It includes a buffered stream (Stream) wrapping any io.Reader and
// io.Writer, and a raw mode terminal reader (Terminal).
//
// Any io.ByteReader or io.ByteWriter, such as a *bytes.Reader or a
// *bytes.Buffer, can also be used directly as a hook.
package io

// Input is the hook for reading program input.
type Input interface {
	// ReadByte blocks until one byte is available.
	ReadByte() (byte, error)
}

// Output is the hook for writing program output.
type Output interface {
	// WriteByte writes a single byte.
	WriteByte(c byte) error
}

// Flusher is implemented by hooks that buffer data.
type Flusher interface {
	Flush() error
}

// Flush flushes hook if it buffers data.
func Flush(hook any) (err error) {
	if fl, ok := hook.(Flusher); ok {
		err = fl.Flush()
	}
	return
}
