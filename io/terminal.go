package io

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal reads input one keypress at a time. While a read is pending, a
// terminal is switched out of line buffered mode and its echo is disabled;
// the prior mode is restored after every byte. Files that are not
// terminals are read as plain streams.
type Terminal struct {
	File *os.File
}

var _ Input = (*Terminal)(nil)

// NewTerminal creates a terminal input hook on file.
func NewTerminal(file *os.File) *Terminal {
	return &Terminal{File: file}
}

// IsTerminal returns true if the file is an interactive terminal.
func (tt *Terminal) IsTerminal() bool {
	return tt.File != nil && term.IsTerminal(int(tt.File.Fd()))
}

// ReadByte blocks until a single byte is available.
func (tt *Terminal) ReadByte() (value byte, err error) {
	if tt.File == nil {
		err = ErrNoInput
		return
	}

	if tt.IsTerminal() {
		fd := tt.File.Fd()
		var restore func() error
		restore, err = rawMode(int(fd))
		if err != nil {
			err = &ErrTerminal{Fd: fd, Err: err}
			return
		}
		defer func() {
			rerr := restore()
			if err == nil && rerr != nil {
				err = &ErrTerminal{Fd: fd, Err: rerr}
			}
		}()
	}

	var one [1]byte
	_, err = io.ReadFull(tt.File, one[:])
	if err != nil {
		return
	}

	value = one[0]
	return
}
