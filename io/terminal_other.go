//go:build !linux

package io

import (
	"golang.org/x/term"
)

// rawMode puts fd in raw mode, returning a function restoring the previous
// mode.
func rawMode(fd int) (restore func() error, err error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return
	}

	restore = func() error {
		return term.Restore(fd, state)
	}
	return
}
