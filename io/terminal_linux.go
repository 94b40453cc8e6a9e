//go:build linux

package io

import (
	"golang.org/x/sys/unix"
)

// rawMode disables canonical input and echo on fd, returning a function
// restoring the previous mode. Output processing and signals are untouched.
func rawMode(fd int) (restore func() error, err error) {
	prior, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return
	}

	raw := *prior
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	err = unix.IoctlSetTermios(fd, unix.TCSETS, &raw)
	if err != nil {
		// try to put it back as it was
		unix.IoctlSetTermios(fd, unix.TCSETS, prior)
		return
	}

	restore = func() error {
		return unix.IoctlSetTermios(fd, unix.TCSETS, prior)
	}
	return
}
