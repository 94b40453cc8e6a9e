// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package tape implements the unbounded, bidirectional cell memory of the
// virtual machine.
package tape

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ezrec/ubf/internal"
)

// Tape is a lazily grown sequence of wrapping 8-bit cells, addressed by a
// signed offset from the origin cell.
//
// Cells at positions >= 0 live in right[pos], cells at positions < 0 live
// in left[-pos-1]. A cell exists once the head has visited it, and keeps its
// value until Reset.
type Tape struct {
	left  []int8
	right []int8
	pos   int
}

// NewTape creates a tape holding only the origin cell.
func NewTape() (tp *Tape) {
	tp = &Tape{}
	tp.Reset()
	return
}

// Reset drops all cells, leaving a single zero cell at the origin.
func (tp *Tape) Reset() {
	tp.left = tp.left[:0]
	tp.right = append(tp.right[:0], 0)
	tp.pos = 0
}

// cell returns the storage for the current cell.
func (tp *Tape) cell() *int8 {
	if tp.pos >= 0 {
		return &tp.right[tp.pos]
	}
	return &tp.left[-tp.pos-1]
}

// Position returns the signed offset of the current cell from the origin.
func (tp *Tape) Position() int {
	return tp.pos
}

// Value returns the value of the current cell.
func (tp *Tape) Value() int8 {
	return *tp.cell()
}

// Set replaces the value of the current cell.
func (tp *Tape) Set(value int8) {
	*tp.cell() = value
}

// Add adds amount to the current cell, wrapping modulo 256.
func (tp *Tape) Add(amount byte) {
	cell := tp.cell()
	*cell = int8(uint8(*cell) + amount)
}

// Sub subtracts amount from the current cell, wrapping modulo 256.
func (tp *Tape) Sub(amount byte) {
	cell := tp.cell()
	*cell = int8(uint8(*cell) - amount)
}

// Left moves the head count cells towards negative positions, creating
// zero cells as needed. A negative count moves right.
func (tp *Tape) Left(count int) {
	if count < 0 {
		tp.Right(-count)
		return
	}

	tp.pos -= count
	if tp.pos < 0 {
		for len(tp.left) < -tp.pos {
			tp.left = append(tp.left, 0)
		}
	}
}

// Right moves the head count cells towards positive positions, creating
// zero cells as needed. A negative count moves left.
func (tp *Tape) Right(count int) {
	if count < 0 {
		tp.Left(-count)
		return
	}

	tp.pos += count
	if tp.pos >= 0 {
		for len(tp.right) <= tp.pos {
			tp.right = append(tp.right, 0)
		}
	}
}

// Bounds returns the lowest and highest positions of existing cells.
func (tp *Tape) Bounds() (lo, hi int) {
	return -len(tp.left), len(tp.right) - 1
}

// Len returns the number of existing cells.
func (tp *Tape) Len() int {
	return len(tp.left) + len(tp.right)
}

// lefts iterates the negative cells, lowest position first.
func (tp *Tape) lefts() iter.Seq2[int, int8] {
	return func(yield func(pos int, value int8) bool) {
		for n := len(tp.left) - 1; n >= 0; n-- {
			if !yield(-n-1, tp.left[n]) {
				return
			}
		}
	}
}

// rights iterates the non-negative cells, origin first.
func (tp *Tape) rights() iter.Seq2[int, int8] {
	return func(yield func(pos int, value int8) bool) {
		for n, value := range tp.right {
			if !yield(n, value) {
				return
			}
		}
	}
}

// Cells iterates over every existing cell, from the lowest position to
// the highest.
func (tp *Tape) Cells() iter.Seq2[int, int8] {
	return internal.IterSeq2Concat(tp.lefts(), tp.rights())
}

// String returns the existing cells as hex bytes, with the current cell
// in brackets.
func (tp *Tape) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%d:", -len(tp.left))
	for pos, value := range tp.Cells() {
		if pos == tp.pos {
			fmt.Fprintf(&sb, " [%02x]", uint8(value))
		} else {
			fmt.Fprintf(&sb, " %02x", uint8(value))
		}
	}

	return sb.String()
}
