package vm

// EOFMode selects what GET stores when the input is exhausted.
type EOFMode int

//go:generate go tool stringer -linecomment -type=EOFMode
const (
	EOF_MINUS_ONE = EOFMode(0) // minus
	EOF_ZERO      = EOFMode(1) // zero
	EOF_KEEP      = EOFMode(2) // keep
)

// ParseEOFMode returns the EOFMode named by text.
func ParseEOFMode(text string) (mode EOFMode, ok bool) {
	for mode = EOF_MINUS_ONE; mode <= EOF_KEEP; mode++ {
		if mode.String() == text {
			ok = true
			return
		}
	}

	mode = EOF_MINUS_ONE
	return
}
