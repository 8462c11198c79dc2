package tapes

import "fmt"

func (t *Tape) Cursor() int {
	return t.cursor
}

func (t *Tape) Seek(bit int) error {
	if t.buf == nil {
		return ErrReleased
	}
	if bit < 0 || bit >= t.Len() {
		return fmt.Errorf("%w: seek %d not in [0, %d)", ErrIndexOutOfRange, bit, t.Len())
	}
	t.cursor = bit
	return nil
}

// Move advances the cursor by offset bits, wrapping around both ends.
// Any offset is accepted.
func (t *Tape) Move(offset int) error {
	if t.buf == nil {
		return ErrReleased
	}
	n := t.Len()
	// |offset % n| < n and cursor < n, so the sum cannot overflow
	c := (t.cursor + offset%n) % n
	if c < 0 {
		c += n
	}
	t.cursor = c
	return nil
}
