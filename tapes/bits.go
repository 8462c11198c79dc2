package tapes

import "fmt"

// locate checks bit against the tape range and returns its byte index and mask.
func (t *Tape) locate(bit int) (int, byte, error) {
	if t.buf == nil {
		return 0, 0, ErrReleased
	}
	if bit < 0 || bit >= t.Len() {
		return 0, 0, fmt.Errorf("%w: bit %d not in [0, %d)", ErrIndexOutOfRange, bit, t.Len())
	}
	return bit >> 3, 1 << uint(bit&7), nil
}

func (t *Tape) Get(bit int) (bool, error) {
	i, mask, err := t.locate(bit)
	if err != nil {
		return false, err
	}
	return t.buf[i]&mask != 0, nil
}

// Set sets or clears exactly one bit, leaving the others untouched.
func (t *Tape) Set(bit int, value bool) error {
	i, mask, err := t.locate(bit)
	if err != nil {
		return err
	}
	if value {
		t.buf[i] |= mask
	} else {
		t.buf[i] &^= mask
	}
	return nil
}

func (t *Tape) Flip(bit int) error {
	i, mask, err := t.locate(bit)
	if err != nil {
		return err
	}
	t.buf[i] ^= mask
	return nil
}

// Current returns the bit under the cursor.
func (t *Tape) Current() (bool, error) {
	return t.Get(t.cursor)
}

// Toggle flips the bit under the cursor.
func (t *Tape) Toggle() error {
	return t.Flip(t.cursor)
}
