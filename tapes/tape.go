// Package tapes implements a fixed-size circular tape of bits backed by a byte buffer.
//
// Bits are addressed LSB-first: bit i lives in byte i/8 at offset i%8, where offset 0
// is the least significant bit. A cursor selects one bit and moves with wraparound.
package tapes

import (
	"fmt"
	"math"
)

type Tape struct {
	buf    []byte
	cursor int
}

// Allocate returns a zeroed tape of capacityBytes bytes with the cursor at bit 0.
func Allocate(capacityBytes int) (ret *Tape, err error) {
	if capacityBytes <= 0 {
		return nil, fmt.Errorf("%w: capacity %d bytes", ErrInvalidArgument, capacityBytes)
	}
	if capacityBytes > math.MaxInt/8 {
		return nil, fmt.Errorf("%w: %d bytes", ErrOutOfMemory, capacityBytes)
	}

	defer func() {
		if p := recover(); p != nil {
			ret = nil
			err = fmt.Errorf("%w: %d bytes: %v", ErrOutOfMemory, capacityBytes, p)
		}
	}()

	return &Tape{
		buf: make([]byte, capacityBytes),
	}, nil
}

// FromBits builds a tape from a string of '0' and '1' in rendering order,
// zero-padded to a whole byte.
func FromBits(bits string) (*Tape, error) {
	if bits == "" {
		return nil, fmt.Errorf("%w: empty bit string", ErrInvalidArgument)
	}
	t, err := Allocate((len(bits) + 7) / 8)
	if err != nil {
		return nil, err
	}
	for i, c := range []byte(bits) {
		switch c {
		case '0':
		case '1':
			t.buf[i>>3] |= 1 << uint(i&7)
		default:
			return nil, fmt.Errorf("%w: bad character %q at %d", ErrInvalidArgument, c, i)
		}
	}
	return t, nil
}

// Release drops the buffer. Every later operation reports ErrReleased.
func (t *Tape) Release() {
	t.buf = nil
	t.cursor = 0
}

func (t *Tape) Released() bool {
	return t.buf == nil
}

func (t *Tape) CapacityBytes() int {
	return len(t.buf)
}

// Len returns the number of addressable bits.
func (t *Tape) Len() int {
	return len(t.buf) * 8
}

// Bytes returns a copy of the backing buffer.
func (t *Tape) Bytes() []byte {
	if t.buf == nil {
		return nil
	}
	ret := make([]byte, len(t.buf))
	copy(ret, t.buf)
	return ret
}
