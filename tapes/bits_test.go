package tapes

import (
	"errors"
	"testing"
)

func TestSetIsolation(t *testing.T) {
	for _, n := range []int{1, 2, 3} {
		for i := 0; i < n*8; i++ {
			for _, v := range []bool{true, false} {
				for _, fill := range []byte{0x00, 0xff, 0xa5} {
					tape, err := Allocate(n)
					if err != nil {
						t.Fatal(err)
					}
					for j := range tape.buf {
						tape.buf[j] = fill
					}
					before := tape.Bytes()

					if err := tape.Set(i, v); err != nil {
						t.Fatal(err)
					}
					got, err := tape.Get(i)
					if err != nil {
						t.Fatal(err)
					}
					if got != v {
						t.Fatalf("bit %d: got %v, want %v", i, got, v)
					}

					for j := 0; j < n*8; j++ {
						if j == i {
							continue
						}
						want := before[j/8]>>uint(j%8)&1 == 1
						got, err := tape.Get(j)
						if err != nil {
							t.Fatal(err)
						}
						if got != want {
							t.Fatalf("set %d=%v on fill %#x changed bit %d", i, v, fill, j)
						}
					}
				}
			}
		}
	}
}

func TestClearKeepsSiblings(t *testing.T) {
	tape, err := Allocate(1)
	if err != nil {
		t.Fatal(err)
	}
	if err := tape.Set(1, true); err != nil {
		t.Fatal(err)
	}
	if err := tape.Set(5, false); err != nil {
		t.Fatal(err)
	}
	if tape.RenderBits() != "01000000" {
		t.Fatalf("got %v", tape.RenderBits())
	}
}

func TestFlipInvolution(t *testing.T) {
	tape, err := FromBits("1011001110001111")
	if err != nil {
		t.Fatal(err)
	}
	orig := tape.RenderBits()
	for i := 0; i < tape.Len(); i++ {
		if err := tape.Flip(i); err != nil {
			t.Fatal(err)
		}
		flipped := tape.RenderBits()
		if flipped[i] == orig[i] {
			t.Fatalf("bit %d not flipped", i)
		}
		if flipped[:i]+flipped[i+1:] != orig[:i]+orig[i+1:] {
			t.Fatalf("flip %d changed other bits", i)
		}
		if err := tape.Flip(i); err != nil {
			t.Fatal(err)
		}
		if tape.RenderBits() != orig {
			t.Fatalf("got %v", tape.RenderBits())
		}
	}
}

func TestBounds(t *testing.T) {
	tape, err := FromBits("0110")
	if err != nil {
		t.Fatal(err)
	}
	if err := tape.Seek(3); err != nil {
		t.Fatal(err)
	}
	before := tape.RenderBits()

	for _, i := range []int{-1, 8, 1 << 40} {
		if _, err := tape.Get(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("get %d: got %v", i, err)
		}
		if err := tape.Set(i, true); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("set %d: got %v", i, err)
		}
		if err := tape.Flip(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("flip %d: got %v", i, err)
		}
		if err := tape.Seek(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("seek %d: got %v", i, err)
		}
	}

	if tape.RenderBits() != before {
		t.Fatalf("got %v", tape.RenderBits())
	}
	if tape.Cursor() != 3 {
		t.Fatalf("got %v", tape.Cursor())
	}
}

func TestCurrentAndToggle(t *testing.T) {
	tape, err := Allocate(1)
	if err != nil {
		t.Fatal(err)
	}
	if err := tape.Move(-1); err != nil {
		t.Fatal(err)
	}
	if err := tape.Toggle(); err != nil {
		t.Fatal(err)
	}
	bit, err := tape.Current()
	if err != nil {
		t.Fatal(err)
	}
	if !bit {
		t.Fatal()
	}
	if tape.RenderBits() != "00000001" {
		t.Fatalf("got %v", tape.RenderBits())
	}
}
