package tapes

import (
	"io"
	"strings"
)

func (t *Tape) RenderBits() string {
	var b strings.Builder
	b.Grow(t.Len())
	for _, v := range t.buf {
		for j := range 8 {
			if v>>uint(j)&1 == 1 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	return b.String()
}

func (t *Tape) RenderCursor() string {
	if t.buf == nil {
		return ""
	}
	line := []byte(strings.Repeat(".", t.Len()))
	line[t.cursor] = '^'
	return string(line)
}

func (t *Tape) String() string {
	return t.RenderBits()
}

// Dump writes the bits and the cursor line.
func (t *Tape) Dump(w io.Writer) error {
	_, err := io.WriteString(w, t.RenderBits()+"\n"+t.RenderCursor()+"\n")
	return err
}
