package programs

import "fmt"

type Command byte

const (
	// Toggle flips the bit under the tape cursor.
	Toggle Command = '*'
	// TapeRight moves the tape cursor one bit right.
	TapeRight Command = '>'
	// TapeLeft moves the tape cursor one bit left.
	TapeLeft Command = '<'
	// LoopStart jumps past the matching LoopEnd if the current bit is zero.
	LoopStart Command = '('
	// LoopEnd jumps back to just after the matching LoopStart if the current bit is zero.
	LoopEnd Command = ')'
)

func ParseCommand(r rune) (Command, error) {
	switch c := Command(r); c {
	case Toggle, TapeRight, TapeLeft, LoopStart, LoopEnd:
		if rune(c) == r {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not a valid command", ErrInvalidProgram, r)
}

func (c Command) String() string {
	return string(rune(c))
}

// mirror maps each command to the one that undoes it when run backwards.
var mirror = map[Command]Command{
	Toggle:    Toggle,
	TapeRight: TapeLeft,
	TapeLeft:  TapeRight,
	LoopStart: LoopEnd,
	LoopEnd:   LoopStart,
}
