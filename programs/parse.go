package programs

import (
	"fmt"
	"strings"
)

// Preprocess strips '#' comments and blanks from source.
func Preprocess(src string) string {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		line, _, _ = strings.Cut(line, "#")
		lines[i] = line
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r':
			return -1
		}
		return r
	}, strings.Join(lines, ""))
}

// Validate checks that loop brackets are balanced.
func Validate(commands []Command) error {
	depth := 0
	for i, c := range commands {
		switch c {
		case LoopStart:
			depth++
		case LoopEnd:
			depth--
		}
		if depth < 0 {
			return fmt.Errorf("%w: unmatched loop end at %d", ErrInvalidProgram, i)
		}
	}
	if depth != 0 {
		return fmt.Errorf("%w: unmatched loop start", ErrInvalidProgram)
	}
	return nil
}

func Parse(src string) (*Program, error) {
	src = Preprocess(src)
	commands := make([]Command, 0, len(src))
	for i, r := range src {
		c, err := ParseCommand(r)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", i, err)
		}
		commands = append(commands, c)
	}
	return New(commands)
}
