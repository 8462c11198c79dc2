package programs

import (
	"fmt"
	"strings"
)

type Program struct {
	commands []Command
	pointer  int
	steps    int
}

func New(commands []Command) (*Program, error) {
	for i, c := range commands {
		if _, ok := mirror[c]; !ok {
			return nil, fmt.Errorf("%w: command %d is %q", ErrInvalidProgram, i, byte(c))
		}
	}
	if err := Validate(commands); err != nil {
		return nil, err
	}
	return &Program{
		commands: append([]Command(nil), commands...),
	}, nil
}

func (p *Program) Len() int {
	return len(p.commands)
}

// Pointer returns the index of the current command.
func (p *Program) Pointer() int {
	return p.pointer
}

func (p *Program) Steps() int {
	return p.steps
}

func (p *Program) Commands() []Command {
	return append([]Command(nil), p.commands...)
}

func (p *Program) Command() (Command, error) {
	if len(p.commands) == 0 {
		return 0, fmt.Errorf("%w: empty program", ErrProgramPointer)
	}
	return p.commands[p.pointer], nil
}

func (p *Program) String() string {
	var b strings.Builder
	b.Grow(len(p.commands))
	for _, c := range p.commands {
		b.WriteByte(byte(c))
	}
	return b.String()
}

// Clone copies the program together with its pointer and step count.
func (p *Program) Clone() *Program {
	ret := *p
	ret.commands = p.Commands()
	return &ret
}

func (p *Program) Reset() {
	p.pointer = 0
	p.steps = 0
}

func (p *Program) right() error {
	if p.pointer >= len(p.commands)-1 {
		return fmt.Errorf("%w: overflow at %d", ErrProgramPointer, p.pointer)
	}
	p.pointer++
	return nil
}

func (p *Program) left() error {
	if p.pointer <= 0 {
		return fmt.Errorf("%w: underflow", ErrProgramPointer)
	}
	p.pointer--
	return nil
}

// MoveRight moves the pointer n commands right, counting one step per command.
func (p *Program) MoveRight(n int) error {
	for range n {
		p.steps++
		if err := p.right(); err != nil {
			return err
		}
	}
	return nil
}

// MoveLeft moves the pointer n commands left, counting one step per command.
func (p *Program) MoveLeft(n int) error {
	for range n {
		p.steps++
		if err := p.left(); err != nil {
			return err
		}
	}
	return nil
}

// LoopStart executes '(' : with a zero bit, jump to the matching ')'.
// Either way the pointer then moves one command right.
func (p *Program) LoopStart(bit bool) error {
	if c, err := p.Command(); err != nil {
		return err
	} else if c != LoopStart {
		return fmt.Errorf("%w: %s at %d", ErrNotAtLoop, c, p.pointer)
	}
	p.steps++

	if !bit {
		for depth := 1; depth > 0; {
			if err := p.right(); err != nil {
				return fmt.Errorf("%w: unmatched loop start", ErrInvalidProgram)
			}
			switch p.commands[p.pointer] {
			case LoopStart:
				depth++
			case LoopEnd:
				depth--
			}
		}
	}

	return p.right()
}

// LoopEnd executes ')' : with a zero bit, jump back to the matching '('.
// Either way the pointer then moves one command right.
func (p *Program) LoopEnd(bit bool) error {
	if c, err := p.Command(); err != nil {
		return err
	} else if c != LoopEnd {
		return fmt.Errorf("%w: %s at %d", ErrNotAtLoop, c, p.pointer)
	}
	p.steps++

	if !bit {
		for depth := 1; depth > 0; {
			if err := p.left(); err != nil {
				return fmt.Errorf("%w: unmatched loop end", ErrInvalidProgram)
			}
			switch p.commands[p.pointer] {
			case LoopStart:
				depth--
			case LoopEnd:
				depth++
			}
		}
	}

	return p.right()
}
