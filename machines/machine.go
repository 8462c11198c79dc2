// Package machines runs RBF programs against a bit tape.
package machines

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/rbf/logs"
	"github.com/reusee/rbf/programs"
	"github.com/reusee/rbf/tapes"
)

type Machine struct {
	Program  *programs.Program
	Tape     *tapes.Tape
	MaxSteps int
	Logger   logs.Logger
}

// Step is the machine state just before a command executes.
type Step struct {
	Steps   int
	Pointer int
	Command programs.Command
	Cursor  int
	Bit     bool
}

// Run executes the program, yielding the state before each command.
// Returning false from yield stops the run. Execution also ends when the
// program pointer moves past the last command or MaxSteps steps have been
// taken. Errors are yielded once and end the run.
func (m *Machine) Run(yield func(*Step, error) bool) {
	for m.Program.Steps() < m.MaxSteps {
		if m.Program.Len() == 0 {
			return
		}

		command, err := m.Program.Command()
		if err != nil {
			yield(nil, err)
			return
		}
		bit, err := m.Tape.Current()
		if err != nil {
			yield(nil, err)
			return
		}

		step := &Step{
			Steps:   m.Program.Steps(),
			Pointer: m.Program.Pointer(),
			Command: command,
			Cursor:  m.Tape.Cursor(),
			Bit:     bit,
		}
		if m.Logger != nil {
			m.Logger.Debug("step",
				"steps", step.Steps,
				"command", command.String(),
				"pointer", step.Pointer,
				"cursor", step.Cursor,
				"tape", m.Tape.RenderBits(),
			)
		}
		if !yield(step, nil) {
			return
		}

		if err := m.exec(command, bit); err != nil {
			if errors.Is(err, programs.ErrProgramPointer) {
				// moved past the last command
				return
			}
			yield(nil, err)
			return
		}
	}
}

func (m *Machine) exec(command programs.Command, bit bool) error {
	switch command {
	case programs.Toggle:
		if err := m.Tape.Toggle(); err != nil {
			return err
		}
		return m.Program.MoveRight(1)
	case programs.TapeRight:
		if err := m.Tape.Move(1); err != nil {
			return err
		}
		return m.Program.MoveRight(1)
	case programs.TapeLeft:
		if err := m.Tape.Move(-1); err != nil {
			return err
		}
		return m.Program.MoveRight(1)
	case programs.LoopStart:
		return m.Program.LoopStart(bit)
	case programs.LoopEnd:
		return m.Program.LoopEnd(bit)
	}
	return fmt.Errorf("%w: unknown command %q", programs.ErrInvalidProgram, byte(command))
}

// RunContext runs to completion, checking ctx between steps.
func (m *Machine) RunContext(ctx context.Context) error {
	for _, err := range m.Run {
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if m.Logger != nil {
		m.Logger.InfoContext(ctx, "run finished",
			"steps", m.Program.Steps(),
			"tape", m.Tape.RenderBits(),
		)
	}
	return nil
}
