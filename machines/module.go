package machines

import (
	"github.com/reusee/dscope"
	"github.com/reusee/rbf/logs"
	"github.com/reusee/rbf/programs"
	"github.com/reusee/rbf/rbfconfigs"
	"github.com/reusee/rbf/tapes"
)

type Module struct {
	dscope.Module
	Configs rbfconfigs.Module
}

type NewMachine func(program *programs.Program, tape *tapes.Tape) *Machine

func (Module) NewMachine(
	maxSteps rbfconfigs.MaxSteps,
	logger logs.Logger,
) NewMachine {
	return func(program *programs.Program, tape *tapes.Tape) *Machine {
		return &Machine{
			Program:  program,
			Tape:     tape,
			MaxSteps: int(maxSteps),
			Logger:   logger,
		}
	}
}

// NewTape allocates a tape of the configured size.
type NewTape func() (*tapes.Tape, error)

func (Module) NewTape(
	tapeBytes rbfconfigs.TapeBytes,
) NewTape {
	return func() (*tapes.Tape, error) {
		return tapes.Allocate(int(tapeBytes))
	}
}
