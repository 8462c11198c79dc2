package rbfconfigs

import (
	"github.com/reusee/rbf/configs"
	"github.com/reusee/rbf/logs"
)

// MaxSteps bounds a run; RBF programs loop forever easily.
type MaxSteps int

var _ configs.Configurable = MaxSteps(0)

func (MaxSteps) ConfigPath() string {
	return "max_steps"
}

const DefaultMaxSteps MaxSteps = 10_000

var maxStepsFlag = positiveFlag("-max-steps", "stop a run after this many steps")

func (Module) MaxSteps(
	loader configs.Loader,
	logger logs.Logger,
) MaxSteps {
	if *maxStepsFlag > 0 {
		return MaxSteps(*maxStepsFlag)
	}
	return lookup(loader, logger, DefaultMaxSteps)
}
