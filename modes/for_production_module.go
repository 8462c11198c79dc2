package modes

import "github.com/reusee/dscope"

// ModuleForProduction is added to the scope built by command line entry points.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}
