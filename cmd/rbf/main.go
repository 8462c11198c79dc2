package main

import (
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/rbf/cmds"
	"github.com/reusee/rbf/debugs"
	"github.com/reusee/rbf/machines"
	"github.com/reusee/rbf/modes"
)

type Module struct {
	dscope.Module
	Machines machines.Module
	Debugs   debugs.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// action is set by the sub command on the command line
var action func(scope dscope.Scope) error

func main() {
	cmds.Execute(os.Args[1:])
	if action == nil {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	if err := action(scope); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
