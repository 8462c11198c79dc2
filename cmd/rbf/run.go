package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/rbf/cmds"
	"github.com/reusee/rbf/debugs"
	"github.com/reusee/rbf/logs"
	"github.com/reusee/rbf/machines"
	"github.com/reusee/rbf/programs"
	"github.com/reusee/rbf/tapes"
	"golang.org/x/term"
)

func init() {
	cmds.Define("run", cmds.Func(func(source string) {
		action = func(scope dscope.Scope) error {
			return runSource(scope, source, os.Stdout)
		}
	}).Desc("run a program, given as a file path or inline source").Sub(map[string]*cmds.Command{
		"-tape": tapeOption,
		"-tap":  tapOption,
	}))
}

func runSource(scope dscope.Scope, source string, out io.Writer) (err error) {
	scope.Call(func(
		newSpan logs.NewSpan,
		newTape machines.NewTape,
		newMachine machines.NewMachine,
		tap debugs.Tap,
	) {
		ctx, _ := newSpan(context.Background(), "")
		ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
		defer cancel()

		src, e := loadSource(source)
		if e != nil {
			err = e
			return
		}
		program, e := programs.Parse(src)
		if e != nil {
			err = e
			return
		}
		tape, e := initialTape(tapeArg, newTape)
		if e != nil {
			err = e
			return
		}
		defer tape.Release()

		m := newMachine(program, tape)
		if err = m.RunContext(ctx); err != nil {
			return
		}
		if err = printTape(out, tape); err != nil {
			return
		}
		if tapFlag {
			tap(ctx, "run", debugs.MachineGlobals(m))
		}
	})
	return
}

func printTape(w io.Writer, tape *tapes.Tape) error {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return tape.Dump(w)
	}
	_, err := fmt.Fprintln(w, tape.RenderBits())
	return err
}
