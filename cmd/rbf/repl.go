package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/reusee/dscope"
	"github.com/reusee/rbf/cmds"
	"github.com/reusee/rbf/machines"
	"github.com/reusee/rbf/programs"
	"github.com/reusee/rbf/tapes"
)

func init() {
	cmds.Define("repl", cmds.Func(func() {
		action = runREPL
	}).Desc("run lines of RBF interactively against one tape").Sub(map[string]*cmds.Command{
		"-tape": tapeOption,
	}))
}

func runREPL(scope dscope.Scope) (err error) {
	var historyFile string
	if home, e := os.UserHomeDir(); e == nil {
		historyFile = filepath.Join(home, ".rbf_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	scope.Call(func(
		newTape machines.NewTape,
		newMachine machines.NewMachine,
	) {
		var tape *tapes.Tape
		tape, err = initialTape(tapeArg, newTape)
		if err != nil {
			return
		}
		defer tape.Release()

		if err = tape.Dump(rl.Stdout()); err != nil {
			return
		}
		for {
			line, e := rl.Readline()
			if e != nil { // Ctrl-C or Ctrl-D
				return
			}
			if e := evalLine(line, tape, newMachine, rl.Stdout()); e != nil {
				fmt.Fprintf(rl.Stderr(), "error: %v\n", e)
			}
		}
	})
	return
}

// evalLine runs one line of source on tape and prints the resulting tape.
func evalLine(line string, tape *tapes.Tape, newMachine machines.NewMachine, out io.Writer) error {
	program, err := programs.Parse(line)
	if err != nil {
		return err
	}
	if program.Len() == 0 {
		return nil
	}
	m := newMachine(program, tape)
	if err := m.RunContext(context.Background()); err != nil {
		return err
	}
	return tape.Dump(out)
}
