package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/reusee/rbf/cmds"
	"github.com/reusee/rbf/machines"
	"github.com/reusee/rbf/tapes"
)

// loadSource reads source from the file it names, or takes it as inline RBF
// when no such file exists.
func loadSource(source string) (string, error) {
	content, err := os.ReadFile(source)
	if errors.Is(err, fs.ErrNotExist) {
		return source, nil
	}
	if err != nil {
		return "", wrap(err)
	}
	return string(content), nil
}

var (
	tapeArg string
	tapFlag bool
)

var tapeOption = cmds.Func(func(arg string) {
	tapeArg = arg
}).Desc("initial tape: a string of 0 and 1, or a size in bytes")

var tapOption = cmds.Func(func() {
	tapFlag = true
}).Desc("open a Starlark REPL on the final machine state")

// initialTape builds the starting tape from -tape: a string of 0 and 1 is the
// initial bits, a number is the size in bytes, empty means the configured size.
func initialTape(arg string, newTape machines.NewTape) (*tapes.Tape, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return newTape()
	}
	if strings.Trim(arg, "01") == "" {
		return tapes.FromBits(arg)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: -tape %q is neither bits nor a byte count", tapes.ErrInvalidArgument, arg)
	}
	return tapes.Allocate(n)
}
