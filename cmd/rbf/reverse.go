package main

import (
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/rbf/cmds"
	"github.com/reusee/rbf/programs"
)

func init() {
	cmds.Define("reverse", cmds.Func(func(source string) {
		action = func(dscope.Scope) error {
			return reverseSource(source, os.Stdout)
		}
	}).Desc("print the program that undoes a program"))
}

func reverseSource(source string, out io.Writer) error {
	src, err := loadSource(source)
	if err != nil {
		return err
	}
	reversed, err := programs.ReverseSource(src)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, reversed)
	return err
}
