package cmds

import (
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var steps int
	executor.Define("-unlimited", Func(func() {
		steps = -1
	}))
	executor.Define("-max-steps", Func(func(i int) {
		steps = i
	}))

	if err := executor.Execute([]string{"-unlimited"}); err != nil {
		t.Fatal(err)
	}
	if steps != -1 {
		t.Fatal()
	}

	if err := executor.Execute([]string{"-max-steps", "100"}); err != nil {
		t.Fatal(err)
	}
	if steps != 100 {
		t.Fatal()
	}

	err := executor.Execute([]string{"foo"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"-max-steps", "many"})
	if err == nil || !strings.Contains(err.Error(), "-max-steps: convert many to int") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"-max-steps"})
	if err == nil || !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	errBad := errors.New("bad")
	executor.Define("fail", Func(func() error {
		return errBad
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	if err := executor.Execute([]string{"fail"}); !errors.Is(err, errBad) {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var source string
	var bytes int
	executor.Define("run", Func(func(src string) {
		source = src
	}).Sub(map[string]*Command{
		"-tape-bytes": Func(func(i int) {
			bytes = i
		}),
	}))

	if err := executor.Execute([]string{
		"run", "*>*",
		"-tape-bytes", "4",
	}); err != nil {
		t.Fatal(err)
	}
	if source != "*>*" {
		t.Fatalf("got %v", source)
	}
	if bytes != 4 {
		t.Fatalf("got %v", bytes)
	}

	// sub commands are not visible before their parent
	if err := executor.Execute([]string{"-tape-bytes", "4"}); err == nil {
		t.Fatal("should error")
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Func(func() {}).Sub(map[string]*Command{
		"a": Func(func() {}),
	}))
	executor.Define("bar", Func(func() {}).Sub(map[string]*Command{
		"a": Func(func() {}),
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if err == nil || !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestDuplicatedDefine(t *testing.T) {
	executor := NewExecutor()
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	executor.Define("help", Func(func() {}))
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	if err := executor.Execute([]string{"foo", "42", "foo"}); err != nil {
		t.Fatal(err)
	}
	if n != 42 || s != "foo" {
		t.Fatalf("got %v %v", n, s)
	}

	if err := executor.Execute([]string{"foo", "99"}); err != nil {
		t.Fatal(err)
	}
	if n != 99 || s != "" {
		t.Fatalf("got %v %v", n, s)
	}

	if err := executor.Execute([]string{"foo"}); err != nil {
		t.Fatal(err)
	}
	if n != 0 || s != "" {
		t.Fatalf("got %v %v", n, s)
	}
}

func TestFuncMustReturnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	Func(func() int { return 0 })
}
