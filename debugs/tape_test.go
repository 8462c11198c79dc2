package debugs

import (
	"strings"
	"testing"

	"github.com/reusee/rbf/machines"
	"github.com/reusee/rbf/programs"
	"github.com/reusee/rbf/tapes"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

func TestMachineGlobals(t *testing.T) {
	program, err := programs.Parse("*>")
	if err != nil {
		t.Fatal(err)
	}
	tape, err := tapes.Allocate(1)
	if err != nil {
		t.Fatal(err)
	}
	m := &machines.Machine{
		Program:  program,
		Tape:     tape,
		MaxSteps: 10,
	}

	globals := MachineGlobals(m)

	src := `
before = render()
set(3, True)
flip(0)
assert_ok = get(0) and get(3) and not get(1)
seek(6)
moved = move(-7)
here = cursor()
bits = render()
line = render_cursor()
`
	globalsOut, err := starlark.ExecFileOptions(
		&syntax.FileOptions{},
		&starlark.Thread{Name: "test"},
		"test.star",
		src,
		toStarlarkDict(globals),
	)
	if err != nil {
		t.Fatal(err)
	}
	if globalsOut["assert_ok"] != starlark.True {
		t.Fatalf("got %v", globalsOut["assert_ok"])
	}
	if moved, err := starlark.AsInt32(globalsOut["moved"]); err != nil || moved != 7 {
		t.Fatalf("got %v", globalsOut["moved"])
	}
	for name, want := range map[string]string{
		"before": "00000000",
		"bits":   "10010000",
		"line":   ".......^",
	} {
		if got, ok := starlark.AsString(globalsOut[name]); !ok || got != want {
			t.Fatalf("%s: got %v", name, globalsOut[name])
		}
	}
	if tape.Cursor() != 7 {
		t.Fatalf("got %v", tape.Cursor())
	}
	if tape.RenderBits() != "10010000" {
		t.Fatalf("got %v", tape.RenderBits())
	}

	_, err = starlark.ExecFileOptions(
		&syntax.FileOptions{},
		&starlark.Thread{Name: "test"},
		"bad.star",
		"get(8)",
		toStarlarkDict(globals),
	)
	if err == nil || !strings.Contains(err.Error(), "index out of range") {
		t.Fatalf("got %v", err)
	}
}
