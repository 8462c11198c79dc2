package debugs

import (
	"github.com/reusee/rbf/machines"
	"github.com/reusee/rbf/tapes"
	"go.starlark.net/starlark"
)

// MachineGlobals exposes a machine's live tape and program to the tap REPL.
func MachineGlobals(m *machines.Machine) map[string]any {
	tape := m.Tape
	return map[string]any{
		"program":       m.Program.String(),
		"steps":         m.Program.Steps(),
		"render":        tape.RenderBits,
		"render_cursor": tape.RenderCursor,
		"cursor": starlark.NewBuiltin("cursor", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
				return nil, err
			}
			return starlark.MakeInt(tape.Cursor()), nil
		}),
		"get":  bitBuiltin("get", tape, getBit),
		"flip": bitBuiltin("flip", tape, flipBit),
		"seek": bitBuiltin("seek", tape, seekBit),
		"move": starlark.NewBuiltin("move", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var offset int
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "offset", &offset); err != nil {
				return nil, err
			}
			if err := tape.Move(offset); err != nil {
				return nil, err
			}
			return starlark.MakeInt(tape.Cursor()), nil
		}),
		"set": starlark.NewBuiltin("set", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var bit int
			var value bool
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "bit", &bit, "value", &value); err != nil {
				return nil, err
			}
			if err := tape.Set(bit, value); err != nil {
				return nil, err
			}
			return starlark.None, nil
		}),
	}
}

func getBit(tape *tapes.Tape, bit int) (starlark.Value, error) {
	v, err := tape.Get(bit)
	if err != nil {
		return nil, err
	}
	return starlark.Bool(v), nil
}

func flipBit(tape *tapes.Tape, bit int) (starlark.Value, error) {
	if err := tape.Flip(bit); err != nil {
		return nil, err
	}
	return getBit(tape, bit)
}

func seekBit(tape *tapes.Tape, bit int) (starlark.Value, error) {
	if err := tape.Seek(bit); err != nil {
		return nil, err
	}
	return starlark.MakeInt(tape.Cursor()), nil
}

func bitBuiltin(name string, tape *tapes.Tape, fn func(*tapes.Tape, int) (starlark.Value, error)) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var bit int
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "bit", &bit); err != nil {
			return nil, err
		}
		return fn(tape, bit)
	})
}
