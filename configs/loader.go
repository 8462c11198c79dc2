package configs

import (
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads values from a list of CUE files. Files are compiled once, on
// first use, and each is validated against the closed schema. Earlier files
// take precedence.
type Loader struct {
	getRoots func() ([]rootInfo, error)
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		getRoots: sync.OnceValues(func() (ret []rootInfo, err error) {
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, wrap(err)
				}
			}

			for _, filePath := range filePaths {
				content, err := os.ReadFile(filePath)
				if err != nil {
					return nil, wrap(err)
				}

				value := ctx.CompileBytes(content, cue.Filename(filePath))
				if err := value.Err(); err != nil {
					return nil, wrap(err)
				}
				if schema.Exists() {
					value = schema.Unify(value)
					if err := value.Validate(); err != nil {
						return nil, wrap(err)
					}
				}

				ret = append(ret, rootInfo{
					value: value,
					path:  filePath,
				})
			}
			return
		}),
	}
}

type rootInfo struct {
	value cue.Value
	path  string
}

// IterCueValues yields every concrete value at path, in file order.
func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		found, err := l.lookup(path)
		if err != nil {
			yield(nil, err)
			return
		}
		for _, info := range found {
			if !yield(&info.value, nil) {
				return
			}
		}
	}
}

func (l Loader) lookup(path string) (ret []rootInfo, err error) {
	roots, err := l.getRoots()
	if err != nil {
		return nil, err
	}
	cuePath := cue.ParsePath(path)
	for _, info := range roots {
		value := info.value.LookupPath(cuePath)
		if !value.Exists() || value.Err() != nil {
			continue
		}
		ret = append(ret, rootInfo{
			value: value,
			path:  info.path,
		})
	}
	return
}

func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}
