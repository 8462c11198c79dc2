package configs

import "iter"

// All yields the config file path and decoded value of every file setting path,
// highest precedence first.
func All[T any](loader Loader, path string) iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		found, err := loader.lookup(path)
		if err != nil {
			panic(err)
		}
		for _, info := range found {
			var v T
			if err := info.value.Decode(&v); err != nil {
				panic(wrap(err))
			}
			if !yield(info.path, v) {
				return
			}
		}
	}
}
