package configs

import "errors"

// Configurable is a setting type that knows the CUE path it is read from.
type Configurable interface {
	ConfigPath() string
}

// Lookup returns the configured value for T, or def when no file sets it.
func Lookup[T Configurable](loader Loader, def T) T {
	var value T
	if err := loader.AssignFirst(def.ConfigPath(), &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return def
		}
		panic(err)
	}
	return value
}
