package rbfconfigs

import (
	"github.com/reusee/rbf/configs"
	"github.com/reusee/rbf/logs"
)

// lookup reads def's path from the config files and warns about lower
// precedence files that set a different value.
func lookup[T interface {
	configs.Configurable
	comparable
}](loader configs.Loader, logger logs.Logger, def T) T {
	value := configs.Lookup(loader, def)
	for file, v := range configs.All[T](loader, def.ConfigPath()) {
		if v != value {
			logger.Warn("config value shadowed",
				"path", def.ConfigPath(),
				"file", file,
				"value", v,
				"using", value,
			)
		}
	}
	return value
}
