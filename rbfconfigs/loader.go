package rbfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/rbf/configs"
	"github.com/reusee/rbf/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"rbf.cue",
	".rbf.cue",
}

// Dirs lists the directories searched for config files, most specific first.
type Dirs []string

func (Module) Dirs() Dirs {
	var dirs Dirs
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")
	return dirs
}

func (Module) ConfigsLoader(
	dirs Dirs,
	logger logs.Logger,
) configs.Loader {
	var paths []string
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	if len(paths) > 0 {
		logger.Info("config file", "paths", paths)
	}
	return configs.NewLoader(paths, schema)
}
