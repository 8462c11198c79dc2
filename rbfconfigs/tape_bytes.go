package rbfconfigs

import (
	"github.com/reusee/rbf/configs"
	"github.com/reusee/rbf/logs"
)

// TapeBytes is the size of a freshly allocated tape.
type TapeBytes int

var _ configs.Configurable = TapeBytes(0)

func (TapeBytes) ConfigPath() string {
	return "tape_bytes"
}

const DefaultTapeBytes TapeBytes = 1

var tapeBytesFlag = positiveFlag("-tape-bytes", "bytes of a new tape")

func (Module) TapeBytes(
	loader configs.Loader,
	logger logs.Logger,
) TapeBytes {
	if *tapeBytesFlag > 0 {
		return TapeBytes(*tapeBytesFlag)
	}
	return lookup(loader, logger, DefaultTapeBytes)
}
