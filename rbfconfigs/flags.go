package rbfconfigs

import (
	"errors"
	"fmt"

	"github.com/reusee/rbf/cmds"
)

var ErrInvalidFlag = errors.New("invalid flag value")

// positiveFlag defines name taking a positive int; name. resets it to zero, meaning unset.
func positiveFlag(name string, desc string) *int {
	var value int
	cmds.Define(name, cmds.Func(func(v int) error {
		if v <= 0 {
			return fmt.Errorf("%w: %s %d, must be positive", ErrInvalidFlag, name, v)
		}
		value = v
		return nil
	}).Desc(desc))
	cmds.Define(name+".", cmds.Func(func() {
		value = 0
	}))
	return &value
}
