package rbfconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/rbf/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
