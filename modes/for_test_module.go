package modes

import "github.com/reusee/dscope"

// ModuleForTest is added to scopes built in tests. Loggers built under it
// record source positions.
type ModuleForTest struct {
	dscope.Module
}

func ForTest() ModuleForTest {
	return ModuleForTest{}
}

func (ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
