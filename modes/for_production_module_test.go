package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModuleForProduction(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		mode Mode,
	) {
		if mode != ModeProduction {
			t.Fatal()
		}
		if mode.String() != "production" {
			t.Fatalf("got %v", mode)
		}
	})
}
