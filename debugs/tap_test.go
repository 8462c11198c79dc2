package debugs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/rbf/logs"
	"github.com/reusee/rbf/modes"
)

func TestTap(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(),
	).Fork(
		func() logs.Writer {
			return buf
		},
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"steps": 42,
		})
	})
	if !strings.Contains(buf.String(), "tap: test") {
		t.Fatalf("got %v", buf.String())
	}
}
