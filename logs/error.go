package logs

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/e5"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// WrapSpan attaches the span in ctx to err so failures can be matched to log records.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span, ok := ctx.Value(SpanKey).(Span)
	if !ok {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}
