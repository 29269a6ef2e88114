package async

import (
	"context"

	"github.com/secmon-lab/vantage/pkg/utils/logging"
	"github.com/secmon-lab/vantage/pkg/utils/safe"
)

// DispatchUntil runs handler in a new goroutine with a context derived from
// ctx and tagged with name in its logger. The handler's context is cancelled
// when ctx is done or when the returned function is called. Errors and
// panics are logged.
func DispatchUntil(ctx context.Context, name string, handler func(ctx context.Context) error) context.CancelFunc {
	runCtx, cancel := context.WithCancel(ctx)
	runCtx = logging.With(runCtx, logging.From(ctx).With("task", name))

	go func() {
		defer cancel()
		safe.Call(runCtx, name, handler)
	}()
	return cancel
}
