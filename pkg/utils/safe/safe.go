package safe

import (
	"context"
	"io"

	"github.com/secmon-lab/vantage/pkg/utils/errutil"
	"github.com/secmon-lab/vantage/pkg/utils/logging"
)

// Close safely closes an io.Closer and logs any errors.
// It handles nil closers gracefully.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Error("Failed to close", logging.ErrAttr(err))
	}
}

// Call runs fn and turns both its error and any panic into a logged and
// reported error. It returns false if fn did not complete successfully.
func Call(ctx context.Context, name string, fn func(ctx context.Context) error) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			_ = errutil.Recovered(ctx, r, "panic in "+name)
			ok = false
		}
	}()

	if err := fn(ctx); err != nil {
		_ = errutil.Handle(ctx, err, name+" failed")
		return false
	}
	return true
}
