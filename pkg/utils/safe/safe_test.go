package safe_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/vantage/pkg/utils/logging"
	"github.com/secmon-lab/vantage/pkg/utils/safe"
)

type failingCloser struct{}

func (failingCloser) Close() error { return errors.New("close failed") }

func testContext() (context.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	return logging.With(context.Background(), slog.New(slog.NewTextHandler(&buf, nil))), &buf
}

func TestClose(t *testing.T) {
	ctx, buf := testContext()

	safe.Close(ctx, nil)
	gt.Number(t, buf.Len()).Equal(0)

	safe.Close(ctx, failingCloser{})
	gt.String(t, buf.String()).Contains("close failed")
}

func TestCall(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctx, _ := testContext()
		ok := safe.Call(ctx, "task", func(ctx context.Context) error { return nil })
		gt.Bool(t, ok).True()
	})

	t.Run("error is logged", func(t *testing.T) {
		ctx, buf := testContext()
		ok := safe.Call(ctx, "bridge write", func(ctx context.Context) error {
			return goerr.New("store unavailable")
		})
		gt.Bool(t, ok).False()
		gt.String(t, buf.String()).Contains("bridge write failed")
	})

	t.Run("panic is recovered", func(t *testing.T) {
		ctx, buf := testContext()
		ok := safe.Call(ctx, "reducer", func(ctx context.Context) error {
			panic("unrecognized action")
		})
		gt.Bool(t, ok).False()
		gt.String(t, buf.String()).Contains("panic in reducer")
	})
}
