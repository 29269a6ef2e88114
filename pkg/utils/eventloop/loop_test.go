package eventloop_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/vantage/pkg/utils/eventloop"
)

func TestLoop_FIFO(t *testing.T) {
	loop := eventloop.New()
	var order []int

	for i := 0; i < 5; i++ {
		loop.Post("append", func(ctx context.Context) error {
			order = append(order, i)
			return nil
		})
	}
	gt.Number(t, loop.Pending()).Equal(5)

	n := loop.Drain(context.Background())
	gt.Number(t, n).Equal(5)
	gt.Array(t, order).Equal([]int{0, 1, 2, 3, 4})
}

func TestLoop_NestedPostRunsAfterCurrentTask(t *testing.T) {
	loop := eventloop.New()
	var trace []string

	loop.Post("outer", func(ctx context.Context) error {
		trace = append(trace, "outer:start")
		loop.Post("inner", func(ctx context.Context) error {
			trace = append(trace, "inner")
			return nil
		})
		trace = append(trace, "outer:end")
		return nil
	})

	loop.Drain(context.Background())
	gt.Array(t, trace).Equal([]string{"outer:start", "outer:end", "inner"})
}

func TestLoop_ErrorsAndPanicsDoNotStopTheLoop(t *testing.T) {
	loop := eventloop.New()
	ran := false

	loop.Post("failing", func(ctx context.Context) error {
		return goerr.New("legacy store unavailable")
	})
	loop.Post("panicking", func(ctx context.Context) error {
		panic("boom")
	})
	loop.Post("healthy", func(ctx context.Context) error {
		ran = true
		return nil
	})

	gt.Number(t, loop.Drain(context.Background())).Equal(3)
	gt.Bool(t, ran).True()
}

func TestLoop_Run(t *testing.T) {
	loop := eventloop.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- loop.Run(ctx) }()

	var wg sync.WaitGroup
	wg.Add(3)
	for i := 0; i < 3; i++ {
		loop.Defer(ctx, "done", func(ctx context.Context) error {
			wg.Done()
			return nil
		})
	}

	waitCh := make(chan struct{})
	go func() { wg.Wait(); close(waitCh) }()
	select {
	case <-waitCh:
	case <-time.After(time.Second):
		t.Fatal("tasks were not executed")
	}

	cancel()
	select {
	case err := <-errCh:
		gt.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestLoop_RunTwice(t *testing.T) {
	loop := eventloop.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan struct{})
	loop.Post("signal", func(ctx context.Context) error {
		close(started)
		return nil
	})
	go func() { _ = loop.Run(ctx) }()
	<-started

	gt.Error(t, loop.Run(ctx)).Is(eventloop.ErrAlreadyRunning)
}
