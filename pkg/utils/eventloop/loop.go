// Package eventloop provides a single-threaded task queue.
//
// Tasks run one at a time, in the order they were posted, each to
// completion. A task posted from inside a running task is queued behind it
// and never runs on the poster's stack.
package eventloop

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vantage/pkg/utils/logging"
	"github.com/secmon-lab/vantage/pkg/utils/safe"
)

// ErrAlreadyRunning is returned by Run when the loop is already running
var ErrAlreadyRunning = goerr.New("event loop is already running")

// Task is a unit of work executed on the loop goroutine
type Task func(ctx context.Context) error

type entry struct {
	name string
	task Task
}

// Loop is an unbounded FIFO of tasks drained by a single goroutine.
type Loop struct {
	mu      sync.Mutex
	queue   []entry
	wake    chan struct{}
	running bool
}

// New creates a Loop. Call Run to start draining it.
func New() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
	}
}

// Post appends a task to the queue. It never blocks and is safe to call
// from inside a running task.
func (l *Loop) Post(name string, task Task) {
	l.mu.Lock()
	l.queue = append(l.queue, entry{name: name, task: task})
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Defer schedules task for a later tick of the loop
func (l *Loop) Defer(ctx context.Context, name string, task func(ctx context.Context) error) {
	l.Post(name, task)
}

// Pending returns the number of queued tasks
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Run drains the queue until ctx is done. Tasks still queued at that point
// are dropped.
func (l *Loop) Run(ctx context.Context) error {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return ErrAlreadyRunning
	}
	l.running = true
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.running = false
		dropped := len(l.queue)
		l.queue = nil
		l.mu.Unlock()

		if dropped > 0 {
			logging.From(ctx).Warn("event loop stopped with pending tasks", "dropped", dropped)
		}
	}()

	for {
		if l.RunOnce(ctx) {
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case <-l.wake:
		}
	}
}

// RunOnce executes the next queued task, if any, on the caller's goroutine.
// It reports whether a task was executed.
func (l *Loop) RunOnce(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}

	l.mu.Lock()
	if len(l.queue) == 0 {
		l.mu.Unlock()
		return false
	}
	next := l.queue[0]
	l.queue[0] = entry{}
	l.queue = l.queue[1:]
	l.mu.Unlock()

	safe.Call(ctx, next.name, next.task)
	return true
}

// Drain runs queued tasks on the caller's goroutine until the queue is
// empty, including tasks posted while draining.
func (l *Loop) Drain(ctx context.Context) int {
	n := 0
	for l.RunOnce(ctx) {
		n++
	}
	return n
}
