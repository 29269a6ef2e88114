package interfaces

import "context"

// Scheduler runs tasks on a later tick of the event loop, after the task
// that scheduled them has returned
type Scheduler interface {
	Defer(ctx context.Context, name string, task func(ctx context.Context) error)
}
