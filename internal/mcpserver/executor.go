package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"marios/internal/wm"
)

// ErrLoopStopped is returned when work is submitted to a loop that is no
// longer running.
var ErrLoopStopped = errors.New("window manager loop stopped")

// Executor runs a function against the window manager on the goroutine that
// owns it. Implementations must run submitted functions one at a time.
type Executor interface {
	Do(ctx context.Context, fn func(m *wm.Manager) error) error
}

type job struct {
	fn     func(m *wm.Manager) error
	result chan error
}

// Loop is an Executor that owns a Manager on a dedicated goroutine. It is
// used when no terminal UI is running.
type Loop struct {
	m    *wm.Manager
	jobs chan job
	done chan struct{}
}

// NewLoop creates a loop for m. Call Run to start processing work.
func NewLoop(m *wm.Manager) *Loop {
	return &Loop{
		m:    m,
		jobs: make(chan job),
		done: make(chan struct{}),
	}
}

// Run processes submitted work until ctx is done.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-l.jobs:
			j.result <- l.run(j.fn)
		}
	}
}

func (l *Loop) run(fn func(m *wm.Manager) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("window manager operation panicked: %v", r)
		}
	}()
	return fn(l.m)
}

// Do implements Executor.
func (l *Loop) Do(ctx context.Context, fn func(m *wm.Manager) error) error {
	j := job{fn: fn, result: make(chan error, 1)}
	select {
	case l.jobs <- j:
	case <-l.done:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-j.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
