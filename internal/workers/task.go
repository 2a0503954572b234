// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
)

// ErrTaskStarted is returned when Start is called twice on one Task.
var ErrTaskStarted = errors.New("task already started")

// Task runs one function on a dedicated goroutine and lets another goroutine
// cancel it and collect its result. Cancelling only cancels the context; the
// function is expected to close whatever it blocks on when that happens.
type Task struct {
	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
	err     error
}

func NewTask() *Task {
	return &Task{done: make(chan struct{})}
}

// Start launches fn with a context derived from ctx.
func (t *Task) Start(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return ErrTaskStarted
	}
	t.started = true

	ctx, t.cancel = context.WithCancel(ctx)
	go func() {
		defer close(t.done)
		defer t.cancel()

		err := fn(ctx)

		t.mu.Lock()
		t.err = err
		t.mu.Unlock()
	}()
	return nil
}

// Cancel asks the task to stop. It is safe to call at any time.
func (t *Task) Cancel() {
	t.mu.Lock()
	cancel := t.cancel
	t.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Done is closed when the function returned.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Err is the function's result; nil while it is still running.
func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Wait blocks until the task finishes and returns its result. A task that
// was never started returns nil at once.
func (t *Task) Wait() error {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()
	if !started {
		return nil
	}
	<-t.done
	return t.Err()
}
