package workflow

import (
	"context"
	"fmt"
	"time"
)

// Step is the durable-step handle passed to a function handler. Each named
// step's result is committed to the run journal before the next step starts,
// so a handler retry re-enters mid-run: committed steps replay their stored
// result instead of executing again.
//
// Step boundaries are also the run's suspension points: cancellation takes
// effect here and only here.
type Step struct {
	run *run
}

// Run executes fn once per run under the given name. Replays return the
// committed result. The zero value and ErrCanceled are returned without
// executing fn when the run has been canceled.
func Run[T any](ctx context.Context, s *Step, name string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if s == nil || s.run == nil {
		return zero, fmt.Errorf("step handle is not attached to a run")
	}
	if s.run.isCanceled() {
		return zero, ErrCanceled
	}
	if cached, ok := s.run.lookup(name); ok {
		typed, ok := cached.(T)
		if !ok {
			return zero, fmt.Errorf("step %q replayed with mismatched type", name)
		}
		return typed, nil
	}

	out, err := fn(ctx)
	if err != nil {
		return zero, err
	}
	// A result produced while cancellation arrived is discarded, not
	// committed: the boundary check wins.
	if s.run.isCanceled() {
		return zero, ErrCanceled
	}
	s.run.commit(name, out)
	return out, nil
}

// Sleep pauses the run for d. The completed sleep is journaled so handler
// retries do not wait again. A cancellation delivered mid-sleep wakes the
// run immediately with ErrCanceled.
func (s *Step) Sleep(ctx context.Context, name string, d time.Duration) error {
	if s == nil || s.run == nil {
		return fmt.Errorf("step handle is not attached to a run")
	}
	if s.run.isCanceled() {
		return ErrCanceled
	}
	if _, ok := s.run.lookup(name); ok {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-s.run.cancelCh:
		return ErrCanceled
	case <-ctx.Done():
		return ctx.Err()
	}
	s.run.commit(name, struct{}{})
	return nil
}
