// Package workflow is a small in-process durable execution engine: named
// memoized steps, sleeps, event-triggered functions, run cancellation matched
// against event payloads, bounded retries and a dedicated failure handler.
// It implements the collaborator contract the message workflow depends on.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Cancellation cancels an in-flight run when an event named Event arrives
// whose payload matches the run's triggering payload at MatchKey.
type Cancellation struct {
	Event    string
	MatchKey string
}

// Input is handed to function handlers.
type Input struct {
	Event Event
	Step  *Step
}

// Function is a durable workflow definition.
type Function struct {
	ID       string
	Trigger  string
	CancelOn []Cancellation
	// Retries is the number of additional handler invocations after the
	// first failing one. Journaled steps are not re-executed on retry.
	Retries int
	Handler func(ctx context.Context, input Input) error
	// OnFailure runs once after retries are exhausted or a non-retriable
	// error surfaced. It is not invoked for canceled runs.
	OnFailure func(ctx context.Context, input Input, runErr error)
}

type run struct {
	id    string
	fn    *Function
	event Event

	mu       sync.Mutex
	journal  map[string]any
	canceled bool
	cancelCh chan struct{}
}

func (r *run) lookup(name string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.journal[name]
	return v, ok
}

func (r *run) commit(name string, v any) {
	r.mu.Lock()
	r.journal[name] = v
	r.mu.Unlock()
}

func (r *run) cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.canceled {
		return
	}
	r.canceled = true
	close(r.cancelCh)
}

func (r *run) isCanceled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.canceled
}

// Engine dispatches events to registered functions. Runs of distinct events
// execute concurrently; steps within a run are sequential.
type Engine struct {
	mu         sync.Mutex
	fns        []*Function
	active     map[string]*run
	wg         sync.WaitGroup
	retryDelay time.Duration
}

func NewEngine() *Engine {
	return &Engine{
		active:     make(map[string]*run),
		retryDelay: time.Second,
	}
}

// SetRetryDelay overrides the pause between handler attempts.
func (e *Engine) SetRetryDelay(d time.Duration) {
	e.mu.Lock()
	e.retryDelay = d
	e.mu.Unlock()
}

func (e *Engine) Register(fn *Function) error {
	if fn == nil || fn.ID == "" {
		return fmt.Errorf("function id is required")
	}
	if fn.Trigger == "" {
		return fmt.Errorf("function %q has no trigger event", fn.ID)
	}
	if fn.Handler == nil {
		return fmt.Errorf("function %q has no handler", fn.ID)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, existing := range e.fns {
		if existing.ID == fn.ID {
			return fmt.Errorf("function %q already registered", fn.ID)
		}
	}
	e.fns = append(e.fns, fn)
	return nil
}

// Send delivers an event: it starts a run for every function triggered by it
// and cancels active runs whose CancelOn configuration matches it. Returns
// the event id.
func (e *Engine) Send(ctx context.Context, evt Event) string {
	if evt.ID == "" {
		evt.ID = uuid.NewString()
	}

	e.mu.Lock()
	var started []*run
	for _, fn := range e.fns {
		if fn.Trigger != evt.Name {
			continue
		}
		r := &run{
			id:       uuid.NewString(),
			fn:       fn,
			event:    evt,
			journal:  make(map[string]any),
			cancelCh: make(chan struct{}),
		}
		e.active[r.id] = r
		started = append(started, r)
	}
	for _, r := range e.active {
		for _, c := range r.fn.CancelOn {
			if c.Event != evt.Name {
				continue
			}
			match := evt.StringField(c.MatchKey)
			if match != "" && match == r.event.StringField(c.MatchKey) {
				r.cancel()
			}
		}
	}
	e.mu.Unlock()

	for _, r := range started {
		e.wg.Add(1)
		go func(r *run) {
			defer e.wg.Done()
			e.execute(context.WithoutCancel(ctx), r)
			e.mu.Lock()
			delete(e.active, r.id)
			e.mu.Unlock()
		}(r)
	}
	return evt.ID
}

func (e *Engine) execute(ctx context.Context, r *run) {
	input := Input{Event: r.event, Step: &Step{run: r}}

	var err error
	for attempt := 0; ; attempt++ {
		err = r.fn.Handler(ctx, input)
		if err == nil || errors.Is(err, ErrCanceled) || r.isCanceled() {
			return
		}
		var nonRetriable *NonRetriableError
		if errors.As(err, &nonRetriable) {
			break
		}
		if attempt >= r.fn.Retries {
			break
		}

		e.mu.Lock()
		delay := e.retryDelay
		e.mu.Unlock()
		select {
		case <-time.After(delay):
		case <-r.cancelCh:
			return
		}
	}

	if r.fn.OnFailure != nil {
		r.fn.OnFailure(ctx, input, err)
	}
}

// Wait blocks until all in-flight runs have finished. Intended for shutdown
// and tests.
func (e *Engine) Wait() {
	e.wg.Wait()
}
