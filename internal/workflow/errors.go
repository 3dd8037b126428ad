package workflow

import "errors"

// ErrCanceled is returned from step boundaries once a run has received a
// matching cancellation event. In-flight step bodies are not interrupted;
// their results are discarded when the next boundary observes this error.
var ErrCanceled = errors.New("workflow: run canceled")

// NonRetriableError marks a handler error that must not be retried, e.g. a
// configuration or data-integrity fault.
type NonRetriableError struct {
	Err error
}

func (e *NonRetriableError) Error() string {
	if e.Err == nil {
		return "non-retriable error"
	}
	return e.Err.Error()
}

func (e *NonRetriableError) Unwrap() error { return e.Err }

// NonRetriable wraps err so the engine fails the run without further
// attempts.
func NonRetriable(err error) error {
	if err == nil {
		return nil
	}
	return &NonRetriableError{Err: err}
}
