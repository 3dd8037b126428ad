package suggest

import (
	"context"
	"sync"
	"time"
)

// FetchFunc requests one completion for a snapshot. It must honor ctx;
// superseded requests are canceled through it.
type FetchFunc func(ctx context.Context, snap *Snapshot) (string, error)

// Session owns the suggestion state of one open editor: document, cursor,
// the debounce timer, the single in-flight request and the displayed
// suggestion. At most one request is in flight at a time; a newer edit
// supersedes it.
type Session struct {
	mu       sync.Mutex
	fileName string
	doc      string
	cursor   int

	limiter  *Limiter
	debounce time.Duration
	fetch    FetchFunc

	timer   *time.Timer
	cancel  context.CancelFunc
	gen     int
	waiting bool

	suggestion string
}

func NewSession(fileName string, limiter *Limiter, debounce time.Duration, fetch FetchFunc) *Session {
	return &Session{
		fileName: fileName,
		limiter:  limiter,
		debounce: debounce,
		fetch:    fetch,
	}
}

// SetDocument records an edit and restarts the debounce cycle. Any pending
// timer and in-flight request are superseded.
func (s *Session) SetDocument(doc string, cursor int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = doc
	s.cursor = cursor

	if s.timer != nil {
		s.timer.Stop()
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++

	// A refused attempt never reaches the network and drops whatever
	// suggestion is currently shown.
	if !s.limiter.Allow() {
		s.waiting = false
		s.suggestion = ""
		return
	}

	s.waiting = true
	gen := s.gen
	s.timer = time.AfterFunc(s.debounce, func() { s.fire(gen) })
}

func (s *Session) fire(gen int) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	// The window may have filled while the debounce timer ran.
	if !s.limiter.Allow() {
		s.waiting = false
		s.suggestion = ""
		s.mu.Unlock()
		return
	}
	snap, ok := BuildSnapshot(s.fileName, s.doc, s.cursor)
	if !ok {
		s.waiting = false
		s.suggestion = ""
		s.mu.Unlock()
		return
	}

	s.limiter.Record()
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	result, err := s.fetch(ctx, snap)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || ctx.Err() != nil {
		// Superseded; the result belongs to a stale document state.
		return
	}
	s.waiting = false
	s.cancel = nil
	if err != nil {
		s.suggestion = ""
		return
	}
	s.suggestion = result
}

// Suggestion returns the completion to display. Nothing is shown while a
// request is pending, so a stale suggestion never flickers over fresh input.
func (s *Session) Suggestion() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.waiting || s.suggestion == "" {
		return "", false
	}
	return s.suggestion, true
}

// Apply inserts the current suggestion at the cursor, advances the cursor
// past it and clears the suggestion, all in one critical section. Returns
// the new document state, or ok=false when there was nothing to apply.
func (s *Session) Apply() (doc string, cursor int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.waiting || s.suggestion == "" {
		return s.doc, s.cursor, false
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor > len(s.doc) {
		s.cursor = len(s.doc)
	}
	s.doc = s.doc[:s.cursor] + s.suggestion + s.doc[s.cursor:]
	s.cursor += len(s.suggestion)
	s.suggestion = ""
	return s.doc, s.cursor, true
}

// Document returns the session's current document and cursor.
func (s *Session) Document() (string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc, s.cursor
}

// Close cancels any pending timer and in-flight request.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	s.waiting = false
}
