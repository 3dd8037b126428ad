package suggest_test

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"polaris/internal/suggest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_SlidingWindow(t *testing.T) {
	base := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	now := base
	l := suggest.NewLimiter(6, time.Minute)
	l.SetClock(func() time.Time { return now })

	// Six requests inside ten seconds.
	for i := 0; i < 6; i++ {
		now = base.Add(time.Duration(i*2) * time.Second)
		require.True(t, l.Allow(), "request %d should pass", i+1)
		l.Record()
	}

	// A seventh inside the same window is refused.
	now = base.Add(10 * time.Second)
	assert.False(t, l.Allow())

	// Still refused just before the first timestamp leaves the window.
	now = base.Add(59 * time.Second)
	assert.False(t, l.Allow())

	// Once the window slides past the sixth request, capacity returns.
	now = base.Add(10*time.Second + 61*time.Second)
	assert.True(t, l.Allow())
}

func TestSession_DebounceCollapsesEdits(t *testing.T) {
	var calls atomic.Int32
	var lastCode atomic.Value
	fetch := func(ctx context.Context, snap *suggest.Snapshot) (string, error) {
		calls.Add(1)
		lastCode.Store(snap.Code)
		return "completion", nil
	}

	s := suggest.NewSession("main.go", suggest.NewLimiter(6, time.Minute), 30*time.Millisecond, fetch)
	defer s.Close()

	s.SetDocument("package m", 9)
	s.SetDocument("package ma", 10)
	s.SetDocument("package main", 12)

	require.Eventually(t, func() bool {
		_, ok := s.Suggestion()
		return ok
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, int32(1), calls.Load(), "only the last edit in the window fires")
	assert.Equal(t, "package main", lastCode.Load())
}

func TestSession_NewEditSupersedesInFlightRequest(t *testing.T) {
	release := make(chan struct{})
	fetch := func(ctx context.Context, snap *suggest.Snapshot) (string, error) {
		if strings.Contains(snap.Code, "slow") {
			<-release
			return "stale completion", nil
		}
		return "fresh completion", nil
	}

	s := suggest.NewSession("main.go", suggest.NewLimiter(6, time.Minute), 5*time.Millisecond, fetch)
	defer s.Close()

	s.SetDocument("slow document", 4)
	time.Sleep(30 * time.Millisecond) // let the slow request get in flight

	s.SetDocument("fast document", 4)
	require.Eventually(t, func() bool {
		got, ok := s.Suggestion()
		return ok && got == "fresh completion"
	}, time.Second, 5*time.Millisecond)

	// The stale result resolves after the fact and must be discarded.
	close(release)
	time.Sleep(30 * time.Millisecond)
	got, ok := s.Suggestion()
	require.True(t, ok)
	assert.Equal(t, "fresh completion", got)
}

func TestSession_RateLimitRefusalClearsSuggestion(t *testing.T) {
	var calls atomic.Int32
	fetch := func(ctx context.Context, snap *suggest.Snapshot) (string, error) {
		calls.Add(1)
		return "completion", nil
	}

	s := suggest.NewSession("main.go", suggest.NewLimiter(1, time.Minute), 5*time.Millisecond, fetch)
	defer s.Close()

	s.SetDocument("package main", 12)
	require.Eventually(t, func() bool {
		_, ok := s.Suggestion()
		return ok
	}, time.Second, 5*time.Millisecond)

	// The window is full now; the next edit is refused locally and drops
	// the displayed suggestion.
	s.SetDocument("package main\n", 13)
	time.Sleep(30 * time.Millisecond)

	_, ok := s.Suggestion()
	assert.False(t, ok)
	assert.Equal(t, int32(1), calls.Load(), "the refused attempt never reached the fetcher")
}

func TestSession_ApplyInsertsAndAdvancesAtomically(t *testing.T) {
	fetch := func(ctx context.Context, snap *suggest.Snapshot) (string, error) {
		return "world", nil
	}
	s := suggest.NewSession("greeting.txt", suggest.NewLimiter(6, time.Minute), time.Millisecond, fetch)
	defer s.Close()

	s.SetDocument("hello ", 6)
	require.Eventually(t, func() bool {
		_, ok := s.Suggestion()
		return ok
	}, time.Second, 5*time.Millisecond)

	doc, cursor, ok := s.Apply()
	require.True(t, ok)
	assert.Equal(t, "hello world", doc)
	assert.Equal(t, 11, cursor)

	// The suggestion is consumed; a second apply is a no-op.
	_, _, ok = s.Apply()
	assert.False(t, ok)
}

func TestBuildSnapshot_BoundedContext(t *testing.T) {
	lines := make([]string, 0, 15)
	for _, r := range "abcdefghijklmno" {
		lines = append(lines, strings.Repeat(string(r), 3))
	}
	code := strings.Join(lines, "\n")

	// Cursor inside line 8 ("hhh"), one byte in.
	cursor := strings.Index(code, "hhh") + 1
	snap, ok := suggest.BuildSnapshot("big.txt", code, cursor)
	require.True(t, ok)

	assert.Equal(t, 8, snap.LineNumber)
	assert.Equal(t, "hhh", snap.CurrentLine)
	assert.Equal(t, "h", snap.TextBeforeCursor)
	assert.Equal(t, "hh", snap.TextAfterCursor)
	assert.Equal(t, "ccc\nddd\neee\nfff\nggg", snap.PreviousLines)
	assert.Equal(t, "iii\njjj\nkkk\nlll\nmmm", snap.NextLines)
}

func TestBuildSnapshot_TopOfFile(t *testing.T) {
	snap, ok := suggest.BuildSnapshot("a.txt", "first\nsecond", 2)
	require.True(t, ok)
	assert.Equal(t, 1, snap.LineNumber)
	assert.Empty(t, snap.PreviousLines)
	assert.Equal(t, "fi", snap.TextBeforeCursor)
	assert.Equal(t, "rst", snap.TextAfterCursor)
	assert.Equal(t, "second", snap.NextLines)
}

func TestBuildSnapshot_EmptyDocument(t *testing.T) {
	_, ok := suggest.BuildSnapshot("a.txt", "   \n  ", 0)
	assert.False(t, ok)
}
