// Package tools implements the agent's file-tree and web operations. Every
// tool follows the same contract: validate the input shape, resolve the
// referenced nodes, perform at most one store call inside a named durable
// step, and report the outcome as a plain string the model can read. Domain
// faults (bad ids, wrong node types, empty batches) come back as descriptive
// error strings, never as Go errors, so the model can self-correct.
package tools

import (
	"context"
	"fmt"
	"sync/atomic"

	"polaris/internal/scrape"
	"polaris/internal/store"
	"polaris/internal/workflow"
)

// Deps carries the per-run collaborators a tool closure needs: the store with
// the shared internal key, the project the run operates on, the run's durable
// step handle and the web fetcher.
type Deps struct {
	Store       *store.Store
	InternalKey string
	ProjectID   string
	Step        *workflow.Step
	Scraper     *scrape.Fetcher

	seq atomic.Int64
}

// stepName yields a unique journal name for each tool invocation. The model
// may call the same tool several times in one run; each call must commit its
// own step.
func (d *Deps) stepName(base string) string {
	return fmt.Sprintf("%s-%d", base, d.seq.Add(1))
}

// runStep executes fn as a named durable step when a step handle is present,
// and directly otherwise (tool unit tests run without an engine).
func runStep[T any](ctx context.Context, d *Deps, base string, fn func(ctx context.Context) (T, error)) (T, error) {
	if d.Step == nil {
		return fn(ctx)
	}
	return workflow.Run(ctx, d.Step, d.stepName(base), fn)
}
