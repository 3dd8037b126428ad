package conversations

import (
	"github.com/cloudwego/eino/schema"
)

// Decision is the router's verdict after a model turn.
type Decision int

const (
	// Continue issues another model turn.
	Continue Decision = iota
	// Stop ends the agent loop.
	Stop
)

// Decide inspects the run's prior model turns and returns whether the agent
// loop should keep going. No prior turn means the first turn still has to be
// issued. A last turn carrying tool calls means their results must be fed
// back. A text-only last turn is a final answer. The iteration ceiling wins
// over everything else so a model stuck on a failing tool cannot loop
// forever.
func Decide(turns []*schema.Message, maxIterations int) Decision {
	if maxIterations > 0 && len(turns) >= maxIterations {
		return Stop
	}
	if len(turns) == 0 {
		return Continue
	}
	last := turns[len(turns)-1]
	if last != nil && len(last.ToolCalls) > 0 {
		return Continue
	}
	return Stop
}

// FinalAnswer picks the answer to persist: the most recent turn with textual
// content, or the fallback when the run never produced text.
func FinalAnswer(turns []*schema.Message, fallback string) string {
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i] != nil && turns[i].Content != "" {
			return turns[i].Content
		}
	}
	return fallback
}
