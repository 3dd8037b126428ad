// Package conversations holds the message-processing workflow: the durable
// run that turns one user chat message into tool-driven file mutations and a
// final assistant answer.
package conversations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"polaris/internal/events"
	"polaris/internal/llm/client"
	"polaris/internal/llm/tools"
	"polaris/internal/models"
	"polaris/internal/scrape"
	"polaris/internal/store"
	"polaris/internal/workflow"
)

const (
	// FunctionID identifies the message workflow in the engine.
	FunctionID = "process-message"

	// EventMessageSent triggers a run; EventMessageCancel aborts the run
	// whose triggering payload carries the same messageId.
	EventMessageSent   = "message/sent"
	EventMessageCancel = "message/cancel"

	fallbackAnswer = "I processed your request. Let me know if you need anything else!"
	failureAnswer  = "My apologies, I encountered an error while processing your request. Let me know if you need anything else!"

	defaultSyncDelay = time.Second
)

// Options wires a Processor. SyncDelay defaults to one second; tests shrink
// it.
type Options struct {
	Store       *store.Store
	CodingModel *client.LLMClient
	TitleModel  *client.LLMClient
	Scraper     *scrape.Fetcher

	InternalKey   string
	MaxIterations int
	HistoryLimit  int
	SyncDelay     time.Duration
}

// Processor executes one durable message run per "message/sent" event.
type Processor struct {
	store       *store.Store
	coding      *client.LLMClient
	title       *client.LLMClient
	scraper     *scrape.Fetcher
	internalKey string
	maxIter     int
	historyLim  int
	syncDelay   time.Duration
}

func NewProcessor(opts Options) *Processor {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = 20
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = 10
	}
	if opts.SyncDelay <= 0 {
		opts.SyncDelay = defaultSyncDelay
	}
	return &Processor{
		store:       opts.Store,
		coding:      opts.CodingModel,
		title:       opts.TitleModel,
		scraper:     opts.Scraper,
		internalKey: opts.InternalKey,
		maxIter:     opts.MaxIterations,
		historyLim:  opts.HistoryLimit,
		syncDelay:   opts.SyncDelay,
	}
}

// Function returns the workflow definition to register with the engine.
func (p *Processor) Function() *workflow.Function {
	return &workflow.Function{
		ID:      FunctionID,
		Trigger: EventMessageSent,
		CancelOn: []workflow.Cancellation{
			{Event: EventMessageCancel, MatchKey: "messageId"},
		},
		Retries:   3,
		Handler:   p.handle,
		OnFailure: p.onFailure,
	}
}

func (p *Processor) handle(ctx context.Context, input workflow.Input) error {
	messageID := input.Event.StringField("messageId")
	conversationID := input.Event.StringField("conversationId")
	projectID := input.Event.StringField("projectId")
	message := input.Event.StringField("message")
	step := input.Step

	if p.internalKey == "" {
		return workflow.NonRetriable(errors.New("internal key is not configured"))
	}
	if messageID == "" || conversationID == "" || projectID == "" {
		return workflow.NonRetriable(fmt.Errorf("event %s is missing required fields", input.Event.Name))
	}

	ctx = events.ContextWithSession(ctx, messageID)
	events.Emit(ctx, events.LLMEventTool, events.NewInfo("processing message"))

	// The triggering write may still be in flight right after send.
	if err := step.Sleep(ctx, "wait-for-db-sync", p.syncDelay); err != nil {
		return err
	}

	conversation, err := workflow.Run(ctx, step, "get-conversation", func(ctx context.Context) (*models.Conversation, error) {
		return p.store.GetConversationByID(p.internalKey, conversationID)
	})
	if err != nil {
		return err
	}
	if conversation == nil {
		return workflow.NonRetriable(errors.New("conversation not found"))
	}

	recent, err := workflow.Run(ctx, step, "get-recent-messages", func(ctx context.Context) ([]models.Message, error) {
		return p.store.GetRecentMessages(p.internalKey, conversationID, p.historyLim)
	})
	if err != nil {
		return err
	}

	systemPrompt := buildSystemPrompt(recent, messageID)

	if conversation.Title == models.DefaultConversationTitle && p.title != nil {
		if err := p.generateTitle(ctx, step, conversationID, message); err != nil {
			return err
		}
	}

	answer, err := p.runAgent(ctx, step, projectID, systemPrompt, message)
	if err != nil {
		return err
	}

	_, err = workflow.Run(ctx, step, "update-assistant-message", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, p.store.UpdateMessageContent(p.internalKey, messageID, answer, models.MessageStatusCompleted)
	})
	return err
}

// generateTitle replaces the default conversation title with a model-written
// one. An empty generation is silently ignored; the default title stands.
func (p *Processor) generateTitle(ctx context.Context, step *workflow.Step, conversationID, message string) error {
	title, err := workflow.Run(ctx, step, "generate-title", func(ctx context.Context) (string, error) {
		out, err := p.title.Generate(ctx, []*schema.Message{
			schema.SystemMessage(titleGeneratorSystemPrompt),
			schema.UserMessage(message),
		})
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(out.Content), nil
	})
	if err != nil {
		return err
	}
	if title == "" {
		return nil
	}

	_, err = workflow.Run(ctx, step, "update-conversation-title", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, p.store.UpdateConversationTitle(p.internalKey, conversationID, title)
	})
	return err
}

// runAgent drives the model/tool loop until the router stops it, then
// returns the answer to persist.
func (p *Processor) runAgent(ctx context.Context, step *workflow.Step, projectID, systemPrompt, message string) (string, error) {
	deps := &tools.Deps{
		Store:       p.store,
		InternalKey: p.internalKey,
		ProjectID:   projectID,
		Step:        step,
		Scraper:     p.scraper,
	}
	catalogue, err := tools.Catalogue(deps)
	if err != nil {
		return "", workflow.NonRetriable(err)
	}
	infos, err := tools.Infos(ctx, catalogue)
	if err != nil {
		return "", workflow.NonRetriable(err)
	}
	bound, err := p.coding.WithTools(infos)
	if err != nil {
		return "", workflow.NonRetriable(err)
	}

	msgs := []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(message),
	}
	var turns []*schema.Message

	for Decide(turns, p.maxIter) == Continue {
		out, err := workflow.Run(ctx, step, fmt.Sprintf("model-call-%d", len(turns)+1), func(ctx context.Context) (*schema.Message, error) {
			return bound.Generate(ctx, msgs)
		})
		if err != nil {
			return "", err
		}
		turns = append(turns, out)
		msgs = append(msgs, out)

		for _, call := range out.ToolCalls {
			result, err := p.dispatch(ctx, catalogue, call)
			if err != nil {
				return "", err
			}
			msgs = append(msgs, &schema.Message{
				Role:       schema.Tool,
				Content:    result,
				ToolCallID: call.ID,
				ToolName:   call.Function.Name,
			})
		}
	}

	return FinalAnswer(turns, fallbackAnswer), nil
}

// dispatch runs one tool call. Unknown tools and tool infrastructure errors
// come back as strings the model can react to; only cancellation stops the
// run.
func (p *Processor) dispatch(ctx context.Context, catalogue map[string]tool.InvokableTool, call schema.ToolCall) (string, error) {
	t, ok := catalogue[call.Function.Name]
	if !ok {
		return fmt.Sprintf("Error: unknown tool %q. Use only the provided tools.", call.Function.Name), nil
	}
	result, err := t.InvokableRun(ctx, call.Function.Arguments)
	if err != nil {
		if errors.Is(err, workflow.ErrCanceled) {
			return "", err
		}
		return fmt.Sprintf("Error: %v", err), nil
	}
	return result, nil
}

// onFailure writes the apology to the assistant placeholder after retries are
// exhausted, so no message is ever left in processing.
func (p *Processor) onFailure(ctx context.Context, input workflow.Input, runErr error) {
	if p.internalKey == "" {
		return
	}
	messageID := input.Event.StringField("messageId")
	if messageID == "" {
		return
	}

	ctx = events.ContextWithSession(ctx, messageID)
	events.Emit(ctx, events.LLMEventTool, events.NewError(fmt.Sprintf("run failed: %v", runErr)))

	_, _ = workflow.Run(ctx, input.Step, "update-message-on-failure", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, p.store.UpdateMessageContent(p.internalKey, messageID, failureAnswer, models.MessageStatusFailed)
	})
}
