package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"
)

// ModelOptions are the generation parameters the workflow controls: the title
// request runs cold and short, the coding agent warmer and longer.
type ModelOptions struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// LLMClient wraps a tool-calling chat model behind a provider-neutral
// surface.
type LLMClient struct {
	chatModel model.ToolCallingChatModel
}

func NewGeminiClient(ctx context.Context, apiKey string, opts ModelOptions) (*LLMClient, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	temp := opts.Temperature
	maxTokens := defaultMaxTokens(opts.MaxTokens)
	cm, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      gc,
		Model:       opts.Model,
		Temperature: &temp,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini chat model: %w", err)
	}
	return &LLMClient{chatModel: cm}, nil
}

func NewClaudeClient(ctx context.Context, apiKey string, opts ModelOptions) (*LLMClient, error) {
	temp := opts.Temperature
	cm, err := claude.NewChatModel(ctx, &claude.Config{
		APIKey:      apiKey,
		Model:       opts.Model,
		MaxTokens:   defaultMaxTokens(opts.MaxTokens),
		Temperature: &temp,
	})
	if err != nil {
		return nil, fmt.Errorf("create claude chat model: %w", err)
	}
	return &LLMClient{chatModel: cm}, nil
}

func NewOpenAIClient(ctx context.Context, apiKey string, opts ModelOptions) (*LLMClient, error) {
	temp := opts.Temperature
	maxTokens := defaultMaxTokens(opts.MaxTokens)
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      apiKey,
		Model:       opts.Model,
		Temperature: &temp,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("create openai chat model: %w", err)
	}
	return &LLMClient{chatModel: cm}, nil
}

// NewClient builds a client for the configured provider.
func NewClient(ctx context.Context, provider, apiKey string, opts ModelOptions) (*LLMClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("API key for %s is not configured", provider)
	}
	switch strings.TrimSpace(provider) {
	case "gemini":
		return NewGeminiClient(ctx, apiKey, opts)
	case "anthropic":
		return NewClaudeClient(ctx, apiKey, opts)
	case "openai":
		return NewOpenAIClient(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

// FromChatModel wraps an existing chat model; tests use this with scripted
// models.
func FromChatModel(cm model.ToolCallingChatModel) *LLMClient {
	return &LLMClient{chatModel: cm}
}

// WithTools returns a client whose model has the tool catalogue bound.
func (c *LLMClient) WithTools(infos []*schema.ToolInfo) (*LLMClient, error) {
	if len(infos) == 0 {
		return c, nil
	}
	bound, err := c.chatModel.WithTools(infos)
	if err != nil {
		return nil, fmt.Errorf("bind tools: %w", err)
	}
	return &LLMClient{chatModel: bound}, nil
}

// Generate issues one model turn over the message history.
func (c *LLMClient) Generate(ctx context.Context, msgs []*schema.Message) (*schema.Message, error) {
	out, err := c.chatModel.Generate(ctx, msgs)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("model returned no message")
	}
	return out, nil
}

func defaultMaxTokens(n int) int {
	if n > 0 {
		return n
	}
	return 16000
}
