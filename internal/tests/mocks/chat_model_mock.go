package mocks

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// ChatModelMock scripts model turns for agent-loop tests. When GenerateFunc
// is nil, successive Generate calls pop Turns in order.
type ChatModelMock struct {
	Turns         []*schema.Message
	GenerateFunc  func(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
	WithToolsFunc func(tools []*schema.ToolInfo) (model.ToolCallingChatModel, error)

	Calls int
}

func (m *ChatModelMock) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	m.Calls++
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, input, opts...)
	}
	if len(m.Turns) == 0 {
		return nil, fmt.Errorf("no scripted turns left")
	}
	next := m.Turns[0]
	if len(m.Turns) > 1 {
		m.Turns = m.Turns[1:]
	}
	return next, nil
}

func (m *ChatModelMock) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, fmt.Errorf("streaming is not scripted")
}

func (m *ChatModelMock) WithTools(tools []*schema.ToolInfo) (model.ToolCallingChatModel, error) {
	if m.WithToolsFunc != nil {
		return m.WithToolsFunc(tools)
	}
	return m, nil
}
