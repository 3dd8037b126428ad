package events

import "time"

const (
	EventInfo    = "info"
	EventWarn    = "warn"
	EventError   = "error"
	EventSuccess = "success"
)

// LLMEventTool is the event stream name used by agent tool and run events.
const LLMEventTool = "llm:tool"

type ToolEvent struct {
	Type       string    `json:"type"`
	Message    string    `json:"message"`
	Tool       string    `json:"tool,omitempty"`
	Target     string    `json:"target,omitempty"`
	SessionKey string    `json:"sessionKey,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewInfo(message string) ToolEvent {
	return ToolEvent{Type: EventInfo, Message: message, Timestamp: time.Now()}
}

func NewWarn(message string) ToolEvent {
	return ToolEvent{Type: EventWarn, Message: message, Timestamp: time.Now()}
}

func NewError(message string) ToolEvent {
	return ToolEvent{Type: EventError, Message: message, Timestamp: time.Now()}
}

func NewToolEvent(eventType, message, tool, target string) ToolEvent {
	return ToolEvent{Type: eventType, Message: message, Tool: tool, Target: target, Timestamp: time.Now()}
}
