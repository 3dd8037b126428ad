package events

import (
	"context"
	"log"
)

// Emit publishes a tool/run event. It defaults to a no-op so library code can
// emit unconditionally; the composition root installs a real sink.
var Emit = func(ctx context.Context, name string, evt ToolEvent) {}

// EnableLogEmitter routes events to the standard logger.
func EnableLogEmitter() {
	Emit = func(ctx context.Context, name string, evt ToolEvent) {
		if evt.SessionKey == "" {
			if session := SessionFromContext(ctx); session != "" {
				evt.SessionKey = session
			}
		}
		if evt.SessionKey != "" {
			log.Printf("[%s] %s %s: %s", name, evt.SessionKey, evt.Type, evt.Message)
			return
		}
		log.Printf("[%s] %s: %s", name, evt.Type, evt.Message)
	}
}

func SetCustomEmitter(f func(ctx context.Context, name string, evt ToolEvent)) {
	if f == nil {
		Emit = func(context.Context, string, ToolEvent) {}
		return
	}
	Emit = func(ctx context.Context, name string, evt ToolEvent) {
		if evt.SessionKey == "" {
			if session := SessionFromContext(ctx); session != "" {
				evt.SessionKey = session
			}
		}
		f(ctx, name, evt)
	}
}

type contextKey string

const sessionKey contextKey = "polaris/events/session"

// ContextWithSession annotates ctx with a logical session identifier (one run
// of the message workflow) so emitted events can be correlated.
func ContextWithSession(ctx context.Context, session string) context.Context {
	if session == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionKey, session)
}

func SessionFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(sessionKey).(string); ok {
		return v
	}
	return ""
}
