package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/cloudwego/eino/schema"
	"github.com/labstack/echo/v4"

	"polaris/internal/suggest"
)

const suggestionSystemPrompt = `You are an inline code completion engine. Given the code around the cursor, reply with ONLY the text to insert at the cursor position. No explanations, no markdown fences, no repetition of existing code. Reply with an empty string if no useful completion exists.`

type suggestionResponse struct {
	Suggestion string `json:"suggestion"`
}

// handleSuggestion serves one completion for an editor snapshot. One
// low-temperature model call, no retries; the client debounces and
// rate-limits on its side.
func (s *Server) handleSuggestion(c echo.Context) error {
	if s.suggestModel == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "suggestions are not configured")
	}

	var snap suggest.Snapshot
	if err := c.Bind(&snap); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(snap.Code) == "" {
		return c.JSON(http.StatusOK, suggestionResponse{Suggestion: ""})
	}
	if s.suggestLimiter != nil {
		if !s.suggestLimiter.Allow() {
			return echo.NewHTTPError(http.StatusTooManyRequests, "suggestion rate limit exceeded")
		}
		s.suggestLimiter.Record()
	}

	prompt := fmt.Sprintf(
		"File: %s (line %d)\n\nPreceding lines:\n%s\n\nCurrent line before cursor: %q\nCurrent line after cursor: %q\n\nFollowing lines:\n%s\n\nComplete the code at the cursor.",
		snap.FileName, snap.LineNumber, snap.PreviousLines,
		snap.TextBeforeCursor, snap.TextAfterCursor, snap.NextLines,
	)

	out, err := s.suggestModel.Generate(c.Request().Context(), []*schema.Message{
		schema.SystemMessage(suggestionSystemPrompt),
		schema.UserMessage(prompt),
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	return c.JSON(http.StatusOK, suggestionResponse{Suggestion: strings.TrimRight(out.Content, "\n")})
}
