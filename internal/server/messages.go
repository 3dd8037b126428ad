package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"polaris/internal/conversations"
	"polaris/internal/models"
	"polaris/internal/workflow"
)

type createMessageRequest struct {
	ConversationID string `json:"conversationId"`
	Message        string `json:"message"`
}

type createMessageResponse struct {
	Success   bool   `json:"success"`
	EventID   string `json:"eventId"`
	MessageID string `json:"messageId"`
}

// handleCreateMessage persists the user message and the assistant
// placeholder, then enqueues the workflow run. Both writes happen before the
// event is sent so the run can always resolve the placeholder.
func (s *Server) handleCreateMessage(c echo.Context) error {
	if s.internalKey == "" {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal key not configured")
	}

	var req createMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.ConversationID) == "" || strings.TrimSpace(req.Message) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "conversationId and message are required")
	}

	conversation, err := s.store.GetConversationByID(s.internalKey, req.ConversationID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if conversation == nil {
		return echo.NewHTTPError(http.StatusNotFound, "conversation not found")
	}

	_, err = s.store.CreateMessage(s.internalKey, &models.Message{
		ConversationID: conversation.ID,
		ProjectID:      conversation.ProjectID,
		Role:           models.MessageRoleUser,
		Content:        req.Message,
		Status:         models.MessageStatusCompleted,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	assistant, err := s.store.CreateMessage(s.internalKey, &models.Message{
		ConversationID: conversation.ID,
		ProjectID:      conversation.ProjectID,
		Role:           models.MessageRoleAssistant,
		Content:        "",
		Status:         models.MessageStatusProcessing,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	eventID := s.engine.Send(c.Request().Context(), workflow.Event{
		Name: conversations.EventMessageSent,
		Data: map[string]any{
			"messageId":      assistant.ID,
			"conversationId": conversation.ID,
			"projectId":      conversation.ProjectID,
			"message":        req.Message,
		},
	})

	return c.JSON(http.StatusOK, createMessageResponse{
		Success:   true,
		EventID:   eventID,
		MessageID: assistant.ID,
	})
}

// handleCancelMessage emits the cancellation event for an in-flight run.
func (s *Server) handleCancelMessage(c echo.Context) error {
	messageID := c.Param("id")
	if strings.TrimSpace(messageID) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message id is required")
	}

	s.engine.Send(c.Request().Context(), workflow.Event{
		Name: conversations.EventMessageCancel,
		Data: map[string]any{"messageId": messageID},
	})

	return c.JSON(http.StatusOK, map[string]any{"success": true})
}
