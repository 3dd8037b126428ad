package conversations

import (
	"testing"

	"polaris/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildSystemPrompt_NoHistory(t *testing.T) {
	got := buildSystemPrompt(nil, "msg-1")
	assert.Equal(t, codingAgentSystemPrompt, got)
}

func TestBuildSystemPrompt_FiltersCurrentAndEmptyMessages(t *testing.T) {
	recent := []models.Message{
		{ID: "msg-1", Role: models.MessageRoleUser, Content: "build a todo app"},
		{ID: "msg-2", Role: models.MessageRoleAssistant, Content: "Done, created main.go"},
		{ID: "msg-3", Role: models.MessageRoleAssistant, Content: "   "},
		{ID: "msg-4", Role: models.MessageRoleUser, Content: "now add tests"},
	}

	got := buildSystemPrompt(recent, "msg-4")

	assert.Contains(t, got, "USER: build a todo app")
	assert.Contains(t, got, "ASSISTANT: Done, created main.go")
	assert.NotContains(t, got, "now add tests")
	assert.Contains(t, got, "## Previous Conversation (for context only - do NOT repeat these responses):")
	assert.Contains(t, got, "## Current Request:")
}

func TestBuildSystemPrompt_AllFilteredFallsBackToBase(t *testing.T) {
	recent := []models.Message{
		{ID: "msg-1", Role: models.MessageRoleUser, Content: "hello"},
		{ID: "msg-2", Role: models.MessageRoleAssistant, Content: ""},
	}
	got := buildSystemPrompt(recent, "msg-1")
	assert.Equal(t, codingAgentSystemPrompt, got)
}
