package conversations

import (
	"fmt"
	"strings"

	"polaris/internal/models"
)

const codingAgentSystemPrompt = `You are Polaris, an expert AI coding assistant working inside a project's virtual file tree.

You have tools to list, read, create, update, rename and delete files and folders, and to fetch external web pages. File and folder references are by ID, never by name or path: always call listFiles first to discover valid IDs before reading or mutating anything.

Guidelines:
- Make the requested changes directly with the tools; do not describe changes without applying them.
- Keep file contents complete when creating or updating a file. Partial snippets corrupt the project.
- When a tool reports an error, read it carefully and correct your call; listFiles shows the current tree.
- After finishing the work, reply with a short summary of what you changed.`

const titleGeneratorSystemPrompt = `Generate a short title (at most 6 words) for a conversation that starts with the user message you are given. Reply with the title only: no quotes, no punctuation at the end, no explanations.`

// buildSystemPrompt appends recent conversation history to the coding agent
// prompt. The message that triggered the run and empty placeholders are
// excluded; history is context only, marked so the model does not replay its
// earlier answers.
func buildSystemPrompt(recent []models.Message, currentMessageID string) string {
	var history []string
	for _, msg := range recent {
		if msg.ID == currentMessageID || strings.TrimSpace(msg.Content) == "" {
			continue
		}
		history = append(history, fmt.Sprintf("%s: %s", strings.ToUpper(msg.Role), msg.Content))
	}

	if len(history) == 0 {
		return codingAgentSystemPrompt
	}

	return codingAgentSystemPrompt +
		"\n\n## Previous Conversation (for context only - do NOT repeat these responses):\n" +
		strings.Join(history, "\n\n") +
		"\n\n## Current Request:\nRespond ONLY to the user's new message below. Do not repeat or reference your previous responses."
}
