package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"polaris/internal/events"
)

type ListFilesInput struct{}

type listedNode struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID string `json:"parentId,omitempty"`
}

// ListFiles enumerates every node of the project. An empty project is a
// valid, empty result.
func (d *Deps) ListFiles(ctx context.Context, in *ListFilesInput) (string, error) {
	events.Emit(ctx, events.LLMEventTool, events.NewToolEvent(events.EventInfo, "listing project files", "listFiles", d.ProjectID))

	return runStep(ctx, d, "list-files", func(ctx context.Context) (string, error) {
		nodes, err := d.Store.ListFiles(d.InternalKey, d.ProjectID)
		if err != nil {
			events.Emit(ctx, events.LLMEventTool, events.NewError(fmt.Sprintf("listFiles: %v", err)))
			return fmt.Sprintf("Error listing files: %v", err), nil
		}

		listed := make([]listedNode, 0, len(nodes))
		for _, n := range nodes {
			entry := listedNode{ID: n.ID, Name: n.Name, Type: n.Type}
			if n.ParentID != nil {
				entry.ParentID = *n.ParentID
			}
			listed = append(listed, entry)
		}

		payload, err := json.Marshal(listed)
		if err != nil {
			return fmt.Sprintf("Error listing files: %v", err), nil
		}
		return string(payload), nil
	})
}
