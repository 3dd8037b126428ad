package tools

import (
	"context"
	"fmt"
	"strings"

	"polaris/internal/events"
	"polaris/internal/models"
)

type CreateFileInput struct {
	Name     string `json:"name" jsonschema:"description=The name of the file to create"`
	Content  string `json:"content" jsonschema:"description=The content of the file"`
	ParentID string `json:"parentId" jsonschema:"description=The ID (not name!) of the parent folder from listFiles; or empty string for root level"`
}

// CreateFile creates a file node. An empty parentId places the file at the
// project root; a supplied parentId must resolve to an existing folder.
func (d *Deps) CreateFile(ctx context.Context, in *CreateFileInput) (string, error) {
	if in == nil || strings.TrimSpace(in.Name) == "" {
		return "Error: File name is required", nil
	}

	events.Emit(ctx, events.LLMEventTool, events.NewToolEvent(events.EventInfo, fmt.Sprintf("creating file %q", in.Name), "createFile", d.ProjectID))

	return runStep(ctx, d, "create-file", func(ctx context.Context) (string, error) {
		parentID, errMsg := d.resolveParent(in.ParentID)
		if errMsg != "" {
			return errMsg, nil
		}

		node := &models.FileNode{
			ProjectID: d.ProjectID,
			ParentID:  parentID,
			Name:      strings.TrimSpace(in.Name),
			Type:      models.FileNodeTypeFile,
			Content:   in.Content,
		}
		created, err := d.Store.CreateFileNode(d.InternalKey, node)
		if err != nil {
			events.Emit(ctx, events.LLMEventTool, events.NewError(fmt.Sprintf("createFile: %v", err)))
			return fmt.Sprintf("Error creating file: %v", err), nil
		}

		events.Emit(ctx, events.LLMEventTool, events.NewToolEvent(events.EventSuccess, fmt.Sprintf("created file %q", created.Name), "createFile", created.ID))
		return fmt.Sprintf("File created with ID: %s", created.ID), nil
	})
}

// resolveParent maps the tool-level parentId convention (empty string means
// project root) to a nullable parent reference, verifying that a supplied id
// is a real folder. The second return value is a model-facing error string.
func (d *Deps) resolveParent(parentID string) (*string, string) {
	parentID = strings.TrimSpace(parentID)
	if parentID == "" {
		return nil, ""
	}

	parent, err := d.Store.GetFileByID(d.InternalKey, parentID)
	if err != nil {
		return nil, fmt.Sprintf("Error: Invalid parentId %q. Use listFiles to get valid folder IDs, or use empty string for root level.", parentID)
	}
	if parent == nil {
		return nil, fmt.Sprintf("Error: Parent folder with ID %q not found. Use listFiles to get valid folder IDs.", parentID)
	}
	if !parent.IsFolder() {
		return nil, fmt.Sprintf("Error: The ID %q is a file, not a folder. Use a folder ID as parentId.", parentID)
	}
	return &parent.ID, ""
}
