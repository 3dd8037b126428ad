package tools

import (
	"context"
	"fmt"
	"strings"

	"polaris/internal/events"
	"polaris/internal/models"
)

type CreateFolderInput struct {
	Name     string `json:"name" jsonschema:"description=The name of the folder to create"`
	ParentID string `json:"parentId" jsonschema:"description=The ID (not name!) of the parent folder from listFiles; or empty string for root level"`
}

func (d *Deps) CreateFolder(ctx context.Context, in *CreateFolderInput) (string, error) {
	if in == nil || strings.TrimSpace(in.Name) == "" {
		return "Error: Folder name is required", nil
	}

	events.Emit(ctx, events.LLMEventTool, events.NewToolEvent(events.EventInfo, fmt.Sprintf("creating folder %q", in.Name), "createFolder", d.ProjectID))

	return runStep(ctx, d, "create-folder", func(ctx context.Context) (string, error) {
		parentID, errMsg := d.resolveParent(in.ParentID)
		if errMsg != "" {
			return errMsg, nil
		}

		node := &models.FileNode{
			ProjectID: d.ProjectID,
			ParentID:  parentID,
			Name:      strings.TrimSpace(in.Name),
			Type:      models.FileNodeTypeFolder,
		}
		created, err := d.Store.CreateFileNode(d.InternalKey, node)
		if err != nil {
			events.Emit(ctx, events.LLMEventTool, events.NewError(fmt.Sprintf("createFolder: %v", err)))
			return fmt.Sprintf("Error creating folder: %v", err), nil
		}

		events.Emit(ctx, events.LLMEventTool, events.NewToolEvent(events.EventSuccess, fmt.Sprintf("created folder %q", created.Name), "createFolder", created.ID))
		return fmt.Sprintf("Folder created with ID: %s", created.ID), nil
	})
}
