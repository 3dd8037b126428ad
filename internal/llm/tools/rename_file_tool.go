package tools

import (
	"context"
	"fmt"
	"strings"

	"polaris/internal/events"
)

type RenameFileInput struct {
	FileID  string `json:"fileId" jsonschema:"description=The ID of the file or folder to rename"`
	NewName string `json:"newName" jsonschema:"description=The new name"`
}

// RenameFile renames a file or folder. Existence is re-checked right before
// the mutation since the model's view of the tree may be stale.
func (d *Deps) RenameFile(ctx context.Context, in *RenameFileInput) (string, error) {
	if in == nil || strings.TrimSpace(in.FileID) == "" {
		return "Error: File ID is required", nil
	}
	if strings.TrimSpace(in.NewName) == "" {
		return "Error: New name is required", nil
	}

	events.Emit(ctx, events.LLMEventTool, events.NewToolEvent(events.EventInfo, fmt.Sprintf("renaming %s to %q", in.FileID, in.NewName), "renameFile", in.FileID))

	return runStep(ctx, d, "rename-file", func(ctx context.Context) (string, error) {
		file, err := d.Store.GetFileByID(d.InternalKey, in.FileID)
		if err != nil {
			events.Emit(ctx, events.LLMEventTool, events.NewError(fmt.Sprintf("renameFile: %v", err)))
			return fmt.Sprintf("Error renaming file: %v", err), nil
		}
		if file == nil {
			return fmt.Sprintf("Error: File with ID %q not found. Use listFiles to get valid file IDs.", in.FileID), nil
		}

		newName := strings.TrimSpace(in.NewName)
		if err := d.Store.RenameFileNode(d.InternalKey, file.ID, newName); err != nil {
			events.Emit(ctx, events.LLMEventTool, events.NewError(fmt.Sprintf("renameFile: %v", err)))
			return fmt.Sprintf("Error renaming file: %v", err), nil
		}

		events.Emit(ctx, events.LLMEventTool, events.NewToolEvent(events.EventSuccess, fmt.Sprintf("renamed %q to %q", file.Name, newName), "renameFile", file.ID))
		return fmt.Sprintf("Renamed %q to %q", file.Name, newName), nil
	})
}
