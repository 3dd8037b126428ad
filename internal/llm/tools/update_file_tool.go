package tools

import (
	"context"
	"fmt"
	"strings"

	"polaris/internal/events"
)

type UpdateFileInput struct {
	FileID  string `json:"fileId" jsonschema:"description=The ID of the file to update"`
	Content string `json:"content" jsonschema:"description=The new content for the file"`
}

// UpdateFile replaces the content of an existing file-typed node.
func (d *Deps) UpdateFile(ctx context.Context, in *UpdateFileInput) (string, error) {
	if in == nil || strings.TrimSpace(in.FileID) == "" {
		return "Error: File ID is required", nil
	}

	events.Emit(ctx, events.LLMEventTool, events.NewToolEvent(events.EventInfo, fmt.Sprintf("updating file %s", in.FileID), "updateFile", in.FileID))

	return runStep(ctx, d, "update-file", func(ctx context.Context) (string, error) {
		file, err := d.Store.GetFileByID(d.InternalKey, in.FileID)
		if err != nil {
			events.Emit(ctx, events.LLMEventTool, events.NewError(fmt.Sprintf("updateFile: %v", err)))
			return fmt.Sprintf("Error updating file: %v", err), nil
		}
		if file == nil {
			return fmt.Sprintf("Error: File with ID %q not found. Use listFiles to get valid file IDs.", in.FileID), nil
		}
		if file.IsFolder() {
			return fmt.Sprintf("Error: %q is a folder, not a file. You can only update file contents.", in.FileID), nil
		}

		if err := d.Store.UpdateFileContent(d.InternalKey, file.ID, in.Content); err != nil {
			events.Emit(ctx, events.LLMEventTool, events.NewError(fmt.Sprintf("updateFile: %v", err)))
			return fmt.Sprintf("Error updating file: %v", err), nil
		}

		events.Emit(ctx, events.LLMEventTool, events.NewToolEvent(events.EventSuccess, fmt.Sprintf("updated file %q", file.Name), "updateFile", file.ID))
		return fmt.Sprintf("File %q updated successfully", file.Name), nil
	})
}
