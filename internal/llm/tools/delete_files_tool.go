package tools

import (
	"context"
	"fmt"
	"strings"

	"polaris/internal/events"
)

type DeleteFilesInput struct {
	FileIDs []string `json:"fileIds" jsonschema:"description=Array of file or folder IDs to delete"`
}

// DeleteFiles removes a batch of nodes. Stale ids are reported per id; the
// rest of the batch is still deleted.
func (d *Deps) DeleteFiles(ctx context.Context, in *DeleteFilesInput) (string, error) {
	if in == nil || len(in.FileIDs) == 0 {
		return "Error: Provide at least one file ID", nil
	}
	for _, id := range in.FileIDs {
		if strings.TrimSpace(id) == "" {
			return "Error: File ID cannot be empty", nil
		}
	}

	events.Emit(ctx, events.LLMEventTool, events.NewToolEvent(events.EventInfo, fmt.Sprintf("deleting %d node(s)", len(in.FileIDs)), "deleteFiles", d.ProjectID))

	return runStep(ctx, d, "delete-files", func(ctx context.Context) (string, error) {
		var deleted, missing []string
		for _, fileID := range in.FileIDs {
			file, err := d.Store.GetFileByID(d.InternalKey, fileID)
			if err != nil {
				events.Emit(ctx, events.LLMEventTool, events.NewError(fmt.Sprintf("deleteFiles: %v", err)))
				return fmt.Sprintf("Error deleting files: %v", err), nil
			}
			if file == nil {
				missing = append(missing, fileID)
				continue
			}
			if err := d.Store.DeleteFileNode(d.InternalKey, file.ID); err != nil {
				events.Emit(ctx, events.LLMEventTool, events.NewError(fmt.Sprintf("deleteFiles: %v", err)))
				return fmt.Sprintf("Error deleting files: %v", err), nil
			}
			deleted = append(deleted, file.Name)
		}

		if len(deleted) == 0 {
			return "Error: No files found with provided IDs. Use listFiles to get valid file IDs.", nil
		}

		result := fmt.Sprintf("Deleted: %s", strings.Join(deleted, ", "))
		if len(missing) > 0 {
			result += fmt.Sprintf(". Not found: %s. Use listFiles to get valid file IDs.", strings.Join(missing, ", "))
		}
		events.Emit(ctx, events.LLMEventTool, events.NewToolEvent(events.EventSuccess, result, "deleteFiles", d.ProjectID))
		return result, nil
	})
}
