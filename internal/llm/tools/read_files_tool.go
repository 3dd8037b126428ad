package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"polaris/internal/events"
)

type ReadFilesInput struct {
	FileIDs []string `json:"fileIds" jsonschema:"description=Array of file IDs to read"`
}

type readFileEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// ReadFiles returns the contents of a batch of files. Folders and files
// without inline content are skipped; an all-miss batch is an error, not an
// empty success.
func (d *Deps) ReadFiles(ctx context.Context, in *ReadFilesInput) (string, error) {
	if in == nil || len(in.FileIDs) == 0 {
		return "Error: Provide at least one file ID", nil
	}
	for _, id := range in.FileIDs {
		if strings.TrimSpace(id) == "" {
			return "Error: File ID cannot be empty", nil
		}
	}

	events.Emit(ctx, events.LLMEventTool, events.NewToolEvent(events.EventInfo, fmt.Sprintf("reading %d file(s)", len(in.FileIDs)), "readFiles", d.ProjectID))

	return runStep(ctx, d, "read-files", func(ctx context.Context) (string, error) {
		results := make([]readFileEntry, 0, len(in.FileIDs))
		for _, fileID := range in.FileIDs {
			file, err := d.Store.GetFileByID(d.InternalKey, fileID)
			if err != nil {
				events.Emit(ctx, events.LLMEventTool, events.NewError(fmt.Sprintf("readFiles: %v", err)))
				return fmt.Sprintf("Error reading files: %v", err), nil
			}
			if file == nil || file.IsFolder() || file.Content == "" {
				continue
			}
			results = append(results, readFileEntry{ID: file.ID, Name: file.Name, Content: file.Content})
		}

		if len(results) == 0 {
			return "Error: No files found with provided IDs. Use listFiles to get valid fileIDs.", nil
		}

		payload, err := json.Marshal(results)
		if err != nil {
			return fmt.Sprintf("Error reading files: %v", err), nil
		}
		return string(payload), nil
	})
}
