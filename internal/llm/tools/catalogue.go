package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
)

// Catalogue registers every agent tool against the given per-run
// dependencies and returns them keyed by tool name.
func Catalogue(d *Deps) (map[string]tool.InvokableTool, error) {
	if d == nil || d.Store == nil {
		return nil, fmt.Errorf("tool dependencies are required")
	}

	catalogue := make(map[string]tool.InvokableTool)

	listFiles, err := utils.InferTool("listFiles", ToolDescription("listFiles"), d.ListFiles)
	if err != nil {
		return nil, err
	}
	catalogue["listFiles"] = listFiles

	readFiles, err := utils.InferTool("readFiles", ToolDescription("readFiles"), d.ReadFiles)
	if err != nil {
		return nil, err
	}
	catalogue["readFiles"] = readFiles

	createFile, err := utils.InferTool("createFile", ToolDescription("createFile"), d.CreateFile)
	if err != nil {
		return nil, err
	}
	catalogue["createFile"] = createFile

	createFolder, err := utils.InferTool("createFolder", ToolDescription("createFolder"), d.CreateFolder)
	if err != nil {
		return nil, err
	}
	catalogue["createFolder"] = createFolder

	updateFile, err := utils.InferTool("updateFile", ToolDescription("updateFile"), d.UpdateFile)
	if err != nil {
		return nil, err
	}
	catalogue["updateFile"] = updateFile

	renameFile, err := utils.InferTool("renameFile", ToolDescription("renameFile"), d.RenameFile)
	if err != nil {
		return nil, err
	}
	catalogue["renameFile"] = renameFile

	deleteFiles, err := utils.InferTool("deleteFiles", ToolDescription("deleteFiles"), d.DeleteFiles)
	if err != nil {
		return nil, err
	}
	catalogue["deleteFiles"] = deleteFiles

	scrapeUrls, err := utils.InferTool("scrapeUrls", ToolDescription("scrapeUrls"), d.ScrapeUrls)
	if err != nil {
		return nil, err
	}
	catalogue["scrapeUrls"] = scrapeUrls

	return catalogue, nil
}

// Infos resolves the schema description of every tool in the catalogue, for
// binding to a chat model.
func Infos(ctx context.Context, catalogue map[string]tool.InvokableTool) ([]*schema.ToolInfo, error) {
	infos := make([]*schema.ToolInfo, 0, len(catalogue))
	for name, t := range catalogue {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe tool %s: %w", name, err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}
