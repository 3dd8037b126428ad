package tools

var toolDescriptions = map[string]string{
	"listFiles":    "List all files and folders in the project. Returns id, name, type and parentId for every node.",
	"readFiles":    "Read the content of files from the project. Returns file contents.",
	"createFile":   "Create a new file in the project with the given content",
	"createFolder": "Create a new folder in the project",
	"updateFile":   "Update the content of an existing file",
	"renameFile":   "Rename an existing file or folder",
	"deleteFiles":  "Delete files or folders from the project by ID",
	"scrapeUrls":   "Fetch external web pages and return their content as markdown",
}

// ToolDescription returns the registered description for a tool name, or ""
// when the name is unknown.
func ToolDescription(name string) string {
	return toolDescriptions[name]
}
