package tools_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"polaris/internal/llm/tools"
	"polaris/internal/models"
	"polaris/internal/store"
	"polaris/internal/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "internal-test-key"

func newDeps(files *mocks.FileNodeRepositoryMock) *tools.Deps {
	if files == nil {
		files = &mocks.FileNodeRepositoryMock{}
	}
	st := store.New(testKey,
		&mocks.ConversationRepositoryMock{},
		&mocks.MessageRepositoryMock{},
		files,
		&mocks.ProjectRepositoryMock{},
	)
	return &tools.Deps{
		Store:       st,
		InternalKey: testKey,
		ProjectID:   "project-1",
	}
}

func strPtr(s string) *string { return &s }

func TestListFiles_EmptyProject(t *testing.T) {
	d := newDeps(&mocks.FileNodeRepositoryMock{
		ListByProjectFunc: func(projectID string) ([]models.FileNode, error) {
			assert.Equal(t, "project-1", projectID)
			return []models.FileNode{}, nil
		},
	})

	out, err := d.ListFiles(context.Background(), &tools.ListFilesInput{})
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestListFiles_ReturnsNodes(t *testing.T) {
	d := newDeps(&mocks.FileNodeRepositoryMock{
		ListByProjectFunc: func(projectID string) ([]models.FileNode, error) {
			return []models.FileNode{
				{ID: "folder-1", Name: "src", Type: models.FileNodeTypeFolder},
				{ID: "file-1", Name: "main.go", Type: models.FileNodeTypeFile, ParentID: strPtr("folder-1")},
			}, nil
		},
	})

	out, err := d.ListFiles(context.Background(), &tools.ListFilesInput{})
	require.NoError(t, err)

	var listed []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "folder-1", listed[0]["id"])
	assert.Empty(t, listed[0]["parentId"])
	assert.Equal(t, "folder-1", listed[1]["parentId"])
}

func TestReadFiles_RequiresIDs(t *testing.T) {
	d := newDeps(nil)

	out, err := d.ReadFiles(context.Background(), &tools.ReadFilesInput{})
	require.NoError(t, err)
	assert.Equal(t, "Error: Provide at least one file ID", out)

	out, err = d.ReadFiles(context.Background(), &tools.ReadFilesInput{FileIDs: []string{"file-1", " "}})
	require.NoError(t, err)
	assert.Equal(t, "Error: File ID cannot be empty", out)
}

func TestReadFiles_SkipsFoldersAndEmptyContent(t *testing.T) {
	nodes := map[string]*models.FileNode{
		"folder-1": {ID: "folder-1", Name: "src", Type: models.FileNodeTypeFolder},
		"empty-1":  {ID: "empty-1", Name: "empty.txt", Type: models.FileNodeTypeFile},
		"file-1":   {ID: "file-1", Name: "main.go", Type: models.FileNodeTypeFile, Content: "package main"},
	}
	d := newDeps(&mocks.FileNodeRepositoryMock{
		GetByIDFunc: func(id string) (*models.FileNode, error) { return nodes[id], nil },
	})

	out, err := d.ReadFiles(context.Background(), &tools.ReadFilesInput{
		FileIDs: []string{"folder-1", "empty-1", "file-1", "missing"},
	})
	require.NoError(t, err)

	var entries []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "file-1", entries[0]["id"])
	assert.Equal(t, "package main", entries[0]["content"])
}

func TestReadFiles_NoReadableResults(t *testing.T) {
	d := newDeps(&mocks.FileNodeRepositoryMock{
		GetByIDFunc: func(id string) (*models.FileNode, error) { return nil, nil },
	})

	out, err := d.ReadFiles(context.Background(), &tools.ReadFilesInput{FileIDs: []string{"gone-1", "gone-2"}})
	require.NoError(t, err)
	assert.Equal(t, "Error: No files found with provided IDs. Use listFiles to get valid fileIDs.", out)
}

func TestCreateFolder_RequiresName(t *testing.T) {
	d := newDeps(nil)

	out, err := d.CreateFolder(context.Background(), &tools.CreateFolderInput{Name: "  "})
	require.NoError(t, err)
	assert.Equal(t, "Error: Folder name is required", out)
}

func TestCreateFolder_ParentNotFound(t *testing.T) {
	created := false
	d := newDeps(&mocks.FileNodeRepositoryMock{
		GetByIDFunc: func(id string) (*models.FileNode, error) { return nil, nil },
		CreateFunc: func(node *models.FileNode) (*models.FileNode, error) {
			created = true
			return node, nil
		},
	})

	out, err := d.CreateFolder(context.Background(), &tools.CreateFolderInput{Name: "docs", ParentID: "bogus"})
	require.NoError(t, err)
	assert.Equal(t, `Error: Parent folder with ID "bogus" not found. Use listFiles to get valid folder IDs.`, out)
	assert.False(t, created, "a failed parent lookup must not mutate the tree")
}

func TestCreateFolder_ParentIsFile(t *testing.T) {
	d := newDeps(&mocks.FileNodeRepositoryMock{
		GetByIDFunc: func(id string) (*models.FileNode, error) {
			return &models.FileNode{ID: id, Name: "main.go", Type: models.FileNodeTypeFile, ProjectID: "project-1"}, nil
		},
	})

	out, err := d.CreateFolder(context.Background(), &tools.CreateFolderInput{Name: "docs", ParentID: "file-1"})
	require.NoError(t, err)
	assert.Equal(t, `Error: The ID "file-1" is a file, not a folder. Use a folder ID as parentId.`, out)
}

func TestCreateFolder_AtRoot(t *testing.T) {
	d := newDeps(&mocks.FileNodeRepositoryMock{
		CreateFunc: func(node *models.FileNode) (*models.FileNode, error) {
			assert.Nil(t, node.ParentID)
			assert.Equal(t, models.FileNodeTypeFolder, node.Type)
			node.ID = "folder-9"
			return node, nil
		},
	})

	out, err := d.CreateFolder(context.Background(), &tools.CreateFolderInput{Name: "docs", ParentID: ""})
	require.NoError(t, err)
	assert.Equal(t, "Folder created with ID: folder-9", out)
}

func TestCreateFile_UnderParentFolder(t *testing.T) {
	d := newDeps(&mocks.FileNodeRepositoryMock{
		GetByIDFunc: func(id string) (*models.FileNode, error) {
			return &models.FileNode{ID: id, Name: "src", Type: models.FileNodeTypeFolder, ProjectID: "project-1"}, nil
		},
		CreateFunc: func(node *models.FileNode) (*models.FileNode, error) {
			require.NotNil(t, node.ParentID)
			assert.Equal(t, "folder-1", *node.ParentID)
			assert.Equal(t, "package main", node.Content)
			node.ID = "file-7"
			return node, nil
		},
	})

	out, err := d.CreateFile(context.Background(), &tools.CreateFileInput{
		Name:     "main.go",
		Content:  "package main",
		ParentID: "folder-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "File created with ID: file-7", out)
}

func TestUpdateFile_TargetMustBeFile(t *testing.T) {
	updated := false
	d := newDeps(&mocks.FileNodeRepositoryMock{
		GetByIDFunc: func(id string) (*models.FileNode, error) {
			return &models.FileNode{ID: id, Name: "src", Type: models.FileNodeTypeFolder}, nil
		},
		UpdateContentFunc: func(id string, content string) error {
			updated = true
			return nil
		},
	})

	out, err := d.UpdateFile(context.Background(), &tools.UpdateFileInput{FileID: "folder-1", Content: "x"})
	require.NoError(t, err)
	assert.Equal(t, `Error: "folder-1" is a folder, not a file. You can only update file contents.`, out)
	assert.False(t, updated)
}

func TestUpdateFile_NotFound(t *testing.T) {
	d := newDeps(&mocks.FileNodeRepositoryMock{
		GetByIDFunc: func(id string) (*models.FileNode, error) { return nil, nil },
	})

	out, err := d.UpdateFile(context.Background(), &tools.UpdateFileInput{FileID: "gone", Content: "x"})
	require.NoError(t, err)
	assert.Equal(t, `Error: File with ID "gone" not found. Use listFiles to get valid file IDs.`, out)
}

func TestUpdateFile_Success(t *testing.T) {
	d := newDeps(&mocks.FileNodeRepositoryMock{
		GetByIDFunc: func(id string) (*models.FileNode, error) {
			return &models.FileNode{ID: id, Name: "main.go", Type: models.FileNodeTypeFile}, nil
		},
		UpdateContentFunc: func(id string, content string) error {
			assert.Equal(t, "file-1", id)
			assert.Equal(t, "package main", content)
			return nil
		},
	})

	out, err := d.UpdateFile(context.Background(), &tools.UpdateFileInput{FileID: "file-1", Content: "package main"})
	require.NoError(t, err)
	assert.Equal(t, `File "main.go" updated successfully`, out)
}

func TestRenameFile_StaleID(t *testing.T) {
	d := newDeps(&mocks.FileNodeRepositoryMock{
		GetByIDFunc: func(id string) (*models.FileNode, error) { return nil, nil },
	})

	out, err := d.RenameFile(context.Background(), &tools.RenameFileInput{FileID: "gone", NewName: "new.go"})
	require.NoError(t, err)
	assert.Equal(t, `Error: File with ID "gone" not found. Use listFiles to get valid file IDs.`, out)
}

func TestRenameFile_Success(t *testing.T) {
	d := newDeps(&mocks.FileNodeRepositoryMock{
		GetByIDFunc: func(id string) (*models.FileNode, error) {
			return &models.FileNode{ID: id, Name: "old.go", Type: models.FileNodeTypeFile}, nil
		},
		RenameFunc: func(id string, name string) error {
			assert.Equal(t, "new.go", name)
			return nil
		},
	})

	out, err := d.RenameFile(context.Background(), &tools.RenameFileInput{FileID: "file-1", NewName: " new.go "})
	require.NoError(t, err)
	assert.Equal(t, `Renamed "old.go" to "new.go"`, out)
}

func TestDeleteFiles_MixedBatch(t *testing.T) {
	var deleted []string
	nodes := map[string]*models.FileNode{
		"file-1": {ID: "file-1", Name: "main.go", Type: models.FileNodeTypeFile},
	}
	d := newDeps(&mocks.FileNodeRepositoryMock{
		GetByIDFunc: func(id string) (*models.FileNode, error) { return nodes[id], nil },
		DeleteFunc: func(id string) error {
			deleted = append(deleted, id)
			return nil
		},
	})

	out, err := d.DeleteFiles(context.Background(), &tools.DeleteFilesInput{FileIDs: []string{"file-1", "gone"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"file-1"}, deleted)
	assert.Equal(t, "Deleted: main.go. Not found: gone. Use listFiles to get valid file IDs.", out)
}

func TestDeleteFiles_AllMissing(t *testing.T) {
	d := newDeps(&mocks.FileNodeRepositoryMock{
		GetByIDFunc: func(id string) (*models.FileNode, error) { return nil, nil },
	})

	out, err := d.DeleteFiles(context.Background(), &tools.DeleteFilesInput{FileIDs: []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, "Error: No files found with provided IDs. Use listFiles to get valid file IDs.", out)
}

func TestScrapeUrls_RequiresURLs(t *testing.T) {
	d := newDeps(nil)

	out, err := d.ScrapeUrls(context.Background(), &tools.ScrapeUrlsInput{})
	require.NoError(t, err)
	assert.Equal(t, "Error: Provide at least one URL", out)
}

func TestStoreErrorsSurfaceAsStrings(t *testing.T) {
	d := newDeps(&mocks.FileNodeRepositoryMock{
		ListByProjectFunc: func(projectID string) ([]models.FileNode, error) {
			return nil, fmt.Errorf("database is locked")
		},
	})

	out, err := d.ListFiles(context.Background(), &tools.ListFilesInput{})
	require.NoError(t, err, "store faults must be reported to the model, not raised")
	assert.Contains(t, out, "Error listing files:")
}
