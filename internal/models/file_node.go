package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FileNodeTypeFile   = "file"
	FileNodeTypeFolder = "folder"
)

// FileNode is one entry of a project's virtual file tree. A nil ParentID
// means the node sits at the project root. Content is only meaningful for
// file-typed nodes.
type FileNode struct {
	ID        string  `gorm:"primaryKey;size:36"`
	ProjectID string  `gorm:"size:36;not null;index"`
	ParentID  *string `gorm:"size:36;index"`
	Name      string  `gorm:"size:255;not null"`
	Type      string  `gorm:"size:16;not null"`
	Content   string  `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (f *FileNode) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

func (f *FileNode) IsFolder() bool {
	return f.Type == FileNodeTypeFolder
}
