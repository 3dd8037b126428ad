package mocks

import (
	"polaris/internal/models"
)

type FileNodeRepositoryMock struct {
	GetByIDFunc       func(id string) (*models.FileNode, error)
	ListByProjectFunc func(projectID string) ([]models.FileNode, error)
	CreateFunc        func(node *models.FileNode) (*models.FileNode, error)
	UpdateContentFunc func(id string, content string) error
	RenameFunc        func(id string, name string) error
	DeleteFunc        func(id string) error
}

func (m *FileNodeRepositoryMock) GetByID(id string) (*models.FileNode, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, nil
}

func (m *FileNodeRepositoryMock) ListByProject(projectID string) ([]models.FileNode, error) {
	if m.ListByProjectFunc != nil {
		return m.ListByProjectFunc(projectID)
	}
	return []models.FileNode{}, nil
}

func (m *FileNodeRepositoryMock) Create(node *models.FileNode) (*models.FileNode, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(node)
	}
	return node, nil
}

func (m *FileNodeRepositoryMock) UpdateContent(id string, content string) error {
	if m.UpdateContentFunc != nil {
		return m.UpdateContentFunc(id, content)
	}
	return nil
}

func (m *FileNodeRepositoryMock) Rename(id string, name string) error {
	if m.RenameFunc != nil {
		return m.RenameFunc(id, name)
	}
	return nil
}

func (m *FileNodeRepositoryMock) Delete(id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}
