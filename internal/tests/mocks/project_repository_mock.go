package mocks

import (
	"polaris/internal/models"
)

type ProjectRepositoryMock struct {
	GetByIDFunc func(id string) (*models.Project, error)
	CreateFunc  func(project *models.Project) (*models.Project, error)
}

func (m *ProjectRepositoryMock) GetByID(id string) (*models.Project, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, nil
}

func (m *ProjectRepositoryMock) Create(project *models.Project) (*models.Project, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(project)
	}
	return project, nil
}
