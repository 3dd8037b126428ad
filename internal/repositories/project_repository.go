package repositories

import (
	"errors"
	"fmt"

	"polaris/internal/models"

	"gorm.io/gorm"
)

type ProjectRepository interface {
	GetByID(id string) (*models.Project, error)
	Create(project *models.Project) (*models.Project, error)
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) GetByID(id string) (*models.Project, error) {
	var project models.Project
	res := r.db.Where("id = ?", id).Take(&project)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}
	return &project, nil
}

func (r *projectRepository) Create(project *models.Project) (*models.Project, error) {
	if project == nil {
		return nil, fmt.Errorf("project is required")
	}
	if project.Name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if err := r.db.Create(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}
