package repositories

import (
	"errors"
	"fmt"

	"polaris/internal/models"

	"gorm.io/gorm"
)

type FileNodeRepository interface {
	GetByID(id string) (*models.FileNode, error)
	ListByProject(projectID string) ([]models.FileNode, error)
	Create(node *models.FileNode) (*models.FileNode, error)
	UpdateContent(id string, content string) error
	Rename(id string, name string) error
	Delete(id string) error
}

type fileNodeRepository struct {
	db *gorm.DB
}

func NewFileNodeRepository(db *gorm.DB) FileNodeRepository {
	return &fileNodeRepository{db: db}
}

func (r *fileNodeRepository) GetByID(id string) (*models.FileNode, error) {
	var node models.FileNode
	res := r.db.Where("id = ?", id).Take(&node)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}
	return &node, nil
}

func (r *fileNodeRepository) ListByProject(projectID string) ([]models.FileNode, error) {
	var nodes []models.FileNode
	res := r.db.Where("project_id = ?", projectID).Order("name asc").Find(&nodes)
	if res.Error != nil {
		return nil, res.Error
	}
	return nodes, nil
}

func (r *fileNodeRepository) Create(node *models.FileNode) (*models.FileNode, error) {
	if node == nil {
		return nil, fmt.Errorf("node is required")
	}
	if node.ProjectID == "" {
		return nil, fmt.Errorf("projectID is required")
	}
	if node.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if node.Type != models.FileNodeTypeFile && node.Type != models.FileNodeTypeFolder {
		return nil, fmt.Errorf("invalid node type: %s", node.Type)
	}
	if err := r.db.Create(node).Error; err != nil {
		return nil, err
	}
	return node, nil
}

func (r *fileNodeRepository) UpdateContent(id string, content string) error {
	if id == "" {
		return fmt.Errorf("node id is required")
	}
	return r.db.Model(&models.FileNode{}).Where("id = ?", id).
		Update("content", content).Error
}

func (r *fileNodeRepository) Rename(id string, name string) error {
	if id == "" {
		return fmt.Errorf("node id is required")
	}
	if name == "" {
		return fmt.Errorf("name is required")
	}
	return r.db.Model(&models.FileNode{}).Where("id = ?", id).
		Update("name", name).Error
}

func (r *fileNodeRepository) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("node id is required")
	}
	return r.db.Where("id = ?", id).Delete(&models.FileNode{}).Error
}
