package repositories

import (
	"errors"
	"fmt"

	"polaris/internal/models"

	"gorm.io/gorm"
)

type ConversationRepository interface {
	GetByID(id string) (*models.Conversation, error)
	ListByProject(projectID string) ([]models.Conversation, error)
	Create(conversation *models.Conversation) (*models.Conversation, error)
	UpdateTitle(id string, title string) error
}

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) GetByID(id string) (*models.Conversation, error) {
	var conv models.Conversation
	res := r.db.Where("id = ?", id).Take(&conv)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}
	return &conv, nil
}

func (r *conversationRepository) ListByProject(projectID string) ([]models.Conversation, error) {
	var convs []models.Conversation
	res := r.db.Where("project_id = ?", projectID).Order("updated_at desc").Find(&convs)
	if res.Error != nil {
		return nil, res.Error
	}
	return convs, nil
}

func (r *conversationRepository) Create(conversation *models.Conversation) (*models.Conversation, error) {
	if conversation == nil {
		return nil, fmt.Errorf("conversation is required")
	}
	if conversation.ProjectID == "" {
		return nil, fmt.Errorf("projectID is required")
	}
	if err := r.db.Create(conversation).Error; err != nil {
		return nil, err
	}
	return conversation, nil
}

func (r *conversationRepository) UpdateTitle(id string, title string) error {
	if id == "" {
		return fmt.Errorf("conversation id is required")
	}
	return r.db.Model(&models.Conversation{}).Where("id = ?", id).
		Update("title", title).Error
}
