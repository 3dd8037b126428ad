package repositories

import (
	"errors"
	"fmt"

	"polaris/internal/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	GetByID(id string) (*models.Message, error)
	ListRecentByConversation(conversationID string, limit int) ([]models.Message, error)
	Create(message *models.Message) (*models.Message, error)
	UpdateContentAndStatus(id string, content string, status string) error
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) GetByID(id string) (*models.Message, error) {
	var msg models.Message
	res := r.db.Where("id = ?", id).Take(&msg)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}
	return &msg, nil
}

// ListRecentByConversation returns the most recent messages newest-first.
func (r *messageRepository) ListRecentByConversation(conversationID string, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = 10
	}
	var msgs []models.Message
	res := r.db.Where("conversation_id = ?", conversationID).
		Order("created_at desc").Limit(limit).Find(&msgs)
	if res.Error != nil {
		return nil, res.Error
	}
	return msgs, nil
}

func (r *messageRepository) Create(message *models.Message) (*models.Message, error) {
	if message == nil {
		return nil, fmt.Errorf("message is required")
	}
	if message.ConversationID == "" || message.ProjectID == "" {
		return nil, fmt.Errorf("conversation and project ids are required")
	}
	if err := r.db.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

func (r *messageRepository) UpdateContentAndStatus(id string, content string, status string) error {
	if id == "" {
		return fmt.Errorf("message id is required")
	}
	return r.db.Model(&models.Message{}).Where("id = ?", id).
		Updates(map[string]interface{}{"content": content, "status": status}).Error
}
