package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

const (
	MessageStatusProcessing = "processing"
	MessageStatusCompleted  = "completed"
	MessageStatusFailed     = "failed"
)

type Message struct {
	ID             string `gorm:"primaryKey;size:36"`
	ConversationID string `gorm:"size:36;not null;index"`
	ProjectID      string `gorm:"size:36;not null;index"`
	Role           string `gorm:"size:16;not null"`
	Content        string `gorm:"type:text"`
	Status         string `gorm:"size:16;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Status == "" {
		m.Status = MessageStatusCompleted
	}
	return nil
}
