package mocks

import (
	"polaris/internal/models"
)

type MessageRepositoryMock struct {
	GetByIDFunc                  func(id string) (*models.Message, error)
	ListRecentByConversationFunc func(conversationID string, limit int) ([]models.Message, error)
	CreateFunc                   func(message *models.Message) (*models.Message, error)
	UpdateContentAndStatusFunc   func(id string, content string, status string) error
}

func (m *MessageRepositoryMock) GetByID(id string) (*models.Message, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, nil
}

func (m *MessageRepositoryMock) ListRecentByConversation(conversationID string, limit int) ([]models.Message, error) {
	if m.ListRecentByConversationFunc != nil {
		return m.ListRecentByConversationFunc(conversationID, limit)
	}
	return []models.Message{}, nil
}

func (m *MessageRepositoryMock) Create(message *models.Message) (*models.Message, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(message)
	}
	return message, nil
}

func (m *MessageRepositoryMock) UpdateContentAndStatus(id string, content string, status string) error {
	if m.UpdateContentAndStatusFunc != nil {
		return m.UpdateContentAndStatusFunc(id, content, status)
	}
	return nil
}
