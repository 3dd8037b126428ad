package mocks

import (
	"polaris/internal/models"
)

type ConversationRepositoryMock struct {
	GetByIDFunc       func(id string) (*models.Conversation, error)
	ListByProjectFunc func(projectID string) ([]models.Conversation, error)
	CreateFunc        func(conversation *models.Conversation) (*models.Conversation, error)
	UpdateTitleFunc   func(id string, title string) error
}

func (m *ConversationRepositoryMock) GetByID(id string) (*models.Conversation, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, nil
}

func (m *ConversationRepositoryMock) ListByProject(projectID string) ([]models.Conversation, error) {
	if m.ListByProjectFunc != nil {
		return m.ListByProjectFunc(projectID)
	}
	return []models.Conversation{}, nil
}

func (m *ConversationRepositoryMock) Create(conversation *models.Conversation) (*models.Conversation, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(conversation)
	}
	return conversation, nil
}

func (m *ConversationRepositoryMock) UpdateTitle(id string, title string) error {
	if m.UpdateTitleFunc != nil {
		return m.UpdateTitleFunc(id, title)
	}
	return nil
}
