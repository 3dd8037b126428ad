// Package store is the system-level data access surface used by the message
// workflow and the agent tools. Every operation requires the shared internal
// key; callers without it are rejected before any query runs.
package store

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"polaris/internal/models"
	"polaris/internal/repositories"
)

// ErrInvalidInternalKey is returned for any call made without the configured
// shared credential.
var ErrInvalidInternalKey = errors.New("invalid internal key")

type Store struct {
	internalKey   string
	conversations repositories.ConversationRepository
	messages      repositories.MessageRepository
	files         repositories.FileNodeRepository
	projects      repositories.ProjectRepository
}

func New(internalKey string, conversations repositories.ConversationRepository, messages repositories.MessageRepository, files repositories.FileNodeRepository, projects repositories.ProjectRepository) *Store {
	return &Store{
		internalKey:   internalKey,
		conversations: conversations,
		messages:      messages,
		files:         files,
		projects:      projects,
	}
}

func (s *Store) checkKey(key string) error {
	if s.internalKey == "" || key == "" {
		return ErrInvalidInternalKey
	}
	if subtle.ConstantTimeCompare([]byte(s.internalKey), []byte(key)) != 1 {
		return ErrInvalidInternalKey
	}
	return nil
}

func (s *Store) GetConversationByID(key string, conversationID string) (*models.Conversation, error) {
	if err := s.checkKey(key); err != nil {
		return nil, err
	}
	return s.conversations.GetByID(conversationID)
}

func (s *Store) UpdateConversationTitle(key string, conversationID string, title string) error {
	if err := s.checkKey(key); err != nil {
		return err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	return s.conversations.UpdateTitle(conversationID, title)
}

// GetRecentMessages returns the most recent messages of a conversation in
// chronological (oldest-first) order.
func (s *Store) GetRecentMessages(key string, conversationID string, limit int) ([]models.Message, error) {
	if err := s.checkKey(key); err != nil {
		return nil, err
	}
	msgs, err := s.messages.ListRecentByConversation(conversationID, limit)
	if err != nil {
		return nil, err
	}
	// Repository returns newest-first; callers want transcript order.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

func (s *Store) GetMessageByID(key string, messageID string) (*models.Message, error) {
	if err := s.checkKey(key); err != nil {
		return nil, err
	}
	return s.messages.GetByID(messageID)
}

func (s *Store) CreateMessage(key string, msg *models.Message) (*models.Message, error) {
	if err := s.checkKey(key); err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, fmt.Errorf("message is required")
	}
	if msg.Role != models.MessageRoleUser && msg.Role != models.MessageRoleAssistant {
		return nil, fmt.Errorf("invalid message role: %s", msg.Role)
	}
	return s.messages.Create(msg)
}

// UpdateMessageContent writes the final content of a message and moves it to
// the given terminal status in a single update.
func (s *Store) UpdateMessageContent(key string, messageID string, content string, status string) error {
	if err := s.checkKey(key); err != nil {
		return err
	}
	if status != models.MessageStatusCompleted && status != models.MessageStatusFailed {
		return fmt.Errorf("invalid terminal status: %s", status)
	}
	return s.messages.UpdateContentAndStatus(messageID, content, status)
}

func (s *Store) GetFileByID(key string, fileID string) (*models.FileNode, error) {
	if err := s.checkKey(key); err != nil {
		return nil, err
	}
	return s.files.GetByID(fileID)
}

func (s *Store) ListFiles(key string, projectID string) ([]models.FileNode, error) {
	if err := s.checkKey(key); err != nil {
		return nil, err
	}
	return s.files.ListByProject(projectID)
}

// CreateFileNode inserts a file or folder. A non-nil parent must reference an
// existing folder in the same project; this is enforced here rather than
// trusted from the caller.
func (s *Store) CreateFileNode(key string, node *models.FileNode) (*models.FileNode, error) {
	if err := s.checkKey(key); err != nil {
		return nil, err
	}
	if node == nil {
		return nil, fmt.Errorf("node is required")
	}
	if node.ParentID != nil {
		parent, err := s.files.GetByID(*node.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, fmt.Errorf("parent folder %q not found", *node.ParentID)
		}
		if !parent.IsFolder() {
			return nil, fmt.Errorf("parent %q is not a folder", *node.ParentID)
		}
		if parent.ProjectID != node.ProjectID {
			return nil, fmt.Errorf("parent %q belongs to a different project", *node.ParentID)
		}
	}
	return s.files.Create(node)
}

func (s *Store) UpdateFileContent(key string, fileID string, content string) error {
	if err := s.checkKey(key); err != nil {
		return err
	}
	return s.files.UpdateContent(fileID, content)
}

func (s *Store) RenameFileNode(key string, fileID string, name string) error {
	if err := s.checkKey(key); err != nil {
		return err
	}
	return s.files.Rename(fileID, strings.TrimSpace(name))
}

func (s *Store) DeleteFileNode(key string, fileID string) error {
	if err := s.checkKey(key); err != nil {
		return err
	}
	return s.files.Delete(fileID)
}

func (s *Store) GetProjectByID(key string, projectID string) (*models.Project, error) {
	if err := s.checkKey(key); err != nil {
		return nil, err
	}
	return s.projects.GetByID(projectID)
}
