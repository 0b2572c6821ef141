package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/skillbridge-bd/institute-backend/internal/model"
)

// MessageStore persists contact messages.
type MessageStore interface {
	List(ctx context.Context) ([]model.Message, error)
	Create(ctx context.Context, m *model.Message) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MessageService handles contact form messages.
type MessageService struct {
	store MessageStore
}

// NewMessageService creates a new MessageService.
func NewMessageService(store MessageStore) *MessageService {
	return &MessageService{store: store}
}

// List returns messages in the order they were received.
func (s *MessageService) List(ctx context.Context) ([]model.Message, error) {
	return s.store.List(ctx)
}

// Create stores a contact form submission.
func (s *MessageService) Create(ctx context.Context, req model.CreateMessageRequest) (*model.Message, error) {
	m := &model.Message{Name: req.Name, Email: req.Email, Message: req.Message}
	if err := s.store.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes a message. Returns repository.ErrNotFound when absent.
func (s *MessageService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}
