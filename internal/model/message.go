package model

import (
	"time"

	"github.com/google/uuid"
)

// Message is a contact form submission.
type Message struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MessageView is the client-facing shape of a Message.
type MessageView struct {
	ID        string    `json:"id"`
	LegacyID  string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// View maps a message to its client representation.
func (m *Message) View() MessageView {
	id := m.ID.String()
	return MessageView{
		ID:        id,
		LegacyID:  id,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CreateMessageRequest is the payload of the public contact form.
type CreateMessageRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Message string `json:"message" binding:"required,max=5000"`
}
