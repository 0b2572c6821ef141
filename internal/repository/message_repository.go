package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillbridge-bd/institute-backend/internal/model"
)

// MessageRepository handles contact message data access.
type MessageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

// List returns all messages in insertion order.
func (r *MessageRepository) List(ctx context.Context) ([]model.Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, message, created_at, updated_at
		 FROM messages ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// Create inserts a new message.
func (r *MessageRepository) Create(ctx context.Context, m *model.Message) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO messages (name, email, message)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		m.Name, m.Email, m.Message,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

// Delete removes a message.
func (r *MessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.pool, "messages", id)
}
