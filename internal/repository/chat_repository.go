package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/farmsight/server/internal/models"
)

func (r *PostgresRepository) CreateChatMessage(ctx context.Context, msg *models.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (id, user_id, message, response, timestamp)
		VALUES ($1, $2, $3, $4, $5)
	`

	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, query,
		msg.ID, msg.UserID, msg.Message, msg.Response, msg.Timestamp)

	return err
}

// GetRecentChatMessages returns the user's latest exchanges, newest first.
func (r *PostgresRepository) GetRecentChatMessages(ctx context.Context, userID string, limit int) ([]models.ChatMessage, error) {
	query := `SELECT * FROM chat_messages WHERE user_id = $1 ORDER BY timestamp DESC LIMIT $2`

	messages := []models.ChatMessage{}
	err := r.db.SelectContext(ctx, &messages, query, userID, limit)
	if err != nil {
		return nil, err
	}

	return messages, nil
}
