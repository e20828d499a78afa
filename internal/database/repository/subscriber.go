package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/artur/vidfeed/internal/database/models"
)

// SubscriberRepository handles feed notification subscriptions
type SubscriberRepository struct {
	db *sql.DB
}

// NewSubscriberRepository creates a new SubscriberRepository
func NewSubscriberRepository(db *sql.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

// Subscribe adds a chat to the notification list, updating its title if
// it is already subscribed
func (r *SubscriberRepository) Subscribe(ctx context.Context, chatID int64, title string) error {
	query := `
		INSERT INTO subscribers (chat_id, title, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(chat_id) DO UPDATE SET
			title = excluded.title
	`

	if _, err := r.db.ExecContext(ctx, query, chatID, title, time.Now()); err != nil {
		return fmt.Errorf("failed to subscribe chat %d: %w", chatID, err)
	}
	return nil
}

// Unsubscribe removes a chat from the notification list
func (r *SubscriberRepository) Unsubscribe(ctx context.Context, chatID int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM subscribers WHERE chat_id = ?", chatID); err != nil {
		return fmt.Errorf("failed to unsubscribe chat %d: %w", chatID, err)
	}
	return nil
}

// List returns all subscribed chats
func (r *SubscriberRepository) List(ctx context.Context) ([]*models.Subscriber, error) {
	query := `
		SELECT id, chat_id, title, created_at
		FROM subscribers
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer rows.Close()

	var subscribers []*models.Subscriber
	for rows.Next() {
		sub := &models.Subscriber{}
		var title sql.NullString
		if err := rows.Scan(&sub.ID, &sub.ChatID, &title, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		sub.Title = title.String
		subscribers = append(subscribers, sub)
	}

	return subscribers, rows.Err()
}
