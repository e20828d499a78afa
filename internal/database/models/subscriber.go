package models

import "time"

// Subscriber represents a chat subscribed to feed notifications
type Subscriber struct {
	ID        int64
	ChatID    int64
	Title     string
	CreatedAt time.Time
}
