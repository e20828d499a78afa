package models

import "time"

// Refresh represents one refresh attempt against the remote playlist
type Refresh struct {
	ID         int64
	VideoCount int64
	OK         bool
	Error      string
	ExecutedAt time.Time
}
