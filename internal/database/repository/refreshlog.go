package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/artur/vidfeed/internal/database/models"
)

// RefreshLogRepository records the outcome of refresh attempts
type RefreshLogRepository struct {
	db *sql.DB
}

// NewRefreshLogRepository creates a new RefreshLogRepository
func NewRefreshLogRepository(db *sql.DB) *RefreshLogRepository {
	return &RefreshLogRepository{db: db}
}

// Record stores one refresh attempt. errMsg is empty on success.
func (r *RefreshLogRepository) Record(ctx context.Context, videoCount int64, errMsg string) error {
	query := `INSERT INTO refresh_log (video_count, ok, error, executed_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, videoCount, errMsg == "", errMsg, time.Now())
	if err != nil {
		return fmt.Errorf("failed to record refresh: %w", err)
	}
	return nil
}

// Counts returns total and failed refresh counts
func (r *RefreshLogRepository) Counts(ctx context.Context) (total, failed int64, err error) {
	if err = r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM refresh_log").Scan(&total); err != nil {
		return 0, 0, fmt.Errorf("failed to count refreshes: %w", err)
	}
	if err = r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM refresh_log WHERE ok = 0").Scan(&failed); err != nil {
		return 0, 0, fmt.Errorf("failed to count failed refreshes: %w", err)
	}
	return total, failed, nil
}

// Last returns the most recent refresh attempt, or nil if none exist
func (r *RefreshLogRepository) Last(ctx context.Context) (*models.Refresh, error) {
	query := `
		SELECT id, video_count, ok, error, executed_at
		FROM refresh_log
		ORDER BY id DESC
		LIMIT 1
	`

	refresh := &models.Refresh{}
	var errMsg sql.NullString
	err := r.db.QueryRowContext(ctx, query).Scan(
		&refresh.ID,
		&refresh.VideoCount,
		&refresh.OK,
		&errMsg,
		&refresh.ExecutedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last refresh: %w", err)
	}

	refresh.Error = errMsg.String
	return refresh, nil
}
