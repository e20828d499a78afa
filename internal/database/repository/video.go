package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"

	"github.com/artur/vidfeed/internal/database/models"
)

// VideoRepository handles cached video persistence and exposes the
// videos table as a live query: watchers receive a fresh snapshot
// after every committed write.
type VideoRepository struct {
	db *sql.DB

	mu       sync.Mutex
	watchers map[chan []*models.Video]struct{}
}

// NewVideoRepository creates a new VideoRepository
func NewVideoRepository(db *sql.DB) *VideoRepository {
	return &VideoRepository{
		db:       db,
		watchers: make(map[chan []*models.Video]struct{}),
	}
}

// InsertAll upserts all given videos in a single transaction, keyed by URL.
// Existing rows keep their position in the table; only their fields are
// updated. On commit, watchers are notified with the new snapshot.
func (r *VideoRepository) InsertAll(ctx context.Context, videos []*models.Video) error {
	if len(videos) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO videos (url, title, author, description, thumbnail_url, duration_seconds, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			author = excluded.author,
			description = excluded.description,
			thumbnail_url = excluded.thumbnail_url,
			duration_seconds = excluded.duration_seconds,
			updated_at = excluded.updated_at
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, video := range videos {
		if _, err := stmt.ExecContext(ctx,
			video.URL,
			video.Title,
			video.Author,
			video.Description,
			video.ThumbnailURL,
			video.DurationSeconds,
			video.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to upsert video %s: %w", video.URL, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit upsert: %w", err)
	}

	r.notify(ctx)
	return nil
}

// List returns all cached videos in insertion order
func (r *VideoRepository) List(ctx context.Context) ([]*models.Video, error) {
	query := `
		SELECT url, title, author, description, thumbnail_url, duration_seconds, updated_at
		FROM videos
		ORDER BY rowid
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	defer rows.Close()

	var videos []*models.Video
	for rows.Next() {
		video := &models.Video{}
		var author, description, thumbnailURL sql.NullString
		if err := rows.Scan(
			&video.URL,
			&video.Title,
			&author,
			&description,
			&thumbnailURL,
			&video.DurationSeconds,
			&video.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		video.Author = author.String
		video.Description = description.String
		video.ThumbnailURL = thumbnailURL.String
		videos = append(videos, video)
	}

	return videos, rows.Err()
}

// Count returns the number of cached videos
func (r *VideoRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM videos").Scan(&count)
	return count, err
}

// Watch returns a channel that carries the current snapshot immediately
// and the latest snapshot after every committed write. Each watcher
// channel is conflated: a slow receiver never blocks a write and always
// sees the newest state next. The channel is closed when ctx ends.
func (r *VideoRepository) Watch(ctx context.Context) <-chan []*models.Video {
	ch := make(chan []*models.Video, 1)

	r.mu.Lock()
	r.watchers[ch] = struct{}{}
	r.mu.Unlock()

	// Initial snapshot; if a concurrent write already queued a newer
	// one, keep that instead
	if snapshot, err := r.List(ctx); err == nil {
		select {
		case ch <- snapshot:
		default:
		}
	} else {
		log.Printf("[VIDEOS] Failed to load initial snapshot: %v", err)
	}

	go func() {
		<-ctx.Done()
		r.mu.Lock()
		delete(r.watchers, ch)
		r.mu.Unlock()
		close(ch)
	}()

	return ch
}

// notify pushes the current snapshot to every registered watcher
func (r *VideoRepository) notify(ctx context.Context) {
	snapshot, err := r.List(ctx)
	if err != nil {
		log.Printf("[VIDEOS] Failed to load snapshot for watchers: %v", err)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for ch := range r.watchers {
		select {
		case ch <- snapshot:
		default:
			// Drop the stale pending snapshot, keep the newest
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}
