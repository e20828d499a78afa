// Package feed mediates between a remote playlist source and the local
// video cache. Refresh pulls the playlist and upserts it into the store;
// the cached list is exposed both as a snapshot and as a live stream
// that re-emits whenever the store changes.
package feed

import (
	"context"
	"time"

	"github.com/artur/vidfeed/internal/database/models"
	"github.com/artur/vidfeed/internal/playlist"
)

// Video is the presentation-facing shape of a cached video
type Video struct {
	Title        string
	Author       string
	Description  string
	URL          string
	ThumbnailURL string
	Duration     time.Duration
}

// Store is the slice of the local cache the feed needs
type Store interface {
	InsertAll(ctx context.Context, videos []*models.Video) error
	List(ctx context.Context) ([]*models.Video, error)
	Watch(ctx context.Context) <-chan []*models.Video
}

// Feed exposes the cached playlist and keeps it in sync with the remote
type Feed struct {
	remote playlist.Fetcher
	store  Store
}

// New creates a feed over the given remote source and local store
func New(remote playlist.Fetcher, store Store) *Feed {
	return &Feed{
		remote: remote,
		store:  store,
	}
}

// Refresh fetches the remote playlist and upserts every entry into the
// local store in one transaction. A fetch failure surfaces as
// *TransportError, a store failure as *StorageError; in both cases the
// cached list keeps its previous state (the upsert is all-or-nothing).
// Concurrent calls are not deduplicated: last write wins.
func (f *Feed) Refresh(ctx context.Context) error {
	items, err := f.remote.FetchPlaylist(ctx)
	if err != nil {
		return &TransportError{Err: err}
	}

	now := time.Now()
	records := make([]*models.Video, 0, len(items))
	for _, item := range items {
		records = append(records, toRecord(item, now))
	}

	if err := f.store.InsertAll(ctx, records); err != nil {
		return &StorageError{Err: err}
	}

	return nil
}

// Videos returns the current cached list in store order
func (f *Feed) Videos(ctx context.Context) ([]Video, error) {
	records, err := f.store.List(ctx)
	if err != nil {
		return nil, &StorageError{Err: err}
	}
	return toDomain(records), nil
}

// Watch returns a channel carrying the current cached list immediately
// and an updated list after every committed write. The channel closes
// when ctx ends.
func (f *Feed) Watch(ctx context.Context) <-chan []Video {
	src := f.store.Watch(ctx)
	out := make(chan []Video, 1)

	go func() {
		defer close(out)
		for records := range src {
			out <- toDomain(records)
		}
	}()

	return out
}

// toRecord converts a remote playlist entry into its stored form
func toRecord(item playlist.Video, now time.Time) *models.Video {
	return &models.Video{
		URL:             item.URL,
		Title:           item.Title,
		Author:          item.Author,
		Description:     item.Description,
		ThumbnailURL:    item.ThumbnailURL,
		DurationSeconds: int64(item.Duration / time.Second),
		UpdatedAt:       now,
	}
}

// toDomain projects stored records onto the presentation shape
func toDomain(records []*models.Video) []Video {
	videos := make([]Video, 0, len(records))
	for _, rec := range records {
		videos = append(videos, Video{
			Title:        rec.Title,
			Author:       rec.Author,
			Description:  rec.Description,
			URL:          rec.URL,
			ThumbnailURL: rec.ThumbnailURL,
			Duration:     time.Duration(rec.DurationSeconds) * time.Second,
		})
	}
	return videos
}
