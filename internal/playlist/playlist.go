package playlist

import (
	"context"
	"time"
)

// Video is one playlist entry as the remote source reports it
type Video struct {
	ID           string
	Title        string
	Author       string
	Description  string
	URL          string
	ThumbnailURL string
	Duration     time.Duration
}

// Fetcher fetches the current state of a remote playlist
type Fetcher interface {
	FetchPlaylist(ctx context.Context) ([]Video, error)
}
