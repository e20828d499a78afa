package playlist

import (
	"context"
	"fmt"

	"github.com/kkdai/youtube/v2"
)

// YouTube fetches playlist entries through the YouTube web API
type YouTube struct {
	client     youtube.Client
	playlistID string
}

// NewYouTube creates a fetcher for the given playlist ID or URL
func NewYouTube(playlistID string) *YouTube {
	return &YouTube{
		client:     youtube.Client{},
		playlistID: playlistID,
	}
}

func (f *YouTube) FetchPlaylist(ctx context.Context) ([]Video, error) {
	pl, err := f.client.GetPlaylistContext(ctx, f.playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist %s: %w", f.playlistID, err)
	}

	videos := make([]Video, 0, len(pl.Videos))
	for _, entry := range pl.Videos {
		videos = append(videos, Video{
			ID:           entry.ID,
			Title:        entry.Title,
			Author:       entry.Author,
			URL:          watchURL(entry.ID),
			ThumbnailURL: largestThumbnail(entry.Thumbnails),
			Duration:     entry.Duration,
		})
	}

	return videos, nil
}

func watchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// largestThumbnail picks the widest available thumbnail
func largestThumbnail(thumbnails youtube.Thumbnails) string {
	var url string
	var width uint
	for _, t := range thumbnails {
		if t.URL != "" && (url == "" || t.Width > width) {
			url = t.URL
			width = t.Width
		}
	}
	return url
}
