package playlist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// jsonFeedResponse is the playlist document served by a JSON feed endpoint
type jsonFeedResponse struct {
	Videos []jsonFeedVideo `json:"videos"`
}

// jsonFeedVideo is a single entry of the playlist document
type jsonFeedVideo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Thumbnail   string `json:"thumbnail"`
}

// JSONFeed fetches a playlist published as a JSON document over HTTP
type JSONFeed struct {
	client *http.Client
	url    string
}

// NewJSONFeed creates a fetcher for the given feed URL
func NewJSONFeed(url string) *JSONFeed {
	return &JSONFeed{
		client: http.DefaultClient,
		url:    url,
	}
}

// NewJSONFeedWithClient creates a fetcher with a custom HTTP client
func NewJSONFeedWithClient(url string, client *http.Client) *JSONFeed {
	return &JSONFeed{
		client: client,
		url:    url,
	}
}

func (f *JSONFeed) FetchPlaylist(ctx context.Context) ([]Video, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	var doc jsonFeedResponse
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}

	videos := make([]Video, 0, len(doc.Videos))
	for _, v := range doc.Videos {
		videos = append(videos, Video{
			Title:        v.Title,
			Description:  v.Description,
			URL:          v.URL,
			ThumbnailURL: v.Thumbnail,
		})
	}

	return videos, nil
}
