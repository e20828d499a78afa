package playlist

import (
	"testing"

	"github.com/kkdai/youtube/v2"
)

func TestWatchURL(t *testing.T) {
	got := watchURL("dQw4w9WgXcQ")
	want := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	if got != want {
		t.Errorf("watchURL() = %q, want %q", got, want)
	}
}

func TestLargestThumbnail(t *testing.T) {
	tests := []struct {
		name       string
		thumbnails youtube.Thumbnails
		expected   string
	}{
		{
			name:       "empty list",
			thumbnails: nil,
			expected:   "",
		},
		{
			name: "single thumbnail",
			thumbnails: youtube.Thumbnails{
				{URL: "small.jpg", Width: 120},
			},
			expected: "small.jpg",
		},
		{
			name: "picks widest",
			thumbnails: youtube.Thumbnails{
				{URL: "small.jpg", Width: 120},
				{URL: "large.jpg", Width: 1280},
				{URL: "medium.jpg", Width: 640},
			},
			expected: "large.jpg",
		},
		{
			name: "skips entries without URL",
			thumbnails: youtube.Thumbnails{
				{URL: "", Width: 1280},
				{URL: "medium.jpg", Width: 640},
			},
			expected: "medium.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := largestThumbnail(tt.thumbnails)
			if got != tt.expected {
				t.Errorf("largestThumbnail() = %q, want %q", got, tt.expected)
			}
		})
	}
}
