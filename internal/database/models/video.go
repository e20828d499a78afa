package models

import "time"

// Video represents a cached playlist video, one row per URL
type Video struct {
	URL             string
	Title           string
	Author          string
	Description     string
	ThumbnailURL    string
	DurationSeconds int64
	UpdatedAt       time.Time
}
