package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/artur/vidfeed/internal/bot"
	"github.com/artur/vidfeed/internal/database"
	"github.com/artur/vidfeed/internal/database/repository"
	"github.com/artur/vidfeed/internal/feed"
	"github.com/artur/vidfeed/internal/handler"
	"github.com/artur/vidfeed/internal/playlist"
)

func main() {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "/data/vidfeed.db"
	}

	db, err := database.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	videoRepo := repository.NewVideoRepository(db.DB)
	subscriberRepo := repository.NewSubscriberRepository(db.DB)
	refreshLogRepo := repository.NewRefreshLogRepository(db.DB)

	fetcher, err := newFetcher()
	if err != nil {
		log.Fatal(err)
	}

	videoFeed := feed.New(fetcher, videoRepo)

	b, err := bot.New(token)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	b.RegisterHandler(handler.NewStartHandler(subscriberRepo))
	b.RegisterHandler(handler.NewVideosHandler(videoFeed))
	b.RegisterHandler(handler.NewRefreshHandler(videoFeed, videoRepo, refreshLogRepo))
	b.RegisterHandler(handler.NewStatsHandler(videoRepo, refreshLogRepo))

	ctx := context.Background()

	notifier := bot.NewNotifier(b.API(), videoFeed, subscriberRepo)
	go notifier.Run(ctx)

	// Fill the cache on startup; failures keep the previous state
	go refreshOnce(ctx, videoFeed, videoRepo, refreshLogRepo)

	if interval := os.Getenv("REFRESH_INTERVAL"); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			log.Fatalf("Invalid REFRESH_INTERVAL: %v", err)
		}
		go refreshLoop(ctx, d, videoFeed, videoRepo, refreshLogRepo)
	}

	b.Run()
}

// newFetcher picks the remote source from the environment
func newFetcher() (playlist.Fetcher, error) {
	if playlistID := os.Getenv("YOUTUBE_PLAYLIST_ID"); playlistID != "" {
		return playlist.NewYouTube(playlistID), nil
	}
	if feedURL := os.Getenv("PLAYLIST_URL"); feedURL != "" {
		return playlist.NewJSONFeed(feedURL), nil
	}
	return nil, errors.New("set YOUTUBE_PLAYLIST_ID or PLAYLIST_URL")
}

func refreshOnce(ctx context.Context, f *feed.Feed, videos *repository.VideoRepository, refreshLog *repository.RefreshLogRepository) {
	err := f.Refresh(ctx)
	if err != nil {
		log.Printf("[MAIN] Refresh failed: %v", err)
	}

	count, countErr := videos.Count(ctx)
	if countErr != nil {
		log.Printf("[MAIN] Failed to count videos: %v", countErr)
	} else if err == nil {
		log.Printf("[MAIN] Refreshed, %d videos cached", count)
	}

	var errMsg string
	if err != nil {
		errMsg = err.Error()
	}
	if logErr := refreshLog.Record(ctx, count, errMsg); logErr != nil {
		log.Printf("[MAIN] Failed to record refresh: %v", logErr)
	}
}

func refreshLoop(ctx context.Context, interval time.Duration, f *feed.Feed, videos *repository.VideoRepository, refreshLog *repository.RefreshLogRepository) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refreshOnce(ctx, f, videos, refreshLog)
		}
	}
}
