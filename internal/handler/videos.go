package handler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/artur/vidfeed/internal/feed"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// maxListedVideos caps the /videos reply to keep it under Telegram's
// message size limit
const maxListedVideos = 50

type VideosHandler struct {
	feed *feed.Feed
}

func NewVideosHandler(f *feed.Feed) *VideosHandler {
	return &VideosHandler{
		feed: f,
	}
}

func (h *VideosHandler) CanHandle(update tgbotapi.Update) bool {
	return update.Message != nil && update.Message.IsCommand() && update.Message.Command() == "videos"
}

func (h *VideosHandler) Handle(bot *tgbotapi.BotAPI, update tgbotapi.Update) {
	chatID := update.Message.Chat.ID

	videos, err := h.feed.Videos(context.Background())
	if err != nil {
		log.Printf("[VIDEOS] Failed to list videos: %v", err)
		msg := tgbotapi.NewMessage(chatID, "Could not read the video cache: "+err.Error())
		bot.Send(msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, formatVideoList(videos))
	msg.DisableWebPagePreview = true
	if _, err := bot.Send(msg); err != nil {
		log.Printf("[VIDEOS] Failed to send message: %v", err)
	}
}

func formatVideoList(videos []feed.Video) string {
	if len(videos) == 0 {
		return "The cache is empty. Send /refresh to pull the playlist."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Cached videos (%d):\n", len(videos))
	for i, v := range videos {
		if i == maxListedVideos {
			fmt.Fprintf(&b, "... and %d more", len(videos)-maxListedVideos)
			break
		}
		fmt.Fprintf(&b, "%d. %s\n%s\n", i+1, v.Title, v.URL)
	}
	return strings.TrimRight(b.String(), "\n")
}
