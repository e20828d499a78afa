package handler

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/artur/vidfeed/internal/database/repository"
	"github.com/artur/vidfeed/internal/feed"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type RefreshHandler struct {
	feed       *feed.Feed
	videos     *repository.VideoRepository
	refreshLog *repository.RefreshLogRepository
}

func NewRefreshHandler(f *feed.Feed, videos *repository.VideoRepository, refreshLog *repository.RefreshLogRepository) *RefreshHandler {
	return &RefreshHandler{
		feed:       f,
		videos:     videos,
		refreshLog: refreshLog,
	}
}

func (h *RefreshHandler) CanHandle(update tgbotapi.Update) bool {
	return update.Message != nil && update.Message.IsCommand() && update.Message.Command() == "refresh"
}

func (h *RefreshHandler) Handle(bot *tgbotapi.BotAPI, update tgbotapi.Update) {
	ctx := context.Background()
	chatID := update.Message.Chat.ID

	bot.Send(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))

	err := h.feed.Refresh(ctx)

	count, countErr := h.videos.Count(ctx)
	if countErr != nil {
		log.Printf("[REFRESH] Failed to count videos: %v", countErr)
	}

	var errMsg string
	if err != nil {
		errMsg = err.Error()
	}
	if logErr := h.refreshLog.Record(ctx, count, errMsg); logErr != nil {
		log.Printf("[REFRESH] Failed to record refresh: %v", logErr)
	}

	msg := tgbotapi.NewMessage(chatID, formatRefreshResult(err, count))
	if _, sendErr := bot.Send(msg); sendErr != nil {
		log.Printf("[REFRESH] Failed to send message: %v", sendErr)
	}
}

func formatRefreshResult(err error, count int64) string {
	if err == nil {
		return fmt.Sprintf("Refreshed. %d videos cached.", count)
	}

	var transportErr *feed.TransportError
	if errors.As(err, &transportErr) {
		return "Could not reach the playlist source. The cached list is unchanged."
	}

	var storageErr *feed.StorageError
	if errors.As(err, &storageErr) {
		return "Fetched the playlist but failed to store it: " + err.Error()
	}

	return "Refresh failed: " + err.Error()
}
