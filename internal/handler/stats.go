package handler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/artur/vidfeed/internal/database/models"
	"github.com/artur/vidfeed/internal/database/repository"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type StatsHandler struct {
	videos     *repository.VideoRepository
	refreshLog *repository.RefreshLogRepository
}

func NewStatsHandler(videos *repository.VideoRepository, refreshLog *repository.RefreshLogRepository) *StatsHandler {
	return &StatsHandler{
		videos:     videos,
		refreshLog: refreshLog,
	}
}

func (h *StatsHandler) CanHandle(update tgbotapi.Update) bool {
	return update.Message != nil && update.Message.IsCommand() && update.Message.Command() == "stats"
}

func (h *StatsHandler) Handle(bot *tgbotapi.BotAPI, update tgbotapi.Update) {
	ctx := context.Background()
	chatID := update.Message.Chat.ID

	videoCount, err := h.videos.Count(ctx)
	if err != nil {
		log.Printf("[STATS] Failed to count videos: %v", err)
	}

	total, failed, err := h.refreshLog.Counts(ctx)
	if err != nil {
		log.Printf("[STATS] Failed to read refresh counts: %v", err)
	}

	last, err := h.refreshLog.Last(ctx)
	if err != nil {
		log.Printf("[STATS] Failed to read last refresh: %v", err)
	}

	msg := tgbotapi.NewMessage(chatID, formatStats(videoCount, total, failed, last))
	if _, err := bot.Send(msg); err != nil {
		log.Printf("[STATS] Failed to send message: %v", err)
	}
}

func formatStats(videoCount, total, failed int64, last *models.Refresh) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Cached videos: %d\n", videoCount)
	fmt.Fprintf(&b, "Refreshes: %d (%d failed)", total, failed)
	if last != nil {
		status := "ok"
		if !last.OK {
			status = "failed"
		}
		fmt.Fprintf(&b, "\nLast refresh: %s (%s)", last.ExecutedAt.Format("2006-01-02 15:04:05"), status)
	}
	return b.String()
}
