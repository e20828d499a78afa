package handler

import (
	"context"
	"log"

	"github.com/artur/vidfeed/internal/database/repository"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type StartHandler struct {
	subscribers *repository.SubscriberRepository
}

func NewStartHandler(subscribers *repository.SubscriberRepository) *StartHandler {
	return &StartHandler{
		subscribers: subscribers,
	}
}

func (h *StartHandler) CanHandle(update tgbotapi.Update) bool {
	if update.Message == nil || !update.Message.IsCommand() {
		return false
	}
	cmd := update.Message.Command()
	return cmd == "start" || cmd == "stop"
}

func (h *StartHandler) Handle(bot *tgbotapi.BotAPI, update tgbotapi.Update) {
	ctx := context.Background()
	chatID := update.Message.Chat.ID

	var text string
	switch update.Message.Command() {
	case "start":
		if err := h.subscribers.Subscribe(ctx, chatID, chatTitle(update.Message.Chat)); err != nil {
			log.Printf("[START] Failed to subscribe chat %d: %v", chatID, err)
			text = "Could not subscribe this chat, try again later."
		} else {
			log.Printf("[START] Subscribed chat %d", chatID)
			text = "Subscribed! You will be notified when the playlist changes.\n" +
				"Commands: /videos /refresh /stats /stop"
		}
	case "stop":
		if err := h.subscribers.Unsubscribe(ctx, chatID); err != nil {
			log.Printf("[START] Failed to unsubscribe chat %d: %v", chatID, err)
			text = "Could not unsubscribe this chat, try again later."
		} else {
			log.Printf("[START] Unsubscribed chat %d", chatID)
			text = "Unsubscribed. Send /start to subscribe again."
		}
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := bot.Send(msg); err != nil {
		log.Printf("[START] Failed to send message: %v", err)
	}
}

func chatTitle(chat *tgbotapi.Chat) string {
	if chat.Title != "" {
		return chat.Title
	}
	if chat.UserName != "" {
		return chat.UserName
	}
	return chat.FirstName
}
