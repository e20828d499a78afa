package bot

import (
	"context"
	"fmt"
	"log"

	"github.com/artur/vidfeed/internal/database/repository"
	"github.com/artur/vidfeed/internal/feed"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier pushes a message to every subscribed chat whenever the
// cached video list changes
type Notifier struct {
	api         *tgbotapi.BotAPI
	feed        *feed.Feed
	subscribers *repository.SubscriberRepository
}

func NewNotifier(api *tgbotapi.BotAPI, f *feed.Feed, subscribers *repository.SubscriberRepository) *Notifier {
	return &Notifier{
		api:         api,
		feed:        f,
		subscribers: subscribers,
	}
}

// Run blocks until ctx ends, forwarding feed changes to subscribers.
// The first emission is the snapshot that exists at subscribe time and
// is not announced.
func (n *Notifier) Run(ctx context.Context) {
	updates := n.feed.Watch(ctx)

	first := true
	for videos := range updates {
		if first {
			first = false
			continue
		}
		n.broadcast(ctx, len(videos))
	}
}

func (n *Notifier) broadcast(ctx context.Context, videoCount int) {
	subscribers, err := n.subscribers.List(ctx)
	if err != nil {
		log.Printf("[NOTIFY] Failed to list subscribers: %v", err)
		return
	}

	if len(subscribers) == 0 {
		return
	}

	text := fmt.Sprintf("Playlist updated: %d videos cached. Send /videos to see the list.", videoCount)
	for _, sub := range subscribers {
		msg := tgbotapi.NewMessage(sub.ChatID, text)
		if _, err := n.api.Send(msg); err != nil {
			log.Printf("[NOTIFY] Failed to notify chat %d: %v", sub.ChatID, err)
		}
	}
}
