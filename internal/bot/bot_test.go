package bot

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MockHandler implements Handler interface for testing
type MockHandler struct {
	canHandleFunc func(update tgbotapi.Update) bool
	handleFunc    func(bot *tgbotapi.BotAPI, update tgbotapi.Update)
}

func (m *MockHandler) CanHandle(update tgbotapi.Update) bool {
	if m.canHandleFunc != nil {
		return m.canHandleFunc(update)
	}
	return false
}

func (m *MockHandler) Handle(bot *tgbotapi.BotAPI, update tgbotapi.Update) {
	if m.handleFunc != nil {
		m.handleFunc(bot, update)
	}
}

func TestBot_RegisterHandler(t *testing.T) {
	// NewBotAPI needs a live token, so exercise registration directly
	bot := &Bot{
		handlers: make([]Handler, 0),
	}

	if len(bot.handlers) != 0 {
		t.Errorf("Expected 0 handlers initially, got %d", len(bot.handlers))
	}

	handler1 := &MockHandler{}
	bot.RegisterHandler(handler1)

	if len(bot.handlers) != 1 {
		t.Errorf("Expected 1 handler after first registration, got %d", len(bot.handlers))
	}

	handler2 := &MockHandler{}
	bot.RegisterHandler(handler2)

	if len(bot.handlers) != 2 {
		t.Errorf("Expected 2 handlers after second registration, got %d", len(bot.handlers))
	}

	// Dispatch order follows registration order
	if bot.handlers[0] != handler1 {
		t.Error("First handler should be handler1")
	}
	if bot.handlers[1] != handler2 {
		t.Error("Second handler should be handler2")
	}
}

func TestBot_DispatchPicksFirstMatch(t *testing.T) {
	bot := &Bot{
		handlers: make([]Handler, 0),
	}

	firstCalled := false
	secondCalled := false

	bot.RegisterHandler(&MockHandler{
		canHandleFunc: func(update tgbotapi.Update) bool {
			return update.Message != nil && update.Message.Text == "match"
		},
		handleFunc: func(api *tgbotapi.BotAPI, update tgbotapi.Update) {
			firstCalled = true
		},
	})
	bot.RegisterHandler(&MockHandler{
		canHandleFunc: func(update tgbotapi.Update) bool {
			return true
		},
		handleFunc: func(api *tgbotapi.BotAPI, update tgbotapi.Update) {
			secondCalled = true
		},
	})

	update := tgbotapi.Update{Message: &tgbotapi.Message{Text: "match"}}

	// Same dispatch logic as Run, minus the update channel
	for _, h := range bot.handlers {
		if h.CanHandle(update) {
			h.Handle(bot.api, update)
			break
		}
	}

	if !firstCalled {
		t.Error("Expected first matching handler to run")
	}
	if secondCalled {
		t.Error("Expected dispatch to stop at the first match")
	}
}
