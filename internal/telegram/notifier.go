// Package telegram pushes complaint feed events to a Telegram chat so the
// duty authority hears about new reports without watching the dashboard.
package telegram

import (
	"encoding/json"
	"fmt"
	"log"

	"greensentinel/backend/internal/models"
	"greensentinel/backend/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier relays feed events to one configured chat. It consumes its own
// Pub/Sub subscription, independent of the WebSocket hub.
type Notifier struct {
	bot     *tgbotapi.BotAPI
	chatID  int64
	storage *storage.Service
}

// NewNotifier authenticates the bot. Returns an error if the token is
// rejected by the Telegram API.
func NewNotifier(token string, chatID int64, s *storage.Service) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth failed: %w", err)
	}
	log.Printf("Telegram notifier authorized as @%s", bot.Self.UserName)

	return &Notifier{bot: bot, chatID: chatID, storage: s}, nil
}

// Run subscribes to the complaint feed and relays events until the process
// exits. Meant to run as a goroutine.
func (n *Notifier) Run() {
	pubsub := n.storage.SubscribeComplaintEvents()
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var event models.ComplaintEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("Telegram notifier: bad feed payload: %v", err)
			continue
		}

		text := formatEvent(event)
		if text == "" {
			continue
		}
		if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
			log.Printf("Telegram notifier: send failed: %v", err)
		}
	}
}

func formatEvent(event models.ComplaintEvent) string {
	switch event.Kind {
	case models.EventComplaintCreated:
		return fmt.Sprintf("New %s complaint in %s\n%s", event.Type, event.Region, event.Address)
	case models.EventStatusChanged:
		return fmt.Sprintf("Complaint %s (%s, %s) moved to %s", event.ComplaintID, event.Type, event.Region, event.Status)
	}
	return ""
}
