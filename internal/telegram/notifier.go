package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier hands formatted recommendation and digest messages to the
// Telegram transport. Failures are returned to the caller and never retried
// here.
type Notifier struct {
	s         sender
	parseMode string
}

func (n *Notifier) Send(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if n.parseMode != "" {
		msg.ParseMode = n.parseMode
	}
	if _, err := n.s.Send(msg); err != nil {
		return fmt.Errorf("send to chat %d: %w", chatID, err)
	}
	return nil
}
