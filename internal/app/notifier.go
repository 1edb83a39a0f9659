// internal/app/notifier.go
package app

import (
	"context"

	"homework_status_bot/internal/domain/notification"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Notifier delivers messages to the configured chat. Delivery failures are
// logged and dropped: a broken chat must never stop polling.
type Notifier struct {
	telegramClient domainTelegram.Client
	chatID         string
	limiter        *rate.Limiter // nil disables rate limiting
	journal        notification.Journal
	logger         *logrus.Logger
}

func NewNotifier(
	tc domainTelegram.Client,
	chatID string,
	limiter *rate.Limiter,
	journal notification.Journal,
	logger *logrus.Logger,
) *Notifier {
	if journal == nil {
		journal = notification.NopJournal{}
	}
	return &Notifier{
		telegramClient: tc,
		chatID:         chatID,
		limiter:        limiter,
		journal:        journal,
		logger:         logger,
	}
}

// Notify sends text to the chat. It never fails outward.
func (n *Notifier) Notify(ctx context.Context, cycleID string, kind notification.Kind, text string) {
	log := n.logger.WithFields(logrus.Fields{"cycle_id": cycleID, "kind": kind, "chat_id": n.chatID})
	entry := &notification.Entry{CycleID: cycleID, Kind: kind, Text: text}

	err := n.send(ctx, text)
	if err != nil {
		log.WithError(err).Error("Failed to send message to Telegram")
		entry.Error = err.Error()
	} else {
		log.Debug("Message sent to Telegram")
		entry.Delivered = true
	}

	if err := n.journal.Record(ctx, entry); err != nil {
		log.WithError(err).Warn("Failed to record notification in journal")
	}
}

func (n *Notifier) send(ctx context.Context, text string) error {
	if n.limiter != nil {
		if err := n.limiter.Wait(ctx); err != nil {
			return err
		}
	}
	return n.telegramClient.SendMessage(n.chatID, text)
}
