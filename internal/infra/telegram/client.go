// internal/infra/telegram/client.go
package telegram

import (
	"fmt"
	"net/http"

	"gopkg.in/telebot.v3"
)

// TelebotAdapter implements the domain Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

// NewBot creates a send-only bot. It is offline: no getMe call and no long polling.
func NewBot(token string, httpClient *http.Client) (*telebot.Bot, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:   token,
		Offline: true,
		Client:  httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return bot, nil
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// chatRecipient addresses a chat by numeric id or @username.
type chatRecipient string

func (c chatRecipient) Recipient() string { return string(c) }

// SendMessage sends a text message to the chat with the given ID.
func (tba *TelebotAdapter) SendMessage(chatID string, text string) error {
	_, err := tba.bot.Send(chatRecipient(chatID), text, &telebot.SendOptions{ParseMode: telebot.ModeDefault})
	return err
}
