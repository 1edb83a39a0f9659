package telegram

// Client sends plain text messages to a Telegram chat.
// chatID is passed to the Bot API as is: a numeric id or an @channel username.
// The app layer depends on this instead of the bot library.
type Client interface {
	SendMessage(chatID string, text string) error
}
