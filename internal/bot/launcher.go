// Package bot implements the Telegram launcher: its only job is to
// answer /start with a button that opens the web front end. It never
// calls the trivia HTTP API.
package bot

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const startGreeting = "Welcome to Trivia Battle! Tap the button below to open the mini app."

// Launcher long-polls Telegram and replies to /start commands.
type Launcher struct {
	api       *tgbotapi.BotAPI
	webAppURL string
}

func NewLauncher(token, webAppURL string) (*Launcher, error) {
	if token == "" {
		return nil, fmt.Errorf("bot token not configured")
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}
	return &Launcher{api: api, webAppURL: webAppURL}, nil
}

// Run polls for updates until ctx is cancelled.
func (l *Launcher) Run(ctx context.Context) error {
	log.Printf("launcher bot running as @%s", l.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := l.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			l.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			if update.Message.Command() != "start" {
				continue
			}
			msg := startMessage(update.Message.Chat.ID, l.webAppURL)
			if _, err := l.api.Send(msg); err != nil {
				log.Printf("send start reply: %v", err)
			}
		}
	}
}

// The library's tagged releases predate Bot API 6.0 web-app buttons,
// so the reply markup is built from local types that marshal to the
// wire shape the Bot API expects.
type webAppInfo struct {
	URL string `json:"url"`
}

type webAppButton struct {
	Text   string     `json:"text"`
	WebApp webAppInfo `json:"web_app"`
}

type inlineKeyboard struct {
	InlineKeyboard [][]webAppButton `json:"inline_keyboard"`
}

func startMessage(chatID int64, webAppURL string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, startGreeting)
	msg.ReplyMarkup = inlineKeyboard{
		InlineKeyboard: [][]webAppButton{{
			{Text: "🎮 Play", WebApp: webAppInfo{URL: webAppURL}},
		}},
	}
	return msg
}
