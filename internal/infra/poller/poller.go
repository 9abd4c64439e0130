package poller

import (
	"fmt"
	"time"

	"gopkg.in/telebot.v4"

	"github.com/runkwell/telegram-quiz-bot/internal/infra/config"
)

// NewPoller создает Poller в зависимости от режима работы бота:
// вебхук или лонгпуллинг.
func NewPoller(cfg *config.Config) (telebot.Poller, error) {
	if cfg.TelegramBot.Mode == "webhook" {
		if cfg.TelegramBot.WebhookURL == "" {
			return nil, fmt.Errorf("webhook mode requires webhook_url (WEBHOOK_URL)")
		}
		return &telebot.Webhook{
			Listen: cfg.TelegramBot.ListenAddr,
			Endpoint: &telebot.WebhookEndpoint{
				PublicURL: cfg.TelegramBot.WebhookURL,
			},
		}, nil
	}
	return &telebot.LongPoller{
		Timeout: time.Duration(cfg.TelegramBot.PollInterval) * time.Second,
	}, nil
}
