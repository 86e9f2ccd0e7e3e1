// Package delivery sends the finished briefing to a Telegram channel, with
// a plain-text retry when the rich-markup send is rejected.
package delivery

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ternarybob/arbor"
)

// Outcome records how a delivery attempt ended.
type Outcome struct {
	Delivered             bool
	UsedPlainTextFallback bool
}

// sender is the slice of the bot API the notifier uses; *tgbotapi.BotAPI
// satisfies it.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier delivers briefings to one Telegram chat or channel.
type Notifier struct {
	bot     sender
	chatID  int64
	channel string // @channelname form, used when chatID is unset
	logger  arbor.ILogger
}

// NewNotifier validates the Telegram credentials and connects the bot.
// Missing credentials return an error; the run degrades to log-only.
func NewNotifier(botToken, channelID string, logger arbor.ILogger) (*Notifier, error) {
	if botToken == "" || channelID == "" {
		return nil, errors.New("TELEGRAM_BOT_TOKEN or TELEGRAM_CHANNEL_ID not found")
	}

	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}

	n := &Notifier{bot: bot, logger: logger}
	if strings.HasPrefix(channelID, "@") {
		n.channel = channelID
	} else {
		id, err := strconv.ParseInt(channelID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid telegram channel id %q: %w", channelID, err)
		}
		n.chatID = id
	}

	return n, nil
}

// SendBriefing sends the text with HTML markup. On a 400-class rejection it
// retries exactly once as plain text. Any other failure is terminal for
// this delivery only.
func (n *Notifier) SendBriefing(text string) Outcome {
	msg := n.newMessage(text)
	msg.ParseMode = tgbotapi.ModeHTML

	_, err := n.bot.Send(msg)
	if err == nil {
		n.logger.Info().Msg("message sent to telegram")
		return Outcome{Delivered: true}
	}

	if !isBadRequest(err) {
		n.logger.Error().Err(err).Msg("telegram send failed")
		return Outcome{}
	}

	n.logger.Warn().Err(err).Msg("HTML parse failed (400 Bad Request), retrying with plain text")

	plain := n.newMessage(text)
	if _, err := n.bot.Send(plain); err != nil {
		n.logger.Error().Err(err).Msg("plain text fallback send failed")
		return Outcome{UsedPlainTextFallback: true}
	}

	n.logger.Info().Msg("message sent to telegram (plain text fallback)")
	return Outcome{Delivered: true, UsedPlainTextFallback: true}
}

func (n *Notifier) newMessage(text string) tgbotapi.MessageConfig {
	if n.channel != "" {
		return tgbotapi.NewMessageToChannel(n.channel, text)
	}
	return tgbotapi.NewMessage(n.chatID, text)
}

// isBadRequest matches the specific 400-class API rejection that signals
// malformed markup.
func isBadRequest(err error) bool {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == 400
	}
	return false
}
