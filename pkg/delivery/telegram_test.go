package delivery

import (
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ternarybob/arbor"
)

type fakeBot struct {
	errs  []error // one per Send call
	sent  []tgbotapi.MessageConfig
	calls int
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	msg, _ := c.(tgbotapi.MessageConfig)
	f.sent = append(f.sent, msg)
	idx := f.calls
	f.calls++
	if idx < len(f.errs) && f.errs[idx] != nil {
		return tgbotapi.Message{}, f.errs[idx]
	}
	return tgbotapi.Message{MessageID: 1}, nil
}

func newTestNotifier(bot sender) *Notifier {
	return &Notifier{bot: bot, chatID: 42, logger: arbor.NewLogger()}
}

func TestSendBriefingHTMLSuccess(t *testing.T) {
	bot := &fakeBot{}
	out := newTestNotifier(bot).SendBriefing("<b>briefing</b>")

	if !out.Delivered || out.UsedPlainTextFallback {
		t.Fatalf("outcome = %+v", out)
	}
	if bot.calls != 1 {
		t.Fatalf("expected single send, got %d", bot.calls)
	}
	if bot.sent[0].ParseMode != tgbotapi.ModeHTML {
		t.Errorf("first send must use HTML parse mode, got %q", bot.sent[0].ParseMode)
	}
}

func TestSendBriefingPlainTextFallback(t *testing.T) {
	bot := &fakeBot{errs: []error{
		&tgbotapi.Error{Code: 400, Message: "Bad Request: can't parse entities"},
		nil,
	}}
	out := newTestNotifier(bot).SendBriefing("<b>broken</b")

	if !out.Delivered || !out.UsedPlainTextFallback {
		t.Fatalf("outcome = %+v, want delivered via fallback", out)
	}
	if bot.calls != 2 {
		t.Fatalf("expected exactly one retry, got %d sends", bot.calls)
	}
	if bot.sent[1].ParseMode != "" {
		t.Errorf("retry must drop the parse mode, got %q", bot.sent[1].ParseMode)
	}
}

func TestSendBriefingOtherErrorNoRetry(t *testing.T) {
	bot := &fakeBot{errs: []error{errors.New("dial tcp: connection refused")}}
	out := newTestNotifier(bot).SendBriefing("briefing")

	if out.Delivered || out.UsedPlainTextFallback {
		t.Fatalf("outcome = %+v, want undelivered with no fallback", out)
	}
	if bot.calls != 1 {
		t.Fatalf("non-400 failures must not retry, got %d sends", bot.calls)
	}
}

func TestSendBriefingFallbackAlsoFails(t *testing.T) {
	bot := &fakeBot{errs: []error{
		&tgbotapi.Error{Code: 400, Message: "Bad Request: can't parse entities"},
		errors.New("dial tcp: connection refused"),
	}}
	out := newTestNotifier(bot).SendBriefing("briefing")

	if out.Delivered {
		t.Fatal("delivery should have failed")
	}
	if !out.UsedPlainTextFallback {
		t.Error("fallback attempt should be recorded")
	}
	if bot.calls != 2 {
		t.Fatalf("exactly one retry allowed, got %d sends", bot.calls)
	}
}

func TestNewNotifierMissingCredentials(t *testing.T) {
	if _, err := NewNotifier("", "12345", arbor.NewLogger()); err == nil {
		t.Error("missing token must error")
	}
	if _, err := NewNotifier("token", "", arbor.NewLogger()); err == nil {
		t.Error("missing channel id must error")
	}
}
