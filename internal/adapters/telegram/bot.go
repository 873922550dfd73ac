// Package telegram serves the assistant over a long-polling Telegram bot.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	startCmd = "start"
	helpCmd  = "ayuda"

	// maxMessageUnits is the Bot API limit, counted in UTF-16 code units.
	maxMessageUnits = 4096
	keyboardColumns = 2
	pollTimeout     = 60
)

var ErrNoToken = errors.New("telegram token is empty")

type Answerer interface {
	Answer(ctx context.Context, message string) string
}

type Config struct {
	Token string
	// AllowedChats restricts who may talk to the bot. Empty allows everyone.
	AllowedChats []int64
	Welcome      string
	Suggestions  []string
}

type Bot struct {
	s           sender
	updates     updateSource
	answerer    Answerer
	logger      *zap.Logger
	allowed     map[int64]struct{}
	welcome     string
	suggestions []string
}

func New(cfg Config, answerer Answerer, logger *zap.Logger) (*Bot, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, ErrNoToken
	}

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("connect telegram bot: %w", err)
	}

	return newBot(api, api, cfg, answerer, logger), nil
}

func newBot(s sender, updates updateSource, cfg Config, answerer Answerer, logger *zap.Logger) *Bot {
	if logger == nil {
		logger = zap.NewNop()
	}

	allowed := make(map[int64]struct{}, len(cfg.AllowedChats))
	for _, id := range cfg.AllowedChats {
		allowed[id] = struct{}{}
	}

	return &Bot{
		s:           s,
		updates:     updates,
		answerer:    answerer,
		logger:      logger,
		allowed:     allowed,
		welcome:     cfg.Welcome,
		suggestions: cfg.Suggestions,
	}
}

// Run processes updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout

	updates := b.updates.GetUpdatesChan(u)
	defer b.updates.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message != nil {
				b.handleIncomingMessage(ctx, update.Message)
			}
		}
	}
}

func (b *Bot) isAllowed(chatID int64) bool {
	if len(b.allowed) == 0 {
		return true
	}
	_, ok := b.allowed[chatID]
	return ok
}

func (b *Bot) handleIncomingMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID

	if !b.isAllowed(chatID) {
		b.logger.Warn("reject message from unknown chat", zap.Int64("chat_id", chatID))
		b.sendMessage(chatID, "Este chat no está autorizado para usar el asistente.")
		return
	}

	switch msg.Command() {
	case startCmd:
		b.sendWelcome(chatID)
		return
	case helpCmd:
		b.sendMessage(chatID, b.answerer.Answer(ctx, "ayuda"))
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	b.logger.Debug("incoming message", zap.Int64("chat_id", chatID), zap.Int("length", len(text)))
	b.sendMessage(chatID, b.answerer.Answer(ctx, text))
}

func (b *Bot) sendWelcome(chatID int64) {
	out := tgbotapi.NewMessage(chatID, b.welcome)
	if kb, ok := suggestionKeyboard(b.suggestions); ok {
		out.ReplyMarkup = kb
	}
	if _, err := b.s.Send(out); err != nil {
		b.logger.Warn("send welcome", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func suggestionKeyboard(suggestions []string) (tgbotapi.ReplyKeyboardMarkup, bool) {
	if len(suggestions) == 0 {
		return tgbotapi.ReplyKeyboardMarkup{}, false
	}

	var rows [][]tgbotapi.KeyboardButton
	for i := 0; i < len(suggestions); i += keyboardColumns {
		end := min(i+keyboardColumns, len(suggestions))
		row := make([]tgbotapi.KeyboardButton, 0, end-i)
		for _, q := range suggestions[i:end] {
			row = append(row, tgbotapi.NewKeyboardButton(q))
		}
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(row...))
	}

	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true

	return kb, true
}

func (b *Bot) sendMessage(chatID int64, text string) {
	for _, part := range splitMessage(text, maxMessageUnits) {
		if _, err := b.s.Send(tgbotapi.NewMessage(chatID, part)); err != nil {
			b.logger.Warn("send message", zap.Int64("chat_id", chatID), zap.Error(err))
			return
		}
	}
}

// Deliver sends text to every chat in chatIDs and joins the failures.
func (b *Bot) Deliver(ctx context.Context, chatIDs []int64, text string) error {
	var errs []error
	for _, id := range chatIDs {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, part := range splitMessage(text, maxMessageUnits) {
			if _, err := b.s.Send(tgbotapi.NewMessage(id, part)); err != nil {
				errs = append(errs, fmt.Errorf("deliver to chat %d: %w", id, err))
				break
			}
		}
	}

	return errors.Join(errs...)
}

// splitMessage cuts text into chunks of at most limit UTF-16 code units,
// preferring line breaks. A rune is never split.
func splitMessage(text string, limit int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if utf16Len(text) <= limit {
		return []string{text}
	}

	var parts []string
	var current strings.Builder
	currentLen := 0
	flush := func() {
		if current.Len() > 0 {
			parts = append(parts, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		for utf16Len(line) > limit {
			flush()
			head, rest := cutUnits(line, limit)
			parts = append(parts, head)
			line = rest
		}
		n := utf16Len(line)
		if currentLen+n > limit {
			flush()
		}
		current.WriteString(line)
		currentLen += n
	}
	flush()

	return parts
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// cutUnits splits s after the longest prefix within limit units. The prefix
// holds at least one rune.
func cutUnits(s string, limit int) (string, string) {
	n := 0
	for i, r := range s {
		w := utf16.RuneLen(r)
		if n+w > limit && i > 0 {
			return s[:i], s[i:]
		}
		n += w
	}
	return s, ""
}
