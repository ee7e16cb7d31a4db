// Package messaging provides the chat transport abstraction for SurveyBot.
//
// This file implements the Telegram-backed gateway on top of long polling.
package messaging

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-telegram/bot"
	tgmodels "github.com/go-telegram/bot/models"

	"github.com/akobirdev/surveybot/internal/models"
)

// Opts holds configuration options for the Telegram gateway.
type Opts struct {
	// Token is the bot API token (required).
	Token string
}

// Option defines a functional option for gateway configuration.
type Option func(*Opts)

// WithToken sets the bot API token.
func WithToken(token string) Option {
	return func(o *Opts) {
		o.Token = token
	}
}

var defaultAllowedUpdates = bot.AllowedUpdates{
	"message",
	"callback_query",
}

// TelegramGateway implements Gateway over the Telegram Bot API.
type TelegramGateway struct {
	client *bot.Bot
	events chan models.InboundEvent

	// replyActions maps the literal labels of the last reply keyboard
	// sent to a chat back to their action codes. Labels are recorded at
	// send time so inbound text never needs string matching against
	// translations.
	mu           sync.Mutex
	replyActions map[int64]map[string]models.ActionCode

	cancel   context.CancelFunc
	stopOnce sync.Once
	pollDone chan struct{}
}

// NewTelegramGateway creates a gateway and validates the token against the
// Bot API.
func NewTelegramGateway(opts ...Option) (*TelegramGateway, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Token == "" {
		slog.Error("TelegramGateway token not set")
		return nil, fmt.Errorf("telegram bot token not set")
	}

	g := &TelegramGateway{
		events:       make(chan models.InboundEvent, DefaultChannelBufferSize),
		replyActions: make(map[int64]map[string]models.ActionCode),
		pollDone:     make(chan struct{}),
	}

	client, err := bot.New(cfg.Token,
		bot.WithAllowedUpdates(defaultAllowedUpdates),
		bot.WithDefaultHandler(g.handleUpdate),
	)
	if err != nil {
		slog.Error("TelegramGateway init failed", "error", err)
		return nil, fmt.Errorf("failed to initialize telegram client: %w", err)
	}
	g.client = client
	return g, nil
}

// Start begins long polling in the background until Stop is called or the
// context is canceled.
func (g *TelegramGateway) Start(ctx context.Context) error {
	pollCtx, cancel := context.WithCancel(ctx)
	g.cancel = cancel
	go func() {
		defer close(g.pollDone)
		slog.Info("TelegramGateway starting long polling")
		g.client.Start(pollCtx)
		slog.Info("TelegramGateway polling stopped")
	}()
	return nil
}

// Stop halts polling and closes the event channel.
func (g *TelegramGateway) Stop() error {
	g.stopOnce.Do(func() {
		if g.cancel != nil {
			g.cancel()
			<-g.pollDone
		}
		close(g.events)
	})
	return nil
}

// Events returns the channel of normalized inbound events.
func (g *TelegramGateway) Events() <-chan models.InboundEvent {
	return g.events
}

func (g *TelegramGateway) handleUpdate(ctx context.Context, b *bot.Bot, update *tgmodels.Update) {
	ev, ok := g.normalize(update)
	if !ok {
		return
	}
	select {
	case g.events <- ev:
	default:
		slog.Warn("TelegramGateway event channel full, dropping event", "chat", ev.ChatID, "kind", ev.Kind)
	}
}

func (g *TelegramGateway) normalize(update *tgmodels.Update) (models.InboundEvent, bool) {
	switch {
	case update.CallbackQuery != nil:
		cq := update.CallbackQuery
		chatID, messageID := callbackOrigin(cq)
		if chatID == 0 {
			return models.InboundEvent{}, false
		}
		return models.InboundEvent{
			ChatID:     chatID,
			Kind:       models.EventCallback,
			Callback:   cq.Data,
			CallbackID: cq.ID,
			MessageID:  messageID,
			From:       sender(&cq.From),
		}, true

	case update.Message != nil:
		msg := update.Message
		ev := models.InboundEvent{
			ChatID:    msg.Chat.ID,
			MessageID: msg.ID,
			Time:      int64(msg.Date),
		}
		if msg.From != nil {
			ev.From = sender(msg.From)
		}
		switch {
		case msg.Contact != nil:
			ev.Kind = models.EventContact
			ev.Contact = &models.Contact{
				PhoneNumber: msg.Contact.PhoneNumber,
				FirstName:   msg.Contact.FirstName,
				LastName:    msg.Contact.LastName,
			}
		case strings.HasPrefix(msg.Text, "/"):
			ev.Kind = models.EventCommand
			ev.Text = strings.TrimSpace(msg.Text)
		default:
			ev.Text = strings.TrimSpace(msg.Text)
			if action, ok := g.lookupAction(msg.Chat.ID, ev.Text); ok {
				ev.Kind = models.EventAction
				ev.Action = action
			} else {
				ev.Kind = models.EventText
			}
		}
		return ev, true

	default:
		return models.InboundEvent{}, false
	}
}

func callbackOrigin(cq *tgmodels.CallbackQuery) (int64, int) {
	if cq.Message.Message != nil {
		return cq.Message.Message.Chat.ID, cq.Message.Message.ID
	}
	if cq.Message.InaccessibleMessage != nil {
		return cq.Message.InaccessibleMessage.Chat.ID, cq.Message.InaccessibleMessage.MessageID
	}
	return 0, 0
}

func sender(u *tgmodels.User) models.Sender {
	return models.Sender{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func (g *TelegramGateway) lookupAction(chatID int64, text string) (models.ActionCode, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	actions, ok := g.replyActions[chatID]
	if !ok {
		return "", false
	}
	action, ok := actions[text]
	return action, ok
}

func (g *TelegramGateway) recordReplyActions(chatID int64, kb *models.ReplyKeyboard) {
	g.mu.Lock()
	defer g.mu.Unlock()
	actions := make(map[string]models.ActionCode)
	for _, row := range kb.Rows {
		for _, btn := range row {
			if btn.Action != "" {
				actions[btn.Label] = btn.Action
			}
		}
	}
	g.replyActions[chatID] = actions
}

func (g *TelegramGateway) clearReplyActions(chatID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.replyActions, chatID)
}

// SendMessage delivers a message with its keyboard and returns the
// platform message id.
func (g *TelegramGateway) SendMessage(ctx context.Context, chatID int64, msg models.OutboundMessage) (int, error) {
	params := &bot.SendMessageParams{
		ChatID: chatID,
		Text:   msg.Body,
	}
	switch {
	case msg.Inline != nil:
		params.ReplyMarkup = inlineMarkup(msg.Inline)
	case msg.Reply != nil:
		params.ReplyMarkup = replyMarkup(msg.Reply)
		g.recordReplyActions(chatID, msg.Reply)
	case msg.RemoveReply:
		params.ReplyMarkup = &tgmodels.ReplyKeyboardRemove{RemoveKeyboard: true}
		g.clearReplyActions(chatID)
	}

	sent, err := g.client.SendMessage(ctx, params)
	if err != nil {
		slog.Error("TelegramGateway SendMessage failed", "error", err, "chat", chatID)
		return 0, fmt.Errorf("failed to send message to chat %d: %w", chatID, err)
	}
	slog.Debug("TelegramGateway SendMessage succeeded", "chat", chatID, "message", sent.ID)
	return sent.ID, nil
}

// EditInlineKeyboard replaces the inline keyboard attached to a message.
// Telegram rejects edits of deleted or identical messages; both are
// swallowed since the conversation has already moved on.
func (g *TelegramGateway) EditInlineKeyboard(ctx context.Context, chatID int64, messageID int, kb *models.InlineKeyboard) error {
	_, err := g.client.EditMessageReplyMarkup(ctx, &bot.EditMessageReplyMarkupParams{
		ChatID:      chatID,
		MessageID:   messageID,
		ReplyMarkup: inlineMarkup(kb),
	})
	if err != nil {
		if isStaleMessageError(err) {
			slog.Debug("TelegramGateway edit on stale message ignored", "chat", chatID, "message", messageID)
			return nil
		}
		slog.Error("TelegramGateway EditInlineKeyboard failed", "error", err, "chat", chatID, "message", messageID)
		return fmt.Errorf("failed to edit keyboard on message %d: %w", messageID, err)
	}
	return nil
}

// DeleteMessage removes a sent message, ignoring already-deleted ones.
func (g *TelegramGateway) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	_, err := g.client.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    chatID,
		MessageID: messageID,
	})
	if err != nil {
		if isStaleMessageError(err) {
			slog.Debug("TelegramGateway delete on stale message ignored", "chat", chatID, "message", messageID)
			return nil
		}
		slog.Error("TelegramGateway DeleteMessage failed", "error", err, "chat", chatID, "message", messageID)
		return fmt.Errorf("failed to delete message %d: %w", messageID, err)
	}
	return nil
}

// AckCallback confirms a callback so the client stops its spinner.
func (g *TelegramGateway) AckCallback(ctx context.Context, callbackID string) error {
	_, err := g.client.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
	})
	if err != nil {
		slog.Debug("TelegramGateway AckCallback failed", "error", err, "callback", callbackID)
	}
	return nil
}

// SendDocument delivers a file attachment.
func (g *TelegramGateway) SendDocument(ctx context.Context, chatID int64, filename string, data []byte, caption string) error {
	_, err := g.client.SendDocument(ctx, &bot.SendDocumentParams{
		ChatID:   chatID,
		Document: &tgmodels.InputFileUpload{Filename: filename, Data: bytes.NewReader(data)},
		Caption:  caption,
	})
	if err != nil {
		slog.Error("TelegramGateway SendDocument failed", "error", err, "chat", chatID, "filename", filename)
		return fmt.Errorf("failed to send document to chat %d: %w", chatID, err)
	}
	return nil
}

func isStaleMessageError(err error) bool {
	s := err.Error()
	return strings.Contains(s, "message to delete not found") ||
		strings.Contains(s, "message to edit not found") ||
		strings.Contains(s, "message is not modified") ||
		strings.Contains(s, "message can't be deleted")
}

func inlineMarkup(kb *models.InlineKeyboard) *tgmodels.InlineKeyboardMarkup {
	rows := make([][]tgmodels.InlineKeyboardButton, 0, len(kb.Rows))
	for _, row := range kb.Rows {
		out := make([]tgmodels.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			out = append(out, tgmodels.InlineKeyboardButton{
				Text:         models.TruncateLabel(btn.Label),
				CallbackData: btn.Data,
			})
		}
		rows = append(rows, out)
	}
	return &tgmodels.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func replyMarkup(kb *models.ReplyKeyboard) *tgmodels.ReplyKeyboardMarkup {
	rows := make([][]tgmodels.KeyboardButton, 0, len(kb.Rows))
	for _, row := range kb.Rows {
		out := make([]tgmodels.KeyboardButton, 0, len(row))
		for _, btn := range row {
			out = append(out, tgmodels.KeyboardButton{
				Text:           btn.Label,
				RequestContact: btn.RequestContact,
			})
		}
		rows = append(rows, out)
	}
	return &tgmodels.ReplyKeyboardMarkup{
		Keyboard:       rows,
		ResizeKeyboard: true,
	}
}
