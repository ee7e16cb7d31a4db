// Package messaging provides the chat transport abstraction for SurveyBot.
//
// It defines a pluggable Gateway interface backed by Telegram in
// production and by an in-memory fake in tests.
package messaging

import (
	"context"

	"github.com/akobirdev/surveybot/internal/models"
)

// DefaultChannelBufferSize defines the buffer size for the inbound event
// channel.
const DefaultChannelBufferSize = 100

// Gateway defines a pluggable chat transport.
// It normalizes platform updates into inbound events and renders outbound
// messages with their keyboards.
type Gateway interface {
	// Start begins receiving updates until the context is canceled.
	Start(ctx context.Context) error

	// Stop stops background processing and cleans up resources.
	Stop() error

	// Events returns the channel of normalized inbound events.
	Events() <-chan models.InboundEvent

	// SendMessage delivers a message and returns the platform message id.
	SendMessage(ctx context.Context, chatID int64, msg models.OutboundMessage) (int, error)

	// EditInlineKeyboard replaces the inline keyboard of a sent message.
	// Editing a message that no longer exists is not an error.
	EditInlineKeyboard(ctx context.Context, chatID int64, messageID int, kb *models.InlineKeyboard) error

	// DeleteMessage removes a sent message. Deleting a message that no
	// longer exists is not an error.
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error

	// AckCallback confirms receipt of a callback so the client stops its
	// loading spinner.
	AckCallback(ctx context.Context, callbackID string) error

	// SendDocument delivers a file attachment.
	SendDocument(ctx context.Context, chatID int64, filename string, data []byte, caption string) error
}
