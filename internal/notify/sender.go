// Package notify delivers out-of-band messages (SMS/WhatsApp) to residents.
// The service publishes to a durable queue consumed by the gateway bridge;
// the gateway itself stays an external collaborator.
package notify

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Channel selects the delivery transport.
type Channel string

const (
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
)

// Message is a single out-of-band delivery request.
type Message struct {
	To        string    `json:"to"`
	Body      string    `json:"body"`
	Channel   Channel   `json:"channel"`
	CreatedAt time.Time `json:"created_at"`
}

// Sender delivers messages to a resident's contact number.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender logs messages instead of delivering them. Used in development
// when no broker URL is configured.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender builds the fallback sender.
func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send records the message at info level and reports success.
func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.logger.Info("sms delivery skipped (no broker configured)",
		zap.String("to", msg.To),
		zap.String("channel", string(msg.Channel)))
	return nil
}
