package notify

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// AMQPSender publishes delivery requests to a durable RabbitMQ queue. A
// connection is opened per send; at this message volume the simplicity wins
// over channel pooling.
type AMQPSender struct {
	url    string
	queue  string
	logger *zap.Logger
}

// NewAMQPSender builds a sender targeting the given broker URL and queue.
func NewAMQPSender(url, queue string, logger *zap.Logger) *AMQPSender {
	return &AMQPSender{url: url, queue: queue, logger: logger}
}

// Send publishes the message as persistent JSON. Any broker failure is
// returned so callers can decide whether delivery is mandatory.
func (s *AMQPSender) Send(ctx context.Context, msg Message) error {
	conn, err := amqp.Dial(s.url)
	if err != nil {
		s.logger.Warn("amqp dial failed", zap.Error(err))
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		s.logger.Warn("amqp channel open failed", zap.Error(err))
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(s.queue, true, false, false, false, nil); err != nil {
		s.logger.Warn("amqp queue declare failed", zap.Error(err))
		return err
	}

	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    msg.CreatedAt,
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", s.queue, false, false, pub); err != nil {
		s.logger.Warn("amqp publish failed", zap.Error(err))
		return err
	}
	return nil
}
