package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muhammadheryan/account-service/model"
	"github.com/muhammadheryan/account-service/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Handler delivers one verification message.
type Handler func(ctx context.Context, msg *model.VerificationMessage) error

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	handler Handler
	timeout time.Duration
}

func NewConsumer(host string, port int, user, password string, handler Handler, timeout time.Duration) (*Consumer, error) {
	conn, ch, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Consumer{
		conn:    conn,
		channel: ch,
		handler: handler,
		timeout: timeout,
	}, nil
}

// Start consumes until ctx is cancelled or the channel closes. The returned channel is
// closed when consumption stops.
func (c *Consumer) Start(ctx context.Context) (<-chan struct{}, error) {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return nil, err
	}

	msgs, err := c.channel.Consume(
		verificationQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				ack, requeue := c.process(ctx, msg.Body)
				if ack {
					_ = msg.Ack(false)
				} else {
					_ = msg.Nack(false, requeue)
				}
			}
		}
	}()

	return done, nil
}

// process returns whether the delivery is acknowledged and, if not, whether it goes
// back to the queue. Malformed and expired messages are dropped.
func (c *Consumer) process(ctx context.Context, body []byte) (ack bool, requeue bool) {
	var msg model.VerificationMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		logger.Error("[Consumer] err json.Unmarshal", zap.String("error", err.Error()))
		return true, false
	}
	if !msg.ExpiresAt.IsZero() && time.Now().After(msg.ExpiresAt) {
		logger.Warn("[Consumer] dropping expired code", zap.String("account_id", msg.AccountID))
		return true, false
	}

	hctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.handler(hctx, &msg); err != nil {
		logger.Error("[Consumer] err handler",
			zap.String("error", err.Error()),
			zap.String("account_id", msg.AccountID),
			zap.String("channel", string(msg.Channel)),
		)
		return false, true
	}

	logger.Info("verification code delivered",
		zap.String("account_id", msg.AccountID),
		zap.String("channel", string(msg.Channel)),
	)
	return true, false
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
