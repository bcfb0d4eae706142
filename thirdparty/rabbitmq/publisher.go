package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/muhammadheryan/account-service/model"
	"github.com/rabbitmq/amqp091-go"
)

const (
	verificationExchange   = "verification_exchange"
	verificationQueue      = "verification_queue"
	verificationRoutingKey = "verification"
)

// channel is the subset of *amqp091.Channel the publisher and consumer use.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel channel
}

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	// Declare the exchange
	err = ch.ExchangeDeclare(
		verificationExchange, // name
		"direct",             // type
		true,                 // durable
		false,                // auto-delete
		false,                // internal
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, err
	}

	// Declare the queue
	_, err = ch.QueueDeclare(
		verificationQueue, // name
		true,              // durable
		false,             // auto-delete
		false,             // exclusive
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, err
	}

	// Bind queue to exchange
	err = ch.QueueBind(
		verificationQueue,      // queue name
		verificationRoutingKey, // routing key
		verificationExchange,   // exchange
		false,                  // no-wait
		nil,                    // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, err
	}

	return conn, ch, nil
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, ch, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: ch}, nil
}

// Send queues a verification message for the notifier worker. It satisfies the
// notification transport contract so the queue can be routed to like any other
// transport.
func (p *Publisher) Send(ctx context.Context, msg *model.VerificationMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	publishing := amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	}
	if ttl := time.Until(msg.ExpiresAt); ttl > 0 {
		publishing.Expiration = fmt.Sprintf("%d", ttl.Milliseconds())
	}

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	return backoff.Retry(func() error {
		return p.channel.PublishWithContext(ctx,
			verificationExchange,   // exchange
			verificationRoutingKey, // routing key
			false,                  // mandatory
			false,                  // immediate
			publishing,
		)
	}, b)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
