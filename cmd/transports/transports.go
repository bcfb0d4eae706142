package transports

import (
	"github.com/muhammadheryan/account-service/application/notification"
	"github.com/muhammadheryan/account-service/cmd/config"
	"github.com/muhammadheryan/account-service/thirdparty/brevo"
	"github.com/muhammadheryan/account-service/thirdparty/httpclient"
	"github.com/muhammadheryan/account-service/thirdparty/rabbitmq"
	"github.com/muhammadheryan/account-service/thirdparty/twilio"
)

const (
	Log    = "log"
	Brevo  = "brevo"
	Twilio = "twilio"
	Queue  = "queue"
)

// Build returns every transport that can be built from cfg, keyed by name. The queue
// transport is only built when withQueue is set. cleanup releases its connection.
func Build(cfg *config.Config, withQueue bool) (available map[string]notification.Transport, cleanup func(), err error) {
	available = map[string]notification.Transport{
		Log: notification.LogTransport{},
	}
	cleanup = func() {}

	httpClient := httpclient.NewClient(httpclient.ClientConfig{
		Timeout:         cfg.Notification.DispatchTimeout,
		RetryMaxElapsed: cfg.Notification.RetryMaxElapsed,
	})
	if cfg.Brevo.APIKey != "" {
		available[Brevo] = brevo.NewClient(cfg.Brevo.APIURL, cfg.Brevo.APIKey, cfg.Brevo.SenderEmail, cfg.Brevo.SenderName, httpClient)
	}
	if cfg.Twilio.AccountSID != "" {
		available[Twilio] = twilio.NewClient(cfg.Twilio.APIURL, cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.From, httpClient)
	}

	if withQueue {
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			return nil, nil, err
		}
		available[Queue] = publisher
		cleanup = func() { _ = publisher.Close() }
	}

	return available, cleanup, nil
}

// UsesQueue reports whether either channel is routed to the queue.
func UsesQueue(cfg *config.Config) bool {
	return cfg.Notification.EmailTransport == Queue || cfg.Notification.PhoneTransport == Queue
}
