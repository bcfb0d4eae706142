package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/muhammadheryan/account-service/constant"
	"github.com/muhammadheryan/account-service/model"
	"github.com/muhammadheryan/account-service/utils/logger"
	"go.uber.org/zap"
)

// Transport delivers a verification code to the contact of an account.
type Transport interface {
	Send(ctx context.Context, msg *model.VerificationMessage) error
}

// Dispatcher routes verification messages to the transport configured for their channel.
type Dispatcher interface {
	// Dispatch delivers msg in the background and returns immediately.
	Dispatch(msg *model.VerificationMessage)
	// Send delivers msg synchronously.
	Send(ctx context.Context, msg *model.VerificationMessage) error
	// Wait blocks until every background delivery has finished.
	Wait()
}

type DispatcherImpl struct {
	routes  map[constant.AuthType]Transport
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(timeout time.Duration, routes map[constant.AuthType]Transport) Dispatcher {
	return &DispatcherImpl{
		routes:  routes,
		timeout: timeout,
	}
}

func (d *DispatcherImpl) Dispatch(msg *model.VerificationMessage) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.Send(ctx, msg); err != nil {
			logger.Warn("[Dispatch] err Send",
				zap.String("error", err.Error()),
				zap.String("account_id", msg.AccountID),
				zap.String("channel", string(msg.Channel)),
			)
		}
	}()
}

func (d *DispatcherImpl) Send(ctx context.Context, msg *model.VerificationMessage) error {
	transport, ok := d.routes[msg.Channel]
	if !ok {
		return fmt.Errorf("no transport for channel %q", msg.Channel)
	}
	return transport.Send(ctx, msg)
}

func (d *DispatcherImpl) Wait() {
	d.wg.Wait()
}

// Routes maps each channel to the transport named for it. available holds the
// transports the process was able to build, keyed by name.
func Routes(emailTransport, phoneTransport string, available map[string]Transport) (map[constant.AuthType]Transport, error) {
	routes := make(map[constant.AuthType]Transport, 2)
	for channel, name := range map[constant.AuthType]string{
		constant.AuthTypeEmail: emailTransport,
		constant.AuthTypePhone: phoneTransport,
	} {
		t, ok := available[name]
		if !ok {
			return nil, fmt.Errorf("unknown transport %q for channel %s", name, channel)
		}
		routes[channel] = t
	}
	return routes, nil
}

// LogTransport writes the code to the log instead of delivering it. Development only.
type LogTransport struct{}

func (LogTransport) Send(_ context.Context, msg *model.VerificationMessage) error {
	logger.Info("verification code",
		zap.String("account_id", msg.AccountID),
		zap.String("channel", string(msg.Channel)),
		zap.String("contact", msg.Contact),
		zap.String("code", msg.Code),
		zap.Time("expires_at", msg.ExpiresAt),
	)
	return nil
}

// Message builds the human readable text of a verification message.
func Message(msg *model.VerificationMessage) string {
	minutes := int(time.Until(msg.ExpiresAt).Round(time.Minute).Minutes())
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("Your verification code is %s. It expires in %d minute(s).", msg.Code, minutes)
}
