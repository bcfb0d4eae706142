package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/account-service/application/notification"
	"github.com/muhammadheryan/account-service/cmd/config"
	"github.com/muhammadheryan/account-service/cmd/transports"
	"github.com/muhammadheryan/account-service/thirdparty/rabbitmq"
	"github.com/muhammadheryan/account-service/utils/logger"
	"go.uber.org/zap"
)

// The notifier drains the verification queue and delivers each code over the
// transport configured for its channel.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.Environment, cfg.Log.Level); err != nil {
		panic(err)
	}
	logger.Set(logger.Named("notifier"))
	defer logger.Close()

	available, _, err := transports.Build(cfg, false)
	if err != nil {
		logger.Fatal("err build transports", zap.Error(err))
	}
	routes, err := notification.Routes(cfg.Notification.WorkerEmailTransport, cfg.Notification.WorkerPhoneTransport, available)
	if err != nil {
		logger.Fatal("err route transports", zap.Error(err))
	}
	dispatcher := notification.NewDispatcher(cfg.Notification.DispatchTimeout, routes)

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		dispatcher.Send, cfg.Notification.DispatchTimeout)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	done, err := consumer.Start(ctx)
	if err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("notifier running")

	<-done
	logger.Info("notifier stopped")
}
