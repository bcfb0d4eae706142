package main

import (
	"context"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	accountapp "github.com/muhammadheryan/account-service/application/account"
	authapp "github.com/muhammadheryan/account-service/application/auth"
	"github.com/muhammadheryan/account-service/application/identifier"
	"github.com/muhammadheryan/account-service/application/lifecycle"
	"github.com/muhammadheryan/account-service/application/notification"
	passwordapp "github.com/muhammadheryan/account-service/application/password"
	tokenapp "github.com/muhammadheryan/account-service/application/token"
	verificationapp "github.com/muhammadheryan/account-service/application/verification"
	"github.com/muhammadheryan/account-service/cmd/config"
	redisclient "github.com/muhammadheryan/account-service/cmd/redis"
	"github.com/muhammadheryan/account-service/cmd/transports"
	_ "github.com/muhammadheryan/account-service/docs"
	"github.com/muhammadheryan/account-service/migration"
	accountRepo "github.com/muhammadheryan/account-service/repository/account"
	redisRepo "github.com/muhammadheryan/account-service/repository/redis"
	txRepo "github.com/muhammadheryan/account-service/repository/tx"
	verificationRepo "github.com/muhammadheryan/account-service/repository/verification"
	"github.com/muhammadheryan/account-service/thirdparty/s3"
	"github.com/muhammadheryan/account-service/transport"
	"github.com/muhammadheryan/account-service/utils/logger"
	"go.uber.org/zap"
)

// @title ACCOUNT SERVICE API
// @version 1.0
// @description Account onboarding and authentication API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.Log.Level); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if cfg.Database.AutoMigrate {
		if err := migration.Run(context.Background(), db); err != nil {
			logger.Fatal("err migrate db", zap.Error(err))
		}
	}

	// Initialize Redis client
	redisClient, err := redisclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisClient.Close()
	}()

	// Notification transports
	available, closeTransports, err := transports.Build(cfg, transports.UsesQueue(cfg))
	if err != nil {
		logger.Fatal("err build transports", zap.Error(err))
	}
	defer closeTransports()

	routes, err := notification.Routes(cfg.Notification.EmailTransport, cfg.Notification.PhoneTransport, available)
	if err != nil {
		logger.Fatal("err route transports", zap.Error(err))
	}
	dispatcher := notification.NewDispatcher(cfg.Notification.DispatchTimeout, routes)
	defer dispatcher.Wait()

	photoStore, err := s3.New(context.Background(), s3.Options{
		Region:       cfg.Storage.Region,
		Bucket:       cfg.Storage.Bucket,
		Prefix:       cfg.Storage.Prefix,
		MaxBytes:     cfg.Storage.MaxPhotoBytes,
		MaxDimension: cfg.Storage.MaxDimension,
		MaxPixels:    cfg.Storage.MaxPixels,
	})
	if err != nil {
		logger.Fatal("err init photo storage", zap.Error(err))
	}

	// Initialize repositories
	AccountRepo := accountRepo.NewAccountRepository(db)
	VerificationRepo := verificationRepo.NewVerificationRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository(redisClient)

	// Initialize application layers
	classifier := identifier.New(cfg.Verification.DefaultPhoneRegion)
	StateMachine := lifecycle.NewStateMachine(AccountRepo)
	VerificationApp := verificationapp.NewVerificationApp(cfg, AccountRepo, VerificationRepo, TxRepo, RedisRepo)
	TokenApp := tokenapp.NewTokenApp(cfg, AccountRepo, RedisRepo)
	AuthApp := authapp.NewAuthApp(classifier, AccountRepo, TokenApp)
	AccountApp := accountapp.NewAccountApp(cfg, classifier, AccountRepo, TxRepo, RedisRepo,
		VerificationApp, StateMachine, TokenApp, dispatcher, photoStore)
	PasswordApp := passwordapp.NewPasswordApp(cfg, classifier, AccountRepo, TxRepo, RedisRepo, VerificationApp, dispatcher)

	httpTransport := transport.NewTransport(AccountApp, AuthApp, TokenApp, PasswordApp, transport.Options{
		CollapseLoginErrors: cfg.Auth.CollapseLoginErrors,
		MaxPhotoBytes:       cfg.Storage.MaxPhotoBytes,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-shutdownSignal()
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
}
