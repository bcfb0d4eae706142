package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/muhammadheryan/account-service/constant"
)

type Config struct {
	Environment  string `env:"ENV" envDefault:"development"`
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	RabbitMQ     RabbitMQConfig
	Auth         AuthConfig
	Verification VerificationConfig
	Notification NotificationConfig
	Brevo        BrevoConfig
	Twilio       TwilioConfig
	Storage      StorageConfig
	Log          LogConfig
}

type ServerConfig struct {
	Port         string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
}

type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            int           `env:"DB_PORT" envDefault:"3306"`
	User            string        `env:"DB_USER" envDefault:"root"`
	Password        string        `env:"DB_PASSWORD"`
	Name            string        `env:"DB_NAME" envDefault:"account"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	AutoMigrate     bool          `env:"DB_AUTO_MIGRATE" envDefault:"false"`
}

type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type RabbitMQConfig struct {
	Host     string `env:"RABBITMQ_HOST" envDefault:"localhost"`
	Port     int    `env:"RABBITMQ_PORT" envDefault:"5672"`
	User     string `env:"RABBITMQ_USER" envDefault:"guest"`
	Password string `env:"RABBITMQ_PASSWORD" envDefault:"guest"`
}

type AuthConfig struct {
	JWTSecret           string        `env:"JWT_SECRET"`
	AccessExpiration    time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"5m"`
	RefreshExpiration   time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"24h"`
	RotateRefresh       bool          `env:"ROTATE_REFRESH_TOKENS" envDefault:"false"`
	CollapseLoginErrors bool          `env:"COLLAPSE_LOGIN_ERRORS" envDefault:"true"`
}

type VerificationConfig struct {
	CodeLength         int           `env:"CODE_LENGTH" envDefault:"4"`
	EmailCodeTTL       time.Duration `env:"EMAIL_CODE_TTL" envDefault:"5m"`
	PhoneCodeTTL       time.Duration `env:"PHONE_CODE_TTL" envDefault:"2m"`
	ResendLimitPerHour int           `env:"RESEND_LIMIT_PER_HOUR" envDefault:"5"`
	MaxAttempts        int           `env:"CODE_MAX_ATTEMPTS" envDefault:"5"`
	DefaultPhoneRegion string        `env:"DEFAULT_PHONE_REGION"`
}

// TTL returns the validity window of a code sent over channel.
func (v VerificationConfig) TTL(channel constant.AuthType) time.Duration {
	if channel == constant.AuthTypePhone {
		return v.PhoneCodeTTL
	}
	return v.EmailCodeTTL
}

type NotificationConfig struct {
	EmailTransport  string        `env:"EMAIL_TRANSPORT" envDefault:"log"`
	PhoneTransport  string        `env:"PHONE_TRANSPORT" envDefault:"log"`
	DispatchTimeout time.Duration `env:"DISPATCH_TIMEOUT" envDefault:"10s"`
	RetryMaxElapsed time.Duration `env:"DISPATCH_RETRY_MAX_ELAPSED" envDefault:"8s"`
	// Transports used by the notifier worker to deliver queued messages.
	WorkerEmailTransport string `env:"WORKER_EMAIL_TRANSPORT" envDefault:"brevo"`
	WorkerPhoneTransport string `env:"WORKER_PHONE_TRANSPORT" envDefault:"twilio"`
}

type BrevoConfig struct {
	APIURL      string `env:"BREVO_API_URL" envDefault:"https://api.brevo.com/v3/smtp/email"`
	APIKey      string `env:"BREVO_API_KEY"`
	SenderEmail string `env:"BREVO_SENDER_EMAIL" envDefault:"no-reply@example.com"`
	SenderName  string `env:"BREVO_SENDER_NAME" envDefault:"Account Service"`
}

type TwilioConfig struct {
	APIURL     string `env:"TWILIO_API_URL" envDefault:"https://api.twilio.com/2010-04-01"`
	AccountSID string `env:"TWILIO_ACCOUNT_SID"`
	AuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	From       string `env:"TWILIO_FROM"`
}

type StorageConfig struct {
	Region        string `env:"S3_REGION" envDefault:"us-east-1"`
	Bucket        string `env:"S3_BUCKET" envDefault:"account-photos"`
	Prefix        string `env:"S3_PREFIX" envDefault:"photos/"`
	MaxPhotoBytes int64  `env:"MAX_PHOTO_BYTES" envDefault:"5242880"`
	MaxDimension  int    `env:"PHOTO_MAX_DIMENSION" envDefault:"1024"`
	MaxPixels     int    `env:"PHOTO_MAX_PIXELS" envDefault:"25000000"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL"`
}

// Load reads configuration from a .env file (outside production) and the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if !isProduction(os.Getenv("ENV")) {
		_ = godotenv.Load()
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	missing := []string{}
	if isProduction(c.Environment) && c.Auth.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missing)
	}
	if c.Verification.CodeLength < 4 || c.Verification.CodeLength > 8 {
		return fmt.Errorf("CODE_LENGTH must be between 4 and 8, got %d", c.Verification.CodeLength)
	}
	return nil
}

// GetDSN returns the MySQL data source name.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC&multiStatements=true",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func isProduction(environment string) bool {
	return strings.EqualFold(environment, "production")
}
