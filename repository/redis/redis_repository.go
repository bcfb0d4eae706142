package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	revokedPrefix = "revoked:"
	resendPrefix  = "resend:"
	attemptPrefix = "attempts:"
	notBefore     = "nbf:"
)

// Repository keeps short-lived account state in Redis
type Repository interface {
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
	IncrResend(ctx context.Context, accountID string, window time.Duration) (int64, error)
	IncrCodeAttempts(ctx context.Context, codeID string, ttl time.Duration) (int64, error)
	SetTokensNotBefore(ctx context.Context, accountID string, at time.Time, ttl time.Duration) error
	TokensNotBefore(ctx context.Context, accountID string) (time.Time, error)
}

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository implementation
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

// RevokeToken marks a token id unusable until the token itself would have expired
func (r *redis) RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, revokedPrefix+jti, 1, ttl).Err()
}

// IsTokenRevoked reports whether RevokeToken was called for jti
func (r *redis) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	err := r.client.Get(ctx, revokedPrefix+jti).Err()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// IncrResend counts code requests of an account inside a fixed window starting at the
// first request.
func (r *redis) IncrResend(ctx context.Context, accountID string, window time.Duration) (int64, error) {
	return r.incr(ctx, resendPrefix+accountID, window)
}

// IncrCodeAttempts counts checks against one verification code. The counter lives as
// long as the code does.
func (r *redis) IncrCodeAttempts(ctx context.Context, codeID string, ttl time.Duration) (int64, error) {
	if ttl <= 0 {
		ttl = time.Second
	}
	return r.incr(ctx, attemptPrefix+codeID, ttl)
}

// SetTokensNotBefore invalidates every token of the account issued before at. ttl
// should cover the longest token lifetime.
func (r *redis) SetTokensNotBefore(ctx context.Context, accountID string, at time.Time, ttl time.Duration) error {
	return r.client.Set(ctx, notBefore+accountID, at.Unix(), ttl).Err()
}

// TokensNotBefore returns the zero time when no cutoff is set.
func (r *redis) TokensNotBefore(ctx context.Context, accountID string) (time.Time, error) {
	v, err := r.client.Get(ctx, notBefore+accountID).Result()
	if errors.Is(err, goredis.Nil) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	sec, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(sec, 0), nil
}

func (r *redis) incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	n, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return n, nil
}
