package token

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/account-service/cmd/config"
	"github.com/muhammadheryan/account-service/constant"
	"github.com/muhammadheryan/account-service/model"
	accountrepo "github.com/muhammadheryan/account-service/repository/account"
	redisrepo "github.com/muhammadheryan/account-service/repository/redis"
	"github.com/muhammadheryan/account-service/utils/errors"
	"github.com/muhammadheryan/account-service/utils/logger"
	"go.uber.org/zap"
)

type TokenApp interface {
	IssuePair(ctx context.Context, account *model.AccountEntity) (*model.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*model.RefreshResponse, error)
	Revoke(ctx context.Context, refreshToken string) error
	ValidateAccess(ctx context.Context, accessToken string) (*model.TokenClaims, error)
}

type TokenAppImpl struct {
	config      *config.Config
	accountRepo accountrepo.AccountRepository
	redisRepo   redisrepo.Repository
}

func NewTokenApp(config *config.Config, accountRepo accountrepo.AccountRepository, redisRepo redisrepo.Repository) TokenApp {
	return &TokenAppImpl{
		config:      config,
		accountRepo: accountRepo,
		redisRepo:   redisRepo,
	}
}

type claims struct {
	jwt.RegisteredClaims
	Type constant.TokenType `json:"typ"`
}

func (s *TokenAppImpl) IssuePair(ctx context.Context, account *model.AccountEntity) (*model.TokenPair, error) {
	access, err := s.sign(account.ID, constant.TokenTypeAccess, s.config.Auth.AccessExpiration)
	if err != nil {
		logger.Error("[IssuePair] err sign access", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	refresh, err := s.sign(account.ID, constant.TokenTypeRefresh, s.config.Auth.RefreshExpiration)
	if err != nil {
		logger.Error("[IssuePair] err sign refresh", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh exchanges a refresh token for a new access token and records the activity as
// the account's last login. With rotation enabled the presented refresh token is revoked
// and a new one returned.
func (s *TokenAppImpl) Refresh(ctx context.Context, refreshToken string) (*model.RefreshResponse, error) {
	c, err := s.parse(refreshToken, constant.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}
	if err := s.checkRevoked(ctx, "Refresh", c.ID); err != nil {
		return nil, err
	}
	if err := s.checkNotBefore(ctx, "Refresh", c); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{ID: c.Subject})
	if err != nil {
		logger.Error("[Refresh] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return nil, errors.SetCustomError(constant.ErrTokenInvalid)
	}

	access, err := s.sign(account.ID, constant.TokenTypeAccess, s.config.Auth.AccessExpiration)
	if err != nil {
		logger.Error("[Refresh] err sign access", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	res := &model.RefreshResponse{Access: access}

	if s.config.Auth.RotateRefresh {
		if err := s.redisRepo.RevokeToken(ctx, c.ID, time.Until(c.ExpiresAt.Time)); err != nil {
			logger.Error("[Refresh] err redisRepo.RevokeToken", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrServiceUnavailable)
		}
		res.Refresh, err = s.sign(account.ID, constant.TokenTypeRefresh, s.config.Auth.RefreshExpiration)
		if err != nil {
			logger.Error("[Refresh] err sign refresh", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.accountRepo.UpdateLastLogin(ctx, account.ID, time.Now().UTC()); err != nil {
		logger.Error("[Refresh] err accountRepo.UpdateLastLogin", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return res, nil
}

func (s *TokenAppImpl) Revoke(ctx context.Context, refreshToken string) error {
	c, err := s.parse(refreshToken, constant.TokenTypeRefresh)
	if err != nil {
		return err
	}
	if err := s.redisRepo.RevokeToken(ctx, c.ID, time.Until(c.ExpiresAt.Time)); err != nil {
		logger.Error("[Revoke] err redisRepo.RevokeToken", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrServiceUnavailable)
	}
	return nil
}

func (s *TokenAppImpl) ValidateAccess(ctx context.Context, accessToken string) (*model.TokenClaims, error) {
	c, err := s.parse(accessToken, constant.TokenTypeAccess)
	if err != nil {
		return nil, err
	}
	return &model.TokenClaims{
		AccountID: c.Subject,
		TokenID:   c.ID,
		Type:      c.Type,
		IssuedAt:  c.IssuedAt.Time,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}

func (s *TokenAppImpl) checkRevoked(ctx context.Context, method, jti string) error {
	revoked, err := s.redisRepo.IsTokenRevoked(ctx, jti)
	if err != nil {
		logger.Error("["+method+"] err redisRepo.IsTokenRevoked", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrServiceUnavailable)
	}
	if revoked {
		return errors.SetCustomError(constant.ErrTokenRevoked)
	}
	return nil
}

// checkNotBefore rejects tokens issued at or before the account's cutoff. iat has second
// precision, so a token from the same second as the cutoff is rejected too.
func (s *TokenAppImpl) checkNotBefore(ctx context.Context, method string, c *claims) error {
	cutoff, err := s.redisRepo.TokensNotBefore(ctx, c.Subject)
	if err != nil {
		logger.Error("["+method+"] err redisRepo.TokensNotBefore", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrServiceUnavailable)
	}
	if !cutoff.IsZero() && !c.IssuedAt.Time.After(cutoff.Truncate(time.Second)) {
		return errors.SetCustomError(constant.ErrTokenRevoked)
	}
	return nil
}

func (s *TokenAppImpl) sign(accountID string, tokenType constant.TokenType, ttl time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		Type: tokenType,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(s.config.Auth.JWTSecret))
}

func (s *TokenAppImpl) parse(tokenString string, want constant.TokenType) (*claims, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.SetCustomError(constant.ErrTokenExpired)
		}
		return nil, errors.SetCustomError(constant.ErrTokenInvalid)
	}
	if !token.Valid || c.Type != want || c.Subject == "" || c.ID == "" || c.IssuedAt == nil || c.ExpiresAt == nil {
		return nil, errors.SetCustomError(constant.ErrTokenInvalid)
	}
	return c, nil
}
