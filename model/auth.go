package model

import (
	"time"

	"github.com/muhammadheryan/account-service/constant"
)

// LoginRequest for account login (accepts username, email or phone)
type LoginRequest struct {
	UserInput string `json:"userinput" validate:"required,max=254"`
	Password  string `json:"password" validate:"required"`
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type LoginResponse struct {
	TokenPair
	AuthStatus constant.AuthStatus `json:"auth_status"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type RefreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

type LogoutRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// TokenClaims are the claims extracted from a validated token.
type TokenClaims struct {
	AccountID string
	TokenID   string
	Type      constant.TokenType
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type ForgotPasswordRequest struct {
	EmailOrPhone string `json:"email_or_phone" validate:"required,max=254"`
}

type ForgotPasswordResponse struct {
	ID        string            `json:"id"`
	AuthType  constant.AuthType `json:"auth_type"`
	ExpiresAt time.Time         `json:"expires_at"`
}

type ResetPasswordRequest struct {
	EmailOrPhone    string `json:"email_or_phone" validate:"required,max=254"`
	Code            string `json:"code" validate:"required,numeric,min=4,max=8"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}
