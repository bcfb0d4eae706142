package model

import (
	"time"

	"github.com/muhammadheryan/account-service/constant"
)

// VerificationCodeEntity represents the verification_code table entity
type VerificationCodeEntity struct {
	ID          string            `db:"id"`
	AccountID   string            `db:"account_id"`
	Channel     constant.AuthType `db:"channel"`
	Code        string            `db:"code"`
	ExpiresAt   time.Time         `db:"expires_at"`
	IsConfirmed bool              `db:"is_confirmed"`
	CreatedTime time.Time         `db:"created_time"`
}

// VerificationMessage is what the notification transport delivers.
type VerificationMessage struct {
	AccountID string            `json:"account_id"`
	Channel   constant.AuthType `json:"channel"`
	Contact   string            `json:"contact"`
	Code      string            `json:"code"`
	ExpiresAt time.Time         `json:"expires_at"`
}
