package model

import (
	"time"

	"github.com/muhammadheryan/account-service/constant"
)

// AccountEntity represents the account table entity
type AccountEntity struct {
	ID           string              `db:"id" json:"id"`
	Username     *string             `db:"username" json:"username,omitempty"`
	FirstName    *string             `db:"first_name" json:"first_name,omitempty"`
	LastName     *string             `db:"last_name" json:"last_name,omitempty"`
	Email        *string             `db:"email" json:"email,omitempty"`
	PhoneNumber  *string             `db:"phone_number" json:"phone_number,omitempty"`
	PasswordHash *string             `db:"password_hash" json:"-"`
	AuthType     constant.AuthType   `db:"auth_type" json:"auth_type"`
	AuthStatus   constant.AuthStatus `db:"auth_status" json:"auth_status"`
	Photo        *string             `db:"photo" json:"photo,omitempty"`
	LastLogin    *time.Time          `db:"last_login" json:"last_login,omitempty"`
	CreatedTime  time.Time           `db:"created_time" json:"created_time"`
	UpdatedTime  *time.Time          `db:"updated_time" json:"updated_time,omitempty"`
}

// Contact returns the address verification codes are sent to, chosen by auth type.
func (a *AccountEntity) Contact() string {
	switch a.AuthType {
	case constant.AuthTypeEmail:
		return deref(a.Email)
	case constant.AuthTypePhone:
		return deref(a.PhoneNumber)
	}
	return ""
}

func (a *AccountEntity) UsernameValue() string {
	return deref(a.Username)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// AccountFilter for querying accounts. Username is matched case-insensitively.
type AccountFilter struct {
	ID          string
	Username    string
	Email       string
	PhoneNumber string
}

// ProfileUpdate is written when an account completes its profile.
type ProfileUpdate struct {
	AccountID    string
	FirstName    string
	LastName     string
	Username     string
	PasswordHash string
}

// SignUpRequest for account registration
type SignUpRequest struct {
	EmailPhoneNumber string `json:"email_phone_number" validate:"required,max=254"`
}

type SignUpResponse struct {
	ID         string              `json:"id"`
	AuthType   constant.AuthType   `json:"auth_type"`
	AuthStatus constant.AuthStatus `json:"auth_status"`
	TokenPair
}

// VerifyRequest submits the code sent to the account's contact channel
type VerifyRequest struct {
	Code string `json:"code" validate:"required,numeric,min=4,max=8"`
}

type StatusResponse struct {
	ID         string              `json:"id"`
	AuthStatus constant.AuthStatus `json:"auth_status"`
}

type ResendResponse struct {
	ID        string            `json:"id"`
	AuthType  constant.AuthType `json:"auth_type"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// CompleteProfileRequest moves a verified account to DONE
type CompleteProfileRequest struct {
	FirstName       string `json:"first_name" validate:"required,max=150"`
	LastName        string `json:"last_name" validate:"required,max=150"`
	Username        string `json:"username" validate:"required,username"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// PhotoUpload is an image received at the photo storage boundary
type PhotoUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ProfileResponse struct {
	ID          string              `json:"id"`
	Username    string              `json:"username,omitempty"`
	FirstName   string              `json:"first_name,omitempty"`
	LastName    string              `json:"last_name,omitempty"`
	Email       string              `json:"email,omitempty"`
	PhoneNumber string              `json:"phone_number,omitempty"`
	AuthType    constant.AuthType   `json:"auth_type"`
	AuthStatus  constant.AuthStatus `json:"auth_status"`
	Photo       string              `json:"photo,omitempty"`
	LastLogin   *time.Time          `json:"last_login,omitempty"`
	CreatedTime time.Time           `json:"created_time"`
}

func NewProfileResponse(a *AccountEntity) *ProfileResponse {
	return &ProfileResponse{
		ID:          a.ID,
		Username:    deref(a.Username),
		FirstName:   deref(a.FirstName),
		LastName:    deref(a.LastName),
		Email:       deref(a.Email),
		PhoneNumber: deref(a.PhoneNumber),
		AuthType:    a.AuthType,
		AuthStatus:  a.AuthStatus,
		Photo:       deref(a.Photo),
		LastLogin:   a.LastLogin,
		CreatedTime: a.CreatedTime,
	}
}
