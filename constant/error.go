package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrInvalidRequest
	ErrUnauthorize
	ErrServiceUnavailable
	ErrClassification
	ErrAccountNotFound
	ErrDuplicateIdentifier
	ErrCodeNotFound
	ErrCodeExpired
	ErrCodeAlreadyUsed
	ErrCodeMismatch
	ErrIncompleteRegistration
	ErrInvalidCredentials
	ErrTokenInvalid
	ErrTokenExpired
	ErrTokenRevoked
	ErrPasswordMismatch
	ErrWeakPassword
	ErrInvalidUsername
	ErrIllegalTransition
	ErrTooManyRequests
	ErrInvalidPhoto
	ErrLoginFailed
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                "success",
	ErrInternal:               "error internal",
	ErrInvalidRequest:         "invalid request",
	ErrUnauthorize:            "unauthorize request",
	ErrServiceUnavailable:     "service temporarily unavailable, please retry",
	ErrClassification:         "input is not a valid email, phone number or username",
	ErrAccountNotFound:        "no account matches the given identifier",
	ErrDuplicateIdentifier:    "email, phone number or username already registered",
	ErrCodeNotFound:           "no verification code was issued for this account",
	ErrCodeExpired:            "verification code has expired, request a new one",
	ErrCodeAlreadyUsed:        "verification code was already used",
	ErrCodeMismatch:           "verification code is incorrect",
	ErrIncompleteRegistration: "registration is not complete, finish verification first",
	ErrInvalidCredentials:     "invalid login or password",
	ErrTokenInvalid:           "token is invalid",
	ErrTokenExpired:           "token has expired",
	ErrTokenRevoked:           "token has been revoked",
	ErrPasswordMismatch:       "password and confirmation do not match",
	ErrWeakPassword:           "password is too weak",
	ErrInvalidUsername:        "username must be 5-30 characters and not entirely numeric",
	ErrIllegalTransition:      "action not allowed in the current registration step",
	ErrTooManyRequests:        "too many requests, try again later",
	ErrInvalidPhoto:           "photo must be a jpg, jpeg, png, heic or heif image within the size limit",
	ErrLoginFailed:            "cannot log in with the given credentials",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                http.StatusOK,
	ErrInternal:               http.StatusInternalServerError,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrUnauthorize:            http.StatusUnauthorized,
	ErrServiceUnavailable:     http.StatusServiceUnavailable,
	ErrClassification:         http.StatusBadRequest,
	ErrAccountNotFound:        http.StatusNotFound,
	ErrDuplicateIdentifier:    http.StatusConflict,
	ErrCodeNotFound:           http.StatusBadRequest,
	ErrCodeExpired:            http.StatusBadRequest,
	ErrCodeAlreadyUsed:        http.StatusBadRequest,
	ErrCodeMismatch:           http.StatusBadRequest,
	ErrIncompleteRegistration: http.StatusForbidden,
	ErrInvalidCredentials:     http.StatusUnauthorized,
	ErrTokenInvalid:           http.StatusUnauthorized,
	ErrTokenExpired:           http.StatusUnauthorized,
	ErrTokenRevoked:           http.StatusUnauthorized,
	ErrPasswordMismatch:       http.StatusBadRequest,
	ErrWeakPassword:           http.StatusBadRequest,
	ErrInvalidUsername:        http.StatusBadRequest,
	ErrIllegalTransition:      http.StatusConflict,
	ErrTooManyRequests:        http.StatusTooManyRequests,
	ErrInvalidPhoto:           http.StatusBadRequest,
	ErrLoginFailed:            http.StatusUnauthorized,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                "0000",
	ErrInternal:               "0001",
	ErrInvalidRequest:         "0003",
	ErrUnauthorize:            "0004",
	ErrServiceUnavailable:     "0008",
	ErrClassification:         "1001",
	ErrAccountNotFound:        "1002",
	ErrDuplicateIdentifier:    "1003",
	ErrInvalidUsername:        "1004",
	ErrCodeNotFound:           "2001",
	ErrCodeExpired:            "2002",
	ErrCodeAlreadyUsed:        "2003",
	ErrCodeMismatch:           "2004",
	ErrTooManyRequests:        "2005",
	ErrIncompleteRegistration: "3001",
	ErrInvalidCredentials:     "3002",
	ErrLoginFailed:            "3003",
	ErrIllegalTransition:      "3004",
	ErrTokenInvalid:           "4001",
	ErrTokenExpired:           "4002",
	ErrTokenRevoked:           "4003",
	ErrPasswordMismatch:       "5001",
	ErrWeakPassword:           "5002",
	ErrInvalidPhoto:           "6001",
}

// ErrorTypeKind is the stable, machine readable name of each error type.
var ErrorTypeKind = map[ErrorType]string{
	Successful:                "SUCCESS",
	ErrInternal:               "INTERNAL",
	ErrInvalidRequest:         "INVALID_REQUEST",
	ErrUnauthorize:            "UNAUTHORIZED",
	ErrServiceUnavailable:     "SERVICE_UNAVAILABLE",
	ErrClassification:         "CLASSIFICATION_ERROR",
	ErrAccountNotFound:        "ACCOUNT_NOT_FOUND",
	ErrDuplicateIdentifier:    "DUPLICATE_IDENTIFIER",
	ErrCodeNotFound:           "CODE_NOT_FOUND",
	ErrCodeExpired:            "CODE_EXPIRED",
	ErrCodeAlreadyUsed:        "CODE_ALREADY_USED",
	ErrCodeMismatch:           "CODE_MISMATCH",
	ErrIncompleteRegistration: "INCOMPLETE_REGISTRATION",
	ErrInvalidCredentials:     "INVALID_CREDENTIALS",
	ErrTokenInvalid:           "TOKEN_INVALID",
	ErrTokenExpired:           "TOKEN_EXPIRED",
	ErrTokenRevoked:           "TOKEN_REVOKED",
	ErrPasswordMismatch:       "PASSWORD_MISMATCH",
	ErrWeakPassword:           "WEAK_PASSWORD",
	ErrInvalidUsername:        "INVALID_USERNAME",
	ErrIllegalTransition:      "ILLEGAL_TRANSITION",
	ErrTooManyRequests:        "TOO_MANY_REQUESTS",
	ErrInvalidPhoto:           "INVALID_PHOTO",
	ErrLoginFailed:            "LOGIN_FAILED",
}
