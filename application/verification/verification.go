package verification

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/account-service/cmd/config"
	"github.com/muhammadheryan/account-service/constant"
	"github.com/muhammadheryan/account-service/model"
	accountrepo "github.com/muhammadheryan/account-service/repository/account"
	redisrepo "github.com/muhammadheryan/account-service/repository/redis"
	txrepo "github.com/muhammadheryan/account-service/repository/tx"
	verificationrepo "github.com/muhammadheryan/account-service/repository/verification"
	"github.com/muhammadheryan/account-service/utils/errors"
	"github.com/muhammadheryan/account-service/utils/logger"
	"go.uber.org/zap"
)

// VerificationApp issues and checks one-time codes. The Tx variants expect the caller
// to hold the account row lock (accountRepo.GetForUpdateTx) in tx.
type VerificationApp interface {
	IssueCode(ctx context.Context, accountID string) (*model.VerificationCodeEntity, error)
	IssueCodeTx(ctx context.Context, tx *sqlx.Tx, account *model.AccountEntity) (*model.VerificationCodeEntity, error)
	Verify(ctx context.Context, accountID, code string) error
	VerifyTx(ctx context.Context, tx *sqlx.Tx, account *model.AccountEntity, code string) error
}

type VerificationAppImpl struct {
	config           *config.Config
	accountRepo      accountrepo.AccountRepository
	verificationRepo verificationrepo.VerificationRepository
	txRepo           txrepo.TxRepository
	redisRepo        redisrepo.Repository
}

func NewVerificationApp(config *config.Config, accountRepo accountrepo.AccountRepository, verificationRepo verificationrepo.VerificationRepository, txRepo txrepo.TxRepository, redisRepo redisrepo.Repository) VerificationApp {
	return &VerificationAppImpl{
		config:           config,
		accountRepo:      accountRepo,
		verificationRepo: verificationRepo,
		txRepo:           txRepo,
		redisRepo:        redisRepo,
	}
}

func (s *VerificationAppImpl) IssueCode(ctx context.Context, accountID string) (*model.VerificationCodeEntity, error) {
	var code *model.VerificationCodeEntity
	err := s.withLockedAccount(ctx, "IssueCode", accountID, func(tx *sqlx.Tx, account *model.AccountEntity) error {
		var err error
		code, err = s.IssueCodeTx(ctx, tx, account)
		return err
	})
	if err != nil {
		return nil, err
	}
	return code, nil
}

// IssueCodeTx expires any live unconfirmed code of the account and stores a fresh one
// for the account's registration channel.
func (s *VerificationAppImpl) IssueCodeTx(ctx context.Context, tx *sqlx.Tx, account *model.AccountEntity) (*model.VerificationCodeEntity, error) {
	now := time.Now().UTC()

	if _, err := s.verificationRepo.SupersedeTx(ctx, tx, account.ID, now); err != nil {
		logger.Error("[IssueCodeTx] err verificationRepo.SupersedeTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	value, err := GenerateCode(s.config.Verification.CodeLength)
	if err != nil {
		logger.Error("[IssueCodeTx] err GenerateCode", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	code := &model.VerificationCodeEntity{
		ID:          uuid.NewString(),
		AccountID:   account.ID,
		Channel:     account.AuthType,
		Code:        value,
		ExpiresAt:   now.Add(s.config.Verification.TTL(account.AuthType)),
		CreatedTime: now,
	}
	if err := s.verificationRepo.InsertTx(ctx, tx, code); err != nil {
		logger.Error("[IssueCodeTx] err verificationRepo.InsertTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return code, nil
}

func (s *VerificationAppImpl) Verify(ctx context.Context, accountID, code string) error {
	return s.withLockedAccount(ctx, "Verify", accountID, func(tx *sqlx.Tx, account *model.AccountEntity) error {
		return s.VerifyTx(ctx, tx, account, code)
	})
}

// VerifyTx checks code against the latest code issued to the account and consumes it.
// Once a code has been checked more than MaxAttempts times it is treated as expired. The
// attempt counter is kept outside tx so a rollback does not reset it.
func (s *VerificationAppImpl) VerifyTx(ctx context.Context, tx *sqlx.Tx, account *model.AccountEntity, code string) error {
	latest, err := s.verificationRepo.GetLatestTx(ctx, tx, account.ID)
	if err != nil {
		logger.Error("[VerifyTx] err verificationRepo.GetLatestTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if latest == nil {
		return errors.SetCustomError(constant.ErrCodeNotFound)
	}
	if time.Now().UTC().After(latest.ExpiresAt) {
		return errors.SetCustomError(constant.ErrCodeExpired)
	}
	if latest.IsConfirmed {
		return errors.SetCustomError(constant.ErrCodeAlreadyUsed)
	}
	if limit := s.config.Verification.MaxAttempts; limit > 0 {
		n, err := s.redisRepo.IncrCodeAttempts(ctx, latest.ID, time.Until(latest.ExpiresAt))
		if err != nil {
			logger.Error("[VerifyTx] err redisRepo.IncrCodeAttempts", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrServiceUnavailable)
		}
		if n > int64(limit) {
			return errors.SetCustomError(constant.ErrCodeExpired)
		}
	}
	if latest.Channel != account.AuthType || subtle.ConstantTimeCompare([]byte(latest.Code), []byte(code)) != 1 {
		return errors.SetCustomError(constant.ErrCodeMismatch)
	}

	ok, err := s.verificationRepo.ConfirmTx(ctx, tx, latest.ID)
	if err != nil {
		logger.Error("[VerifyTx] err verificationRepo.ConfirmTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return errors.SetCustomError(constant.ErrCodeAlreadyUsed)
	}
	return nil
}

func (s *VerificationAppImpl) withLockedAccount(ctx context.Context, method, accountID string, fn func(tx *sqlx.Tx, account *model.AccountEntity) error) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("["+method+"] err txRepo.BeginTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	account, err := s.accountRepo.GetForUpdateTx(ctx, tx, accountID)
	if err != nil {
		logger.Error("["+method+"] err accountRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return errors.SetCustomError(constant.ErrAccountNotFound)
	}

	if err := fn(tx, account); err != nil {
		return err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("["+method+"] err txRepo.CommitTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

// GenerateCode returns a uniformly random numeric code of the given length.
func GenerateCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid code length %d", length)
	}
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", length, n), nil
}
