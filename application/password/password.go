package password

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/account-service/application/identifier"
	"github.com/muhammadheryan/account-service/application/lifecycle"
	"github.com/muhammadheryan/account-service/application/notification"
	"github.com/muhammadheryan/account-service/application/verification"
	"github.com/muhammadheryan/account-service/cmd/config"
	"github.com/muhammadheryan/account-service/constant"
	"github.com/muhammadheryan/account-service/model"
	accountrepo "github.com/muhammadheryan/account-service/repository/account"
	redisrepo "github.com/muhammadheryan/account-service/repository/redis"
	txrepo "github.com/muhammadheryan/account-service/repository/tx"
	"github.com/muhammadheryan/account-service/utils/errors"
	"github.com/muhammadheryan/account-service/utils/logger"
	passwordutil "github.com/muhammadheryan/account-service/utils/password"
	"go.uber.org/zap"
)

type PasswordApp interface {
	ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) (*model.ForgotPasswordResponse, error)
	ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) (*model.StatusResponse, error)
}

type PasswordAppImpl struct {
	config          *config.Config
	classifier      *identifier.Classifier
	accountRepo     accountrepo.AccountRepository
	txRepo          txrepo.TxRepository
	redisRepo       redisrepo.Repository
	verificationApp verification.VerificationApp
	dispatcher      notification.Dispatcher
}

func NewPasswordApp(
	config *config.Config,
	classifier *identifier.Classifier,
	accountRepo accountrepo.AccountRepository,
	txRepo txrepo.TxRepository,
	redisRepo redisrepo.Repository,
	verificationApp verification.VerificationApp,
	dispatcher notification.Dispatcher,
) PasswordApp {
	return &PasswordAppImpl{
		config:          config,
		classifier:      classifier,
		accountRepo:     accountRepo,
		txRepo:          txRepo,
		redisRepo:       redisRepo,
		verificationApp: verificationApp,
		dispatcher:      dispatcher,
	}
}

// ForgotPassword sends a reset code to the email or phone number of a registered account.
func (s *PasswordAppImpl) ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) (*model.ForgotPasswordResponse, error) {
	account, err := s.resolve(ctx, "ForgotPassword", req.EmailOrPhone)
	if err != nil {
		return nil, err
	}

	if limit := s.config.Verification.ResendLimitPerHour; limit > 0 {
		n, err := s.redisRepo.IncrResend(ctx, account.ID, time.Hour)
		if err != nil {
			logger.Error("[ForgotPassword] err redisRepo.IncrResend", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrServiceUnavailable)
		}
		if n > int64(limit) {
			return nil, errors.SetCustomError(constant.ErrTooManyRequests)
		}
	}

	code, err := s.verificationApp.IssueCode(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(&model.VerificationMessage{
		AccountID: account.ID,
		Channel:   code.Channel,
		Contact:   account.Contact(),
		Code:      code.Code,
		ExpiresAt: code.ExpiresAt,
	})

	return &model.ForgotPasswordResponse{ID: account.ID, AuthType: account.AuthType, ExpiresAt: code.ExpiresAt}, nil
}

// ResetPassword consumes a reset code and replaces the password hash. Refresh tokens
// issued up to the reset stop working. The account status is left as it is.
func (s *PasswordAppImpl) ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) (*model.StatusResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, errors.SetCustomError(constant.ErrPasswordMismatch)
	}

	account, err := s.resolve(ctx, "ResetPassword", req.EmailOrPhone)
	if err != nil {
		return nil, err
	}
	if !passwordutil.IsStrong(req.Password, account.UsernameValue()) {
		return nil, errors.SetCustomError(constant.ErrWeakPassword)
	}

	hash, err := passwordutil.Hash(req.Password)
	if err != nil {
		logger.Error("[ResetPassword] err password.Hash", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ResetPassword] err txRepo.BeginTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	locked, err := s.lock(ctx, tx, account.ID)
	if err != nil {
		return nil, err
	}
	if err := s.verificationApp.VerifyTx(ctx, tx, locked, req.Code); err != nil {
		return nil, err
	}
	if err := s.accountRepo.UpdatePasswordTx(ctx, tx, locked.ID, hash); err != nil {
		logger.Error("[ResetPassword] err accountRepo.UpdatePasswordTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.redisRepo.SetTokensNotBefore(ctx, locked.ID, time.Now(), s.config.Auth.RefreshExpiration); err != nil {
		logger.Error("[ResetPassword] err redisRepo.SetTokensNotBefore", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrServiceUnavailable)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ResetPassword] err txRepo.CommitTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.StatusResponse{ID: locked.ID, AuthStatus: locked.AuthStatus}, nil
}

// resolve finds the account of an email or phone number. Accounts that never set a
// password cannot reset one.
func (s *PasswordAppImpl) resolve(ctx context.Context, method, input string) (*model.AccountEntity, error) {
	id, err := s.classifier.ClassifyContact(input)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrClassification)
	}

	filter := &model.AccountFilter{}
	if id.Kind == constant.IdentifierEmail {
		filter.Email = id.Value
	} else {
		filter.PhoneNumber = id.Value
	}

	account, err := s.accountRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("["+method+"] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return nil, errors.SetCustomError(constant.ErrAccountNotFound)
	}
	if !lifecycle.CanLogin(account.AuthStatus) {
		return nil, errors.SetCustomError(constant.ErrIncompleteRegistration)
	}
	return account, nil
}

func (s *PasswordAppImpl) lock(ctx context.Context, tx *sqlx.Tx, accountID string) (*model.AccountEntity, error) {
	account, err := s.accountRepo.GetForUpdateTx(ctx, tx, accountID)
	if err != nil {
		logger.Error("[ResetPassword] err accountRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return nil, errors.SetCustomError(constant.ErrAccountNotFound)
	}
	return account, nil
}
