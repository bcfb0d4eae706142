package account

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/account-service/application/identifier"
	"github.com/muhammadheryan/account-service/application/lifecycle"
	"github.com/muhammadheryan/account-service/application/notification"
	"github.com/muhammadheryan/account-service/application/token"
	"github.com/muhammadheryan/account-service/application/verification"
	"github.com/muhammadheryan/account-service/cmd/config"
	"github.com/muhammadheryan/account-service/constant"
	"github.com/muhammadheryan/account-service/model"
	accountrepo "github.com/muhammadheryan/account-service/repository/account"
	redisrepo "github.com/muhammadheryan/account-service/repository/redis"
	txrepo "github.com/muhammadheryan/account-service/repository/tx"
	"github.com/muhammadheryan/account-service/utils/errors"
	"github.com/muhammadheryan/account-service/utils/logger"
	"github.com/muhammadheryan/account-service/utils/password"
	"go.uber.org/zap"
)

// PhotoStorage validates and stores an uploaded photo and returns its reference.
// Rejected uploads come back as ErrInvalidPhoto.
type PhotoStorage interface {
	Store(ctx context.Context, accountID string, upload *model.PhotoUpload) (string, error)
}

type AccountApp interface {
	SignUp(ctx context.Context, req *model.SignUpRequest) (*model.SignUpResponse, error)
	VerifyCode(ctx context.Context, accountID string, req *model.VerifyRequest) (*model.StatusResponse, error)
	ResendCode(ctx context.Context, accountID string) (*model.ResendResponse, error)
	CompleteProfile(ctx context.Context, accountID string, req *model.CompleteProfileRequest) (*model.StatusResponse, error)
	SetPhoto(ctx context.Context, accountID string, upload *model.PhotoUpload) (*model.ProfileResponse, error)
	GetProfile(ctx context.Context, accountID string) (*model.ProfileResponse, error)
}

type AccountAppImpl struct {
	config          *config.Config
	classifier      *identifier.Classifier
	accountRepo     accountrepo.AccountRepository
	txRepo          txrepo.TxRepository
	redisRepo       redisrepo.Repository
	verificationApp verification.VerificationApp
	stateMachine    lifecycle.StateMachine
	tokenApp        token.TokenApp
	dispatcher      notification.Dispatcher
	photoStorage    PhotoStorage
}

func NewAccountApp(
	config *config.Config,
	classifier *identifier.Classifier,
	accountRepo accountrepo.AccountRepository,
	txRepo txrepo.TxRepository,
	redisRepo redisrepo.Repository,
	verificationApp verification.VerificationApp,
	stateMachine lifecycle.StateMachine,
	tokenApp token.TokenApp,
	dispatcher notification.Dispatcher,
	photoStorage PhotoStorage,
) AccountApp {
	return &AccountAppImpl{
		config:          config,
		classifier:      classifier,
		accountRepo:     accountRepo,
		txRepo:          txRepo,
		redisRepo:       redisRepo,
		verificationApp: verificationApp,
		stateMachine:    stateMachine,
		tokenApp:        tokenApp,
		dispatcher:      dispatcher,
		photoStorage:    photoStorage,
	}
}

// SignUp creates a NEW account for an email or phone number, issues its first code and
// returns an onboarding token pair. The code is delivered in the background.
func (s *AccountAppImpl) SignUp(ctx context.Context, req *model.SignUpRequest) (*model.SignUpResponse, error) {
	id, err := s.classifier.ClassifyContact(req.EmailPhoneNumber)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrClassification)
	}

	entity := &model.AccountEntity{
		ID:          uuid.NewString(),
		AuthType:    id.Channel(),
		AuthStatus:  constant.AuthStatusNew,
		CreatedTime: time.Now().UTC(),
	}
	filter := &model.AccountFilter{}
	if id.Kind == constant.IdentifierEmail {
		entity.Email = &id.Value
		filter.Email = id.Value
	} else {
		entity.PhoneNumber = &id.Value
		filter.PhoneNumber = id.Value
	}

	existing, err := s.accountRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[SignUp] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrDuplicateIdentifier)
	}

	var code *model.VerificationCodeEntity
	err = s.inTx(ctx, "SignUp", func(tx *sqlx.Tx) error {
		if err := s.accountRepo.CreateTx(ctx, tx, entity); err != nil {
			if stderrors.Is(err, accountrepo.ErrDuplicate) {
				return errors.SetCustomError(constant.ErrDuplicateIdentifier)
			}
			logger.Error("[SignUp] err accountRepo.CreateTx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		code, err = s.verificationApp.IssueCodeTx(ctx, tx, entity)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.dispatch(entity, code)

	pair, err := s.tokenApp.IssuePair(ctx, entity)
	if err != nil {
		return nil, err
	}

	return &model.SignUpResponse{
		ID:         entity.ID,
		AuthType:   entity.AuthType,
		AuthStatus: entity.AuthStatus,
		TokenPair:  *pair,
	}, nil
}

// VerifyCode consumes the submitted code and moves the account to CODE_VERIFIED.
func (s *AccountAppImpl) VerifyCode(ctx context.Context, accountID string, req *model.VerifyRequest) (*model.StatusResponse, error) {
	var account *model.AccountEntity
	err := s.inTx(ctx, "VerifyCode", func(tx *sqlx.Tx) error {
		var err error
		account, err = s.lock(ctx, tx, "VerifyCode", accountID)
		if err != nil {
			return err
		}
		if err := s.verificationApp.VerifyTx(ctx, tx, account, req.Code); err != nil {
			return err
		}
		return s.stateMachine.Advance(ctx, tx, account, lifecycle.EventCodeVerified)
	})
	if err != nil {
		return nil, err
	}

	return &model.StatusResponse{ID: account.ID, AuthStatus: account.AuthStatus}, nil
}

// ResendCode replaces the live code of a NEW account with a fresh one.
func (s *AccountAppImpl) ResendCode(ctx context.Context, accountID string) (*model.ResendResponse, error) {
	var (
		account *model.AccountEntity
		code    *model.VerificationCodeEntity
	)
	err := s.inTx(ctx, "ResendCode", func(tx *sqlx.Tx) error {
		var err error
		account, err = s.lock(ctx, tx, "ResendCode", accountID)
		if err != nil {
			return err
		}
		if account.AuthStatus != constant.AuthStatusNew {
			return errors.SetCustomError(constant.ErrIllegalTransition)
		}
		if err := s.throttle(ctx, "ResendCode", accountID); err != nil {
			return err
		}
		code, err = s.verificationApp.IssueCodeTx(ctx, tx, account)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.dispatch(account, code)

	return &model.ResendResponse{ID: account.ID, AuthType: account.AuthType, ExpiresAt: code.ExpiresAt}, nil
}

// CompleteProfile sets names, username and password and moves the account to DONE.
func (s *AccountAppImpl) CompleteProfile(ctx context.Context, accountID string, req *model.CompleteProfileRequest) (*model.StatusResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, errors.SetCustomError(constant.ErrPasswordMismatch)
	}
	if !identifier.IsValidUsername(req.Username) {
		return nil, errors.SetCustomError(constant.ErrInvalidUsername)
	}
	if !password.IsStrong(req.Password, req.Username) {
		return nil, errors.SetCustomError(constant.ErrWeakPassword)
	}

	taken, err := s.accountRepo.Get(ctx, &model.AccountFilter{Username: req.Username})
	if err != nil {
		logger.Error("[CompleteProfile] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if taken != nil && taken.ID != accountID {
		return nil, errors.SetCustomError(constant.ErrDuplicateIdentifier)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		logger.Error("[CompleteProfile] err password.Hash", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	var account *model.AccountEntity
	err = s.inTx(ctx, "CompleteProfile", func(tx *sqlx.Tx) error {
		account, err = s.lock(ctx, tx, "CompleteProfile", accountID)
		if err != nil {
			return err
		}
		if err := s.stateMachine.Advance(ctx, tx, account, lifecycle.EventProfileCompleted); err != nil {
			return err
		}
		err = s.accountRepo.UpdateProfileTx(ctx, tx, &model.ProfileUpdate{
			AccountID:    accountID,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Username:     req.Username,
			PasswordHash: hash,
		})
		if stderrors.Is(err, accountrepo.ErrDuplicate) {
			return errors.SetCustomError(constant.ErrDuplicateIdentifier)
		}
		if err != nil {
			logger.Error("[CompleteProfile] err accountRepo.UpdateProfileTx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.StatusResponse{ID: account.ID, AuthStatus: account.AuthStatus}, nil
}

// SetPhoto stores the photo of a DONE or PHOTO_STEP account and moves it to PHOTO_STEP.
func (s *AccountAppImpl) SetPhoto(ctx context.Context, accountID string, upload *model.PhotoUpload) (*model.ProfileResponse, error) {
	current, err := s.get(ctx, "SetPhoto", accountID)
	if err != nil {
		return nil, err
	}
	if _, err := lifecycle.Transition(current.AuthStatus, lifecycle.EventPhotoSet); err != nil {
		return nil, err
	}

	ref, err := s.photoStorage.Store(ctx, accountID, upload)
	if err != nil {
		if errors.IsType(err, constant.ErrInvalidPhoto) {
			return nil, err
		}
		logger.Error("[SetPhoto] err photoStorage.Store", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrServiceUnavailable)
	}

	var account *model.AccountEntity
	err = s.inTx(ctx, "SetPhoto", func(tx *sqlx.Tx) error {
		account, err = s.lock(ctx, tx, "SetPhoto", accountID)
		if err != nil {
			return err
		}
		if err := s.accountRepo.UpdatePhotoTx(ctx, tx, accountID, ref); err != nil {
			logger.Error("[SetPhoto] err accountRepo.UpdatePhotoTx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		account.Photo = &ref
		return s.stateMachine.Advance(ctx, tx, account, lifecycle.EventPhotoSet)
	})
	if err != nil {
		return nil, err
	}

	return model.NewProfileResponse(account), nil
}

func (s *AccountAppImpl) GetProfile(ctx context.Context, accountID string) (*model.ProfileResponse, error) {
	account, err := s.get(ctx, "GetProfile", accountID)
	if err != nil {
		return nil, err
	}
	return model.NewProfileResponse(account), nil
}

func (s *AccountAppImpl) get(ctx context.Context, method, accountID string) (*model.AccountEntity, error) {
	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{ID: accountID})
	if err != nil {
		logger.Error("["+method+"] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return nil, errors.SetCustomError(constant.ErrAccountNotFound)
	}
	return account, nil
}

func (s *AccountAppImpl) lock(ctx context.Context, tx *sqlx.Tx, method, accountID string) (*model.AccountEntity, error) {
	account, err := s.accountRepo.GetForUpdateTx(ctx, tx, accountID)
	if err != nil {
		logger.Error("["+method+"] err accountRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return nil, errors.SetCustomError(constant.ErrAccountNotFound)
	}
	return account, nil
}

// throttle counts code requests per account and hour. A zero limit disables it.
func (s *AccountAppImpl) throttle(ctx context.Context, method, accountID string) error {
	limit := s.config.Verification.ResendLimitPerHour
	if limit <= 0 {
		return nil
	}
	n, err := s.redisRepo.IncrResend(ctx, accountID, time.Hour)
	if err != nil {
		logger.Error("["+method+"] err redisRepo.IncrResend", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrServiceUnavailable)
	}
	if n > int64(limit) {
		return errors.SetCustomError(constant.ErrTooManyRequests)
	}
	return nil
}

func (s *AccountAppImpl) dispatch(account *model.AccountEntity, code *model.VerificationCodeEntity) {
	s.dispatcher.Dispatch(&model.VerificationMessage{
		AccountID: account.ID,
		Channel:   code.Channel,
		Contact:   account.Contact(),
		Code:      code.Code,
		ExpiresAt: code.ExpiresAt,
	})
}

func (s *AccountAppImpl) inTx(ctx context.Context, method string, fn func(tx *sqlx.Tx) error) error {
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

	if err := fn(tx); err != nil {
		return err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("["+method+"] err txRepo.CommitTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}
