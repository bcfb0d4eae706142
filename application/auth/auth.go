package auth

import (
	"context"
	"time"

	"github.com/muhammadheryan/account-service/application/identifier"
	"github.com/muhammadheryan/account-service/application/lifecycle"
	"github.com/muhammadheryan/account-service/application/token"
	"github.com/muhammadheryan/account-service/constant"
	"github.com/muhammadheryan/account-service/model"
	accountrepo "github.com/muhammadheryan/account-service/repository/account"
	"github.com/muhammadheryan/account-service/utils/errors"
	"github.com/muhammadheryan/account-service/utils/logger"
	"github.com/muhammadheryan/account-service/utils/password"
	"go.uber.org/zap"
)

type AuthApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

type AuthAppImpl struct {
	classifier  *identifier.Classifier
	accountRepo accountrepo.AccountRepository
	tokenApp    token.TokenApp
}

func NewAuthApp(classifier *identifier.Classifier, accountRepo accountrepo.AccountRepository, tokenApp token.TokenApp) AuthApp {
	return &AuthAppImpl{
		classifier:  classifier,
		accountRepo: accountRepo,
		tokenApp:    tokenApp,
	}
}

// Login resolves userinput to one account, refuses accounts that have not finished
// onboarding before looking at the password, then checks the password and issues a
// token pair. The failures stay distinct here; collapsing them is up to the caller.
func (s *AuthAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	id, err := s.classifier.Classify(req.UserInput)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrClassification)
	}

	filter := &model.AccountFilter{}
	switch id.Kind {
	case constant.IdentifierEmail:
		filter.Email = id.Value
	case constant.IdentifierPhone:
		filter.PhoneNumber = id.Value
	default:
		filter.Username = id.Value
	}

	account, err := s.accountRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[Login] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		if id.Kind == constant.IdentifierUsername {
			return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
		}
		return nil, errors.SetCustomError(constant.ErrAccountNotFound)
	}

	if !lifecycle.CanLogin(account.AuthStatus) {
		return nil, errors.SetCustomError(constant.ErrIncompleteRegistration)
	}

	if account.PasswordHash == nil || !password.Compare(*account.PasswordHash, req.Password) {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	pair, err := s.tokenApp.IssuePair(ctx, account)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.UpdateLastLogin(ctx, account.ID, time.Now().UTC()); err != nil {
		logger.Error("[Login] err accountRepo.UpdateLastLogin", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		TokenPair:  *pair,
		AuthStatus: account.AuthStatus,
	}, nil
}
