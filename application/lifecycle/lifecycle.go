package lifecycle

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/account-service/constant"
	"github.com/muhammadheryan/account-service/model"
	accountrepo "github.com/muhammadheryan/account-service/repository/account"
	"github.com/muhammadheryan/account-service/utils/errors"
	"github.com/muhammadheryan/account-service/utils/logger"
	"go.uber.org/zap"
)

// Event is a completed onboarding step.
type Event string

const (
	EventCodeVerified     Event = "code_verified"
	EventProfileCompleted Event = "profile_completed"
	EventPhotoSet         Event = "photo_set"
)

// Transition returns the status an account in from moves to when event happens.
// Setting a photo again from PHOTO_STEP is a no-op; every other pair is illegal.
func Transition(from constant.AuthStatus, event Event) (constant.AuthStatus, error) {
	switch {
	case event == EventCodeVerified && from == constant.AuthStatusNew:
		return constant.AuthStatusCodeVerified, nil
	case event == EventProfileCompleted && from == constant.AuthStatusCodeVerified:
		return constant.AuthStatusDone, nil
	case event == EventPhotoSet && from == constant.AuthStatusDone:
		return constant.AuthStatusPhotoStep, nil
	case event == EventPhotoSet && from == constant.AuthStatusPhotoStep:
		return constant.AuthStatusPhotoStep, nil
	}
	return from, errors.SetCustomError(constant.ErrIllegalTransition)
}

// CanLogin reports whether an account in status may authenticate.
func CanLogin(status constant.AuthStatus) bool {
	return status == constant.AuthStatusDone || status == constant.AuthStatusPhotoStep
}

// StateMachine is the only writer of auth_status.
type StateMachine interface {
	Advance(ctx context.Context, tx *sqlx.Tx, account *model.AccountEntity, event Event) error
}

type StateMachineImpl struct {
	accountRepo accountrepo.AccountRepository
}

func NewStateMachine(accountRepo accountrepo.AccountRepository) StateMachine {
	return &StateMachineImpl{accountRepo: accountRepo}
}

// Advance applies event to account inside tx. The write is conditional on the stored
// status still being account.AuthStatus, so a concurrent transition makes it fail with
// ErrIllegalTransition instead of moving the account twice.
func (s *StateMachineImpl) Advance(ctx context.Context, tx *sqlx.Tx, account *model.AccountEntity, event Event) error {
	to, err := Transition(account.AuthStatus, event)
	if err != nil {
		return err
	}
	if to == account.AuthStatus {
		return nil
	}

	ok, err := s.accountRepo.UpdateStatusTx(ctx, tx, account.ID, account.AuthStatus, to)
	if err != nil {
		logger.Error("[Advance] err accountRepo.UpdateStatusTx", zap.String("error", err.Error()), zap.String("account_id", account.ID))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return errors.SetCustomError(constant.ErrIllegalTransition)
	}

	account.AuthStatus = to
	return nil
}
