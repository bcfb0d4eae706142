package lifecycle_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/account-service/application/lifecycle"
	"github.com/muhammadheryan/account-service/constant"
	accountmocks "github.com/muhammadheryan/account-service/mocks/repository/account"
	"github.com/muhammadheryan/account-service/model"
	cerr "github.com/muhammadheryan/account-service/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestTransition(t *testing.T) {
	statuses := []constant.AuthStatus{
		constant.AuthStatusNew,
		constant.AuthStatusCodeVerified,
		constant.AuthStatusDone,
		constant.AuthStatusPhotoStep,
	}
	events := []lifecycle.Event{
		lifecycle.EventCodeVerified,
		lifecycle.EventProfileCompleted,
		lifecycle.EventPhotoSet,
	}
	legal := map[constant.AuthStatus]map[lifecycle.Event]constant.AuthStatus{
		constant.AuthStatusNew:          {lifecycle.EventCodeVerified: constant.AuthStatusCodeVerified},
		constant.AuthStatusCodeVerified: {lifecycle.EventProfileCompleted: constant.AuthStatusDone},
		constant.AuthStatusDone:         {lifecycle.EventPhotoSet: constant.AuthStatusPhotoStep},
		constant.AuthStatusPhotoStep:    {lifecycle.EventPhotoSet: constant.AuthStatusPhotoStep},
	}

	for _, from := range statuses {
		for _, ev := range events {
			to, err := lifecycle.Transition(from, ev)
			want, ok := legal[from][ev]
			if !ok {
				if !cerr.IsType(err, constant.ErrIllegalTransition) {
					t.Errorf("Transition(%s, %s) error = %v, want ErrIllegalTransition", from, ev, err)
				}
				if to != from {
					t.Errorf("Transition(%s, %s) moved to %s on failure", from, ev, to)
				}
				continue
			}
			if err != nil {
				t.Errorf("Transition(%s, %s) unexpected error %v", from, ev, err)
			}
			if to != want {
				t.Errorf("Transition(%s, %s) = %s, want %s", from, ev, to, want)
			}
			if to.Rank() < from.Rank() {
				t.Errorf("Transition(%s, %s) moved backward to %s", from, ev, to)
			}
		}
	}
}

func TestCanLogin(t *testing.T) {
	tests := []struct {
		status constant.AuthStatus
		want   bool
	}{
		{constant.AuthStatusNew, false},
		{constant.AuthStatusCodeVerified, false},
		{constant.AuthStatusDone, true},
		{constant.AuthStatusPhotoStep, true},
		{constant.AuthStatus("UNKNOWN"), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := lifecycle.CanLogin(tt.status); got != tt.want {
				t.Errorf("CanLogin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStateMachine_Advance(t *testing.T) {
	type fields struct {
		accountRepo *accountmocks.AccountRepository
	}
	type args struct {
		account *model.AccountEntity
		event   lifecycle.Event
	}
	tx := &sqlx.Tx{}
	tests := []struct {
		name       string
		args       args
		mockCall   func(f fields)
		wantStatus constant.AuthStatus
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: NEW to CODE_VERIFIED",
			args: args{
				account: &model.AccountEntity{ID: "acc-1", AuthStatus: constant.AuthStatusNew},
				event:   lifecycle.EventCodeVerified,
			},
			mockCall: func(f fields) {
				f.accountRepo.
					On("UpdateStatusTx", mock.Anything, tx, "acc-1", constant.AuthStatusNew, constant.AuthStatusCodeVerified).
					Return(true, nil).
					Once()
			},
			wantStatus: constant.AuthStatusCodeVerified,
		},
		{
			name: "success: photo again from PHOTO_STEP writes nothing",
			args: args{
				account: &model.AccountEntity{ID: "acc-1", AuthStatus: constant.AuthStatusPhotoStep},
				event:   lifecycle.EventPhotoSet,
			},
			mockCall:   func(f fields) {},
			wantStatus: constant.AuthStatusPhotoStep,
		},
		{
			name: "error: profile completion from NEW",
			args: args{
				account: &model.AccountEntity{ID: "acc-1", AuthStatus: constant.AuthStatusNew},
				event:   lifecycle.EventProfileCompleted,
			},
			mockCall:   func(f fields) {},
			wantStatus: constant.AuthStatusNew,
			wantErr:    true,
			errCode:    constant.ErrIllegalTransition,
		},
		{
			name: "error: status changed concurrently",
			args: args{
				account: &model.AccountEntity{ID: "acc-1", AuthStatus: constant.AuthStatusDone},
				event:   lifecycle.EventPhotoSet,
			},
			mockCall: func(f fields) {
				f.accountRepo.
					On("UpdateStatusTx", mock.Anything, tx, "acc-1", constant.AuthStatusDone, constant.AuthStatusPhotoStep).
					Return(false, nil).
					Once()
			},
			wantStatus: constant.AuthStatusDone,
			wantErr:    true,
			errCode:    constant.ErrIllegalTransition,
		},
		{
			name: "error: repository failure",
			args: args{
				account: &model.AccountEntity{ID: "acc-1", AuthStatus: constant.AuthStatusCodeVerified},
				event:   lifecycle.EventProfileCompleted,
			},
			mockCall: func(f fields) {
				f.accountRepo.
					On("UpdateStatusTx", mock.Anything, tx, "acc-1", constant.AuthStatusCodeVerified, constant.AuthStatusDone).
					Return(false, errors.New("db down")).
					Once()
			},
			wantStatus: constant.AuthStatusCodeVerified,
			wantErr:    true,
			errCode:    constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{accountRepo: accountmocks.NewAccountRepository(t)}
			tt.mockCall(f)

			sm := lifecycle.NewStateMachine(f.accountRepo)
			err := sm.Advance(context.Background(), tx, tt.args.account, tt.args.event)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Advance() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Errorf("Advance() error = %v, want code %s", err, constant.ErrorTypeCode[tt.errCode])
				}
			}
			if tt.args.account.AuthStatus != tt.wantStatus {
				t.Errorf("status = %s, want %s", tt.args.account.AuthStatus, tt.wantStatus)
			}
		})
	}
}
