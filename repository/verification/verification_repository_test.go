package verification_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/account-service/constant"
	"github.com/muhammadheryan/account-service/model"
	verificationrepo "github.com/muhammadheryan/account-service/repository/verification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTx(t *testing.T) (verificationrepo.VerificationRepository, *sqlx.Tx, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	conn := sqlx.NewDb(db, "mysql")

	mock.ExpectBegin()
	tx, err := conn.Beginx()
	require.NoError(t, err)
	return verificationrepo.NewVerificationRepository(conn), tx, mock
}

func TestSQL_SupersedeThenInsert(t *testing.T) {
	repo, tx, mock := newTx(t)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE verification_code SET expires_at = ? WHERE account_id = ? AND is_confirmed = FALSE AND expires_at > ?")).
		WithArgs(now, "acc-1", now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO verification_code")).
		WithArgs("code-2", "acc-1", constant.AuthTypeEmail, "4821", now.Add(5*time.Minute), now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	n, err := repo.SupersedeTx(context.Background(), tx, "acc-1", now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	err = repo.InsertTx(context.Background(), tx, &model.VerificationCodeEntity{
		ID:          "code-2",
		AccountID:   "acc-1",
		Channel:     constant.AuthTypeEmail,
		Code:        "4821",
		ExpiresAt:   now.Add(5 * time.Minute),
		CreatedTime: now,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_GetLatestTx(t *testing.T) {
	tests := []struct {
		name string
		rows *sqlmock.Rows
		want *model.VerificationCodeEntity
	}{
		{
			name: "latest code",
			rows: sqlmock.NewRows([]string{"id", "account_id", "channel", "code", "expires_at", "is_confirmed", "created_time"}).
				AddRow("code-2", "acc-1", "PHONE", "1234", time.Date(2026, 3, 1, 10, 2, 0, 0, time.UTC), false, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)),
			want: &model.VerificationCodeEntity{
				ID:          "code-2",
				AccountID:   "acc-1",
				Channel:     constant.AuthTypePhone,
				Code:        "1234",
				ExpiresAt:   time.Date(2026, 3, 1, 10, 2, 0, 0, time.UTC),
				CreatedTime: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "no code issued",
			rows: sqlmock.NewRows([]string{"id", "account_id", "channel", "code", "expires_at", "is_confirmed", "created_time"}),
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, tx, mock := newTx(t)
			mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_time DESC, id DESC LIMIT 1 FOR UPDATE")).
				WithArgs("acc-1").
				WillReturnRows(tt.rows)

			got, err := repo.GetLatestTx(context.Background(), tx, "acc-1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSQL_ConfirmTx(t *testing.T) {
	repo, tx, mock := newTx(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE verification_code SET is_confirmed = TRUE WHERE id = ? AND is_confirmed = FALSE")).
		WithArgs("code-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE verification_code SET is_confirmed = TRUE")).
		WithArgs("code-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.ConfirmTx(context.Background(), tx, "code-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ConfirmTx(context.Background(), tx, "code-1")
	require.NoError(t, err)
	assert.False(t, ok)
}
