package account_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/account-service/constant"
	"github.com/muhammadheryan/account-service/model"
	accountrepo "github.com/muhammadheryan/account-service/repository/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accountColumns = []string{"id", "username", "first_name", "last_name", "email", "phone_number", "password_hash", "auth_type", "auth_status", "photo", "last_login", "created_time", "updated_time"}

func newRepo(t *testing.T) (accountrepo.AccountRepository, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	conn := sqlx.NewDb(db, "mysql")
	return accountrepo.NewAccountRepository(conn), conn, mock
}

func TestSQL_Get(t *testing.T) {
	repo, _, mock := newRepo(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("AND username = ? ORDER BY created_time ASC LIMIT 1")).
		WithArgs("Bob123").
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow("acc-1", "bob123", "Bob", "Builder", "bob@example.com", nil, "hash", "EMAIL", "DONE", nil, nil, created, nil))

	got, err := repo.Get(context.Background(), &model.AccountFilter{Username: "Bob123"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "acc-1", got.ID)
	assert.Equal(t, "bob123", got.UsernameValue())
	assert.Nil(t, got.PhoneNumber)
	assert.Equal(t, constant.AuthStatusDone, got.AuthStatus)
	assert.Equal(t, "bob@example.com", got.Contact())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_Get_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("AND email = ?")).
		WithArgs("missing@example.com").
		WillReturnRows(sqlmock.NewRows(accountColumns))

	got, err := repo.Get(context.Background(), &model.AccountFilter{Email: "missing@example.com"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQL_CreateTx_Duplicate(t *testing.T) {
	repo, conn, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO account")).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	tx, err := conn.Beginx()
	require.NoError(t, err)
	email := "bob@example.com"
	err = repo.CreateTx(context.Background(), tx, &model.AccountEntity{
		ID:          "acc-1",
		Email:       &email,
		AuthType:    constant.AuthTypeEmail,
		AuthStatus:  constant.AuthStatusNew,
		CreatedTime: time.Now(),
	})
	assert.ErrorIs(t, err, accountrepo.ErrDuplicate)
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_UpdateStatusTx(t *testing.T) {
	repo, conn, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE account SET auth_status = ?, updated_time = ? WHERE id = ? AND auth_status = ?")).
		WithArgs(constant.AuthStatusCodeVerified, sqlmock.AnyArg(), "acc-1", constant.AuthStatusNew).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE account SET auth_status = ?")).
		WithArgs(constant.AuthStatusCodeVerified, sqlmock.AnyArg(), "acc-1", constant.AuthStatusNew).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	tx, err := conn.Beginx()
	require.NoError(t, err)

	ok, err := repo.UpdateStatusTx(context.Background(), tx, "acc-1", constant.AuthStatusNew, constant.AuthStatusCodeVerified)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.UpdateStatusTx(context.Background(), tx, "acc-1", constant.AuthStatusNew, constant.AuthStatusCodeVerified)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_GetForUpdateTx(t *testing.T) {
	repo, conn, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("AND id = ? FOR UPDATE")).
		WithArgs("acc-1").
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow("acc-1", nil, nil, nil, nil, "+14155552671", nil, "PHONE", "NEW", nil, nil, time.Now(), nil))
	mock.ExpectCommit()

	tx, err := conn.Beginx()
	require.NoError(t, err)
	got, err := repo.GetForUpdateTx(context.Background(), tx, "acc-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "+14155552671", got.Contact())
	assert.Nil(t, got.Username)
	require.NoError(t, tx.Commit())
}

func TestSQL_UpdateProfileTx_Duplicate(t *testing.T) {
	repo, conn, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE account SET first_name = ?")).
		WithArgs("Bob", "Builder", "bob123", "hash", sqlmock.AnyArg(), "acc-1").
		WillReturnError(&mysql.MySQLError{Number: 1062})
	mock.ExpectRollback()

	tx, err := conn.Beginx()
	require.NoError(t, err)
	err = repo.UpdateProfileTx(context.Background(), tx, &model.ProfileUpdate{
		AccountID:    "acc-1",
		FirstName:    "Bob",
		LastName:     "Builder",
		Username:     "bob123",
		PasswordHash: "hash",
	})
	assert.ErrorIs(t, err, accountrepo.ErrDuplicate)
	require.NoError(t, tx.Rollback())
}

func TestSQL_UpdateLastLogin(t *testing.T) {
	repo, _, mock := newRepo(t)
	at := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE account SET last_login = ? WHERE id = ?")).
		WithArgs(at, "acc-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateLastLogin(context.Background(), "acc-1", at))
	require.NoError(t, mock.ExpectationsWereMet())
}
