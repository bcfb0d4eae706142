package account

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/account-service/constant"
	"github.com/muhammadheryan/account-service/model"
)

// ErrDuplicate is returned when a write violates the username, email or phone_number
// unique index.
var ErrDuplicate = errors.New("duplicate account identifier")

const mysqlDuplicateEntry = 1062

type SQL struct {
	conn *sqlx.DB
}

type AccountRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.AccountEntity) error
	Get(ctx context.Context, filter *model.AccountFilter) (*model.AccountEntity, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.AccountEntity, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id string, from, to constant.AuthStatus) (bool, error)
	UpdateProfileTx(ctx context.Context, tx *sqlx.Tx, data *model.ProfileUpdate) error
	UpdatePasswordTx(ctx context.Context, tx *sqlx.Tx, id, passwordHash string) error
	UpdatePhotoTx(ctx context.Context, tx *sqlx.Tx, id, photo string) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

func NewAccountRepository(conn *sqlx.DB) AccountRepository {
	return &SQL{conn: conn}
}

const (
	insertAccountQuery = `INSERT INTO account (id, email, phone_number, auth_type, auth_status, created_time) VALUES (?, ?, ?, ?, ?, ?)`
	selectAccountBase  = `SELECT id, username, first_name, last_name, email, phone_number, password_hash, auth_type, auth_status, photo, last_login, created_time, updated_time FROM account WHERE true`
	updateStatusQuery  = `UPDATE account SET auth_status = ?, updated_time = ? WHERE id = ? AND auth_status = ?`
	updateProfileQuery = `UPDATE account SET first_name = ?, last_name = ?, username = ?, password_hash = ?, updated_time = ? WHERE id = ?`
	updatePasswordSQL  = `UPDATE account SET password_hash = ?, updated_time = ? WHERE id = ?`
	updatePhotoQuery   = `UPDATE account SET photo = ?, updated_time = ? WHERE id = ?`
	updateLastLoginSQL = `UPDATE account SET last_login = ? WHERE id = ?`
)

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.AccountEntity) error {
	_, err := tx.ExecContext(ctx, insertAccountQuery, data.ID, data.Email, data.PhoneNumber, data.AuthType, data.AuthStatus, data.CreatedTime)
	return mapDuplicate(err)
}

// Get returns the first account matching every non-empty filter field, or nil when
// nothing matches.
func (s *SQL) Get(ctx context.Context, filter *model.AccountFilter) (*model.AccountEntity, error) {
	query := selectAccountBase
	args := make([]any, 0, 4)

	if filter.ID != "" {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Username != "" {
		// username uses a case-insensitive, accent-sensitive collation
		query += " AND username = ?"
		args = append(args, filter.Username)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.PhoneNumber != "" {
		query += " AND phone_number = ?"
		args = append(args, filter.PhoneNumber)
	}
	query += " ORDER BY created_time ASC LIMIT 1"

	var entity model.AccountEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// GetForUpdateTx locks the account row for the rest of the transaction. Code issuance,
// verification and status changes for one account are serialized on this lock.
func (s *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.AccountEntity, error) {
	var entity model.AccountEntity
	row := tx.QueryRowxContext(ctx, selectAccountBase+" AND id = ? FOR UPDATE", id)
	if err := row.StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// UpdateStatusTx moves the account from one status to another and reports whether the
// row was still in the expected status.
func (s *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id string, from, to constant.AuthStatus) (bool, error) {
	res, err := tx.ExecContext(ctx, updateStatusQuery, to, time.Now().UTC(), id, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *SQL) UpdateProfileTx(ctx context.Context, tx *sqlx.Tx, data *model.ProfileUpdate) error {
	_, err := tx.ExecContext(ctx, updateProfileQuery, data.FirstName, data.LastName, data.Username, data.PasswordHash, time.Now().UTC(), data.AccountID)
	return mapDuplicate(err)
}

func (s *SQL) UpdatePasswordTx(ctx context.Context, tx *sqlx.Tx, id, passwordHash string) error {
	_, err := tx.ExecContext(ctx, updatePasswordSQL, passwordHash, time.Now().UTC(), id)
	return err
}

func (s *SQL) UpdatePhotoTx(ctx context.Context, tx *sqlx.Tx, id, photo string) error {
	_, err := tx.ExecContext(ctx, updatePhotoQuery, photo, time.Now().UTC(), id)
	return err
}

func (s *SQL) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := s.conn.ExecContext(ctx, updateLastLoginSQL, at, id)
	return err
}

func mapDuplicate(err error) error {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return ErrDuplicate
	}
	return err
}
