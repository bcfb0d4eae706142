package verification

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/account-service/model"
)

type SQL struct {
	conn *sqlx.DB
}

// VerificationRepository stores verification codes. Every method runs inside the
// caller's transaction, after the owning account row has been locked.
type VerificationRepository interface {
	SupersedeTx(ctx context.Context, tx *sqlx.Tx, accountID string, now time.Time) (int64, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.VerificationCodeEntity) error
	GetLatestTx(ctx context.Context, tx *sqlx.Tx, accountID string) (*model.VerificationCodeEntity, error)
	ConfirmTx(ctx context.Context, tx *sqlx.Tx, id string) (bool, error)
}

func NewVerificationRepository(conn *sqlx.DB) VerificationRepository {
	return &SQL{conn: conn}
}

const (
	supersedeQuery = `UPDATE verification_code SET expires_at = ? WHERE account_id = ? AND is_confirmed = FALSE AND expires_at > ?`
	insertCodeSQL  = `INSERT INTO verification_code (id, account_id, channel, code, expires_at, is_confirmed, created_time) VALUES (?, ?, ?, ?, ?, FALSE, ?)`
	selectLatest   = `SELECT id, account_id, channel, code, expires_at, is_confirmed, created_time FROM verification_code WHERE account_id = ? ORDER BY created_time DESC, id DESC LIMIT 1 FOR UPDATE`
	confirmQuery   = `UPDATE verification_code SET is_confirmed = TRUE WHERE id = ? AND is_confirmed = FALSE`
)

// SupersedeTx expires every live unconfirmed code of the account and returns how many
// were expired.
func (s *SQL) SupersedeTx(ctx context.Context, tx *sqlx.Tx, accountID string, now time.Time) (int64, error) {
	res, err := tx.ExecContext(ctx, supersedeQuery, now, accountID, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.VerificationCodeEntity) error {
	_, err := tx.ExecContext(ctx, insertCodeSQL, data.ID, data.AccountID, data.Channel, data.Code, data.ExpiresAt, data.CreatedTime)
	return err
}

// GetLatestTx returns the most recently issued code of the account, or nil.
func (s *SQL) GetLatestTx(ctx context.Context, tx *sqlx.Tx, accountID string) (*model.VerificationCodeEntity, error) {
	var entity model.VerificationCodeEntity
	if err := tx.QueryRowxContext(ctx, selectLatest, accountID).StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// ConfirmTx marks the code confirmed. It reports false when the code was already confirmed.
func (s *SQL) ConfirmTx(ctx context.Context, tx *sqlx.Tx, id string) (bool, error) {
	res, err := tx.ExecContext(ctx, confirmQuery, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
