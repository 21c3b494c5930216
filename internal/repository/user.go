package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/barbershop-api/internal/model/user"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, phone, name, email, bonus_points, created_at, updated_at`

const (
	getUserByIDSQL    = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	getUserByPhoneSQL = `SELECT ` + userColumns + ` FROM users WHERE phone = $1`

	listBonusHistorySQL = `
SELECT id, user_id, points, type, COALESCE(description, '') AS description, created_at
FROM bonus_history
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`

	upsertUserSQL = `
INSERT INTO users (phone, name, email, bonus_points)
VALUES ($1, $2, $3, 0)
ON CONFLICT (phone) DO UPDATE
SET name = EXCLUDED.name, email = EXCLUDED.email
RETURNING ` + userColumns

	addBonusPointsSQL = `
UPDATE users
SET bonus_points = bonus_points + $1, updated_at = CURRENT_TIMESTAMP
WHERE id = $2
RETURNING ` + userColumns

	insertBonusHistorySQL = `
INSERT INTO bonus_history (user_id, points, type, description)
VALUES ($1, $2, $3, $4)`
)

// GetByID returns pgx.ErrNoRows when the user does not exist.
func (r *UserRepository) GetByID(ctx context.Context, userID int) (*user.User, error) {
	return r.getOne(ctx, getUserByIDSQL, userID)
}

// GetByPhone returns pgx.ErrNoRows when no user has the phone.
func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*user.User, error) {
	return r.getOne(ctx, getUserByPhoneSQL, phone)
}

func (r *UserRepository) getOne(ctx context.Context, sql string, arg any) (*user.User, error) {
	rows, err := r.db.Query(ctx, sql, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query user %v: %w", arg, err)
	}

	u, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[user.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect user %v: %w", arg, err)
	}

	return u, nil
}

// ListBonusHistory returns the newest ledger entries of a user.
func (r *UserRepository) ListBonusHistory(ctx context.Context, userID, limit int) ([]user.BonusHistory, error) {
	rows, err := r.db.Query(ctx, listBonusHistorySQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonus history for user_id=%d: %w", userID, err)
	}

	history, err := pgx.CollectRows(rows, pgx.RowToStructByName[user.BonusHistory])
	if err != nil {
		return nil, fmt.Errorf("failed to collect bonus history for user_id=%d: %w", userID, err)
	}

	return history, nil
}

// Upsert creates the user with zero bonus points, or updates name and email
// of the user that already owns the phone. Bonus points are never touched.
func (r *UserRepository) Upsert(ctx context.Context, phone, name string, email *string) (*user.User, error) {
	rows, err := r.db.Query(ctx, upsertUserSQL, phone, name, email)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user phone=%s: %w", phone, err)
	}

	u, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[user.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect upserted user phone=%s: %w", phone, err)
	}

	return u, nil
}

// AdjustBonusPoints adds delta to the user's balance and appends a manual
// ledger entry in one transaction. It returns pgx.ErrNoRows, with nothing
// written, when the user does not exist.
func (r *UserRepository) AdjustBonusPoints(ctx context.Context, userID, delta int) (_ *user.User, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin bonus transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	rows, err := tx.Query(ctx, addBonusPointsSQL, delta, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to add bonus points for user_id=%d: %w", userID, err)
	}

	u, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[user.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect user_id=%d after bonus update: %w", userID, err)
	}

	if _, err = tx.Exec(ctx, insertBonusHistorySQL, userID, delta, user.BonusTypeManual, user.BonusManualDescription); err != nil {
		return nil, fmt.Errorf("failed to append bonus history for user_id=%d: %w", userID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit bonus transaction: %w", err)
	}

	return u, nil
}
