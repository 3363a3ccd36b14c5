package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/wattwise/energy-system/internal/core/domain"
)

// uniqueViolation is the PostgreSQL error code for unique-constraint hits.
const uniqueViolation = "23505"

// UserRepository persists users and their auto-created billing accounts.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	var address sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, password, address, created_at, updated_at
		FROM users
		WHERE username = $1
	`, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &address, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	u.Address = address.String
	return &u, nil
}

// CreateWithAccount inserts the user and its billing account in a single
// transaction, so a user is never durably visible without an account. The
// account number is "A" + user id zero-padded to six digits.
func (r *UserRepository) CreateWithAccount(ctx context.Context, user *domain.User) (*domain.User, *domain.Account, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	created := *user
	err = tx.QueryRowContext(ctx, `
		INSERT INTO users (username, password, address, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		RETURNING id
	`, user.Username, user.PasswordHash, user.Address, user.CreatedAt, user.UpdatedAt).Scan(&created.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, nil, domain.ErrUserExists
		}
		return nil, nil, fmt.Errorf("insert user: %w", err)
	}

	account := &domain.Account{
		UserID:        created.ID,
		AccountNumber: fmt.Sprintf("A%06d", created.ID),
		PeakRate:      domain.DefaultPeakRate,
		ValleyRate:    domain.DefaultValleyRate,
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO electricity_accounts (user_id, account_number, peak_rate, valley_rate)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, account.UserID, account.AccountNumber, account.PeakRate, account.ValleyRate).Scan(&account.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("insert account: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit: %w", err)
	}
	return &created, account, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}
