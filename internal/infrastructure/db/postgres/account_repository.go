package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wattwise/energy-system/internal/core/domain"
)

// AccountRepository resolves billing accounts by owner.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Account, error) {
	var a domain.Account
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, account_number, peak_rate, valley_rate
		FROM electricity_accounts
		WHERE user_id = $1
	`, userID).Scan(&a.ID, &a.UserID, &a.AccountNumber, &a.PeakRate, &a.ValleyRate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoAccount
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return &a, nil
}
