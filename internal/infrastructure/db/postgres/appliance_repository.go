package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wattwise/energy-system/internal/core/domain"
)

// ApplianceRepository persists appliances. All reads and writes are scoped
// by account_id as well as id, so one account can never touch another's
// rows even when ids collide.
type ApplianceRepository struct {
	db *sql.DB
}

func NewApplianceRepository(db *sql.DB) *ApplianceRepository {
	return &ApplianceRepository{db: db}
}

func (r *ApplianceRepository) Create(ctx context.Context, a *domain.Appliance) (*domain.Appliance, error) {
	created := *a
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO appliances (account_id, name, type, is_on, power_rating_kw, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, a.AccountID, a.Name, string(a.Type), a.IsOn, a.PowerRatingKW, a.CreatedAt).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("insert appliance: %w", err)
	}
	return &created, nil
}

func (r *ApplianceRepository) ListByAccount(ctx context.Context, accountID int64) ([]domain.Appliance, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, account_id, name, type, is_on, power_rating_kw, created_at
		FROM appliances
		WHERE account_id = $1
		ORDER BY id
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("list appliances: %w", err)
	}
	defer rows.Close()

	// Never nil: callers serialize this directly and an account with no
	// appliances must encode as an empty array.
	out := make([]domain.Appliance, 0)
	for rows.Next() {
		var a domain.Appliance
		if err := rows.Scan(&a.ID, &a.AccountID, &a.Name, &a.Type, &a.IsOn, &a.PowerRatingKW, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan appliance: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list appliances: %w", err)
	}
	return out, nil
}

func (r *ApplianceRepository) FindOwned(ctx context.Context, applianceID, accountID int64) (*domain.Appliance, error) {
	var a domain.Appliance
	err := r.db.QueryRowContext(ctx, `
		SELECT id, account_id, name, type, is_on, power_rating_kw, created_at
		FROM appliances
		WHERE id = $1 AND account_id = $2
	`, applianceID, accountID).Scan(&a.ID, &a.AccountID, &a.Name, &a.Type, &a.IsOn, &a.PowerRatingKW, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplianceNotFound
		}
		return nil, fmt.Errorf("find appliance: %w", err)
	}
	return &a, nil
}

func (r *ApplianceRepository) SetState(ctx context.Context, applianceID, accountID int64, on bool) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE appliances
		SET is_on = $3
		WHERE id = $1 AND account_id = $2
	`, applianceID, accountID, on)
	if err != nil {
		return fmt.Errorf("update appliance: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrApplianceNotFound
	}
	return nil
}
