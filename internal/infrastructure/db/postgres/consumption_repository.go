package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wattwise/energy-system/internal/core/domain"
)

// ConsumptionRepository reads metered samples written by the external
// collector. This service never inserts rows here.
type ConsumptionRepository struct {
	db *sql.DB
}

func NewConsumptionRepository(db *sql.DB) *ConsumptionRepository {
	return &ConsumptionRepository{db: db}
}

func (r *ConsumptionRepository) SumSince(ctx context.Context, accountID int64, since time.Time) (float64, error) {
	var sum float64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total_kwh), 0)
		FROM consumption_data
		WHERE account_id = $1 AND timestamp >= $2
	`, accountID, since).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum consumption: %w", err)
	}
	return sum, nil
}

func (r *ConsumptionRepository) ListSince(ctx context.Context, accountID int64, since time.Time) ([]domain.ConsumptionRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, account_id, timestamp, total_kwh
		FROM consumption_data
		WHERE account_id = $1 AND timestamp >= $2
		ORDER BY timestamp
	`, accountID, since)
	if err != nil {
		return nil, fmt.Errorf("list consumption: %w", err)
	}
	defer rows.Close()

	var out []domain.ConsumptionRecord
	for rows.Next() {
		var rec domain.ConsumptionRecord
		if err := rows.Scan(&rec.ID, &rec.AccountID, &rec.Timestamp, &rec.TotalKWH); err != nil {
			return nil, fmt.Errorf("scan consumption: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list consumption: %w", err)
	}
	return out, nil
}
