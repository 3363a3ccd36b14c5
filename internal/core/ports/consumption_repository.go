package ports

import (
	"context"
	"time"

	"github.com/wattwise/energy-system/internal/core/domain"
)

// ConsumptionRepository reads metered energy samples. Records are written
// by an external metering collector; this service only queries them.
type ConsumptionRepository interface {
	// SumSince returns the total kWh recorded for the account at or after
	// since. Zero, not an error, when there are no records.
	SumSince(ctx context.Context, accountID int64, since time.Time) (float64, error)

	// ListSince returns records at or after since, ordered by timestamp
	// ascending.
	ListSince(ctx context.Context, accountID int64, since time.Time) ([]domain.ConsumptionRecord, error)
}
