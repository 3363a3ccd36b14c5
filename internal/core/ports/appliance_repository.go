package ports

import (
	"context"

	"github.com/wattwise/energy-system/internal/core/domain"
)

// ApplianceRepository defines persistence operations for appliances.
// Ownership is always enforced by filtering on (id, account_id) jointly,
// never on the appliance id alone.
type ApplianceRepository interface {
	Create(ctx context.Context, a *domain.Appliance) (*domain.Appliance, error)
	ListByAccount(ctx context.Context, accountID int64) ([]domain.Appliance, error)

	// FindOwned returns domain.ErrApplianceNotFound when the appliance does
	// not exist for this account, even if the id exists under another one.
	FindOwned(ctx context.Context, applianceID, accountID int64) (*domain.Appliance, error)

	// SetState persists the on/off flag; domain.ErrApplianceNotFound when
	// no owned row was updated.
	SetState(ctx context.Context, applianceID, accountID int64, on bool) error
}
