package ports

import (
	"context"

	"github.com/wattwise/energy-system/internal/core/domain"
)

// CreateApplianceInput carries the data needed to register an appliance.
type CreateApplianceInput struct {
	Name          string
	Type          string
	PowerRatingKW float64
}

// ControlResult is returned after a toggle.
type ControlResult struct {
	ApplianceID int64
	NewStatus   bool
	AIMessage   string
}

// ApplianceService defines appliance registry use cases, all scoped to the
// calling user's billing account.
type ApplianceService interface {
	Create(ctx context.Context, userID int64, in CreateApplianceInput) (*domain.Appliance, error)

	// List degrades to an empty slice, not an error, when the user has no
	// billing account.
	List(ctx context.Context, userID int64) ([]domain.Appliance, error)

	// Control toggles an owned appliance. action is "ON"/"OFF",
	// case-insensitive. The advisory message is best-effort and never
	// blocks the state change.
	Control(ctx context.Context, userID, applianceID int64, action string) (*ControlResult, error)
}
