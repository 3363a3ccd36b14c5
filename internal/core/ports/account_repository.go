package ports

import (
	"context"

	"github.com/wattwise/energy-system/internal/core/domain"
)

// AccountRepository resolves billing accounts. Every account-scoped
// operation in the system starts here.
type AccountRepository interface {
	// FindByUserID returns domain.ErrNoAccount when the user has no
	// billing account.
	FindByUserID(ctx context.Context, userID int64) (*domain.Account, error)
}
