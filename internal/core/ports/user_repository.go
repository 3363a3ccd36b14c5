package ports

import (
	"context"

	"github.com/wattwise/energy-system/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// FindByUsername returns domain.ErrUserNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// CreateWithAccount inserts the user and its billing account in one
	// transaction; a user must never exist durably without an account.
	// The account number is derived from the new user id ("A" + id padded
	// to 6 digits). Returns domain.ErrUserExists on a username collision.
	CreateWithAccount(ctx context.Context, user *domain.User) (*domain.User, *domain.Account, error)
}
