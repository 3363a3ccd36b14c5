package ports

import (
	"context"

	"github.com/wattwise/energy-system/internal/core/domain"
)

// LoginResult carries a freshly issued bearer token.
type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int
}

// AuthService defines registration and credential exchange.
type AuthService interface {
	// Register creates a user and its billing account atomically.
	Register(ctx context.Context, username, password, address string) (*domain.User, error)

	// Login verifies credentials and issues a token. A missing user and a
	// wrong password both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}
