package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/wattwise/energy-system/internal/core/domain"
	"github.com/wattwise/energy-system/internal/core/ports"
	"github.com/wattwise/energy-system/internal/core/security"
)

// AuthService implements registration and credential exchange.
type AuthService struct {
	users  ports.UserRepository
	tokens *security.TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *security.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Register creates the user row and its billing account in one transaction.
func (s *AuthService) Register(ctx context.Context, username, password, address string) (*domain.User, error) {
	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Address:      address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, account, err := s.users.CreateWithAccount(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("username", created.Username).
		Str("account_number", account.AccountNumber).
		Msg("user registered")

	return created, nil
}

// Login verifies credentials and issues a bearer token. An unknown username
// and a wrong password are reported identically.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if _, err := security.HashPassword(password); err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !security.VerifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("login succeeded")

	return &ports.LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.tokens.TTL().Seconds()),
	}, nil
}
