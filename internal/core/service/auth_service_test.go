package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/wattwise/energy-system/internal/core/domain"
	"github.com/wattwise/energy-system/internal/core/security"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) CreateWithAccount(_ context.Context, user *domain.User) (*domain.User, *domain.Account, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, nil, domain.ErrUserExists
	}
	created := *user
	created.ID = r.nextID
	r.nextID++
	r.users[created.Username] = &created

	account := &domain.Account{
		ID:            created.ID,
		UserID:        created.ID,
		AccountNumber: fmt.Sprintf("A%06d", created.ID),
		PeakRate:      domain.DefaultPeakRate,
		ValleyRate:    domain.DefaultValleyRate,
	}
	clone := created
	return &clone, account, nil
}

func newTestAuthService(t *testing.T) (*AuthService, *stubUserRepo, *security.TokenService) {
	t.Helper()
	tokens, err := security.NewTokenService("secret", "HS256", 30*time.Minute)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	repo := newStubUserRepo()
	return NewAuthService(repo, tokens, zerolog.Nop()), repo, tokens
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)

	user, err := svc.Register(context.Background(), "alice", "pass123", "12 Grid Lane")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	stored := repo.users["alice"]
	sum := sha256.Sum256([]byte("pass123"))
	want := hex.EncodeToString(sum[:])[:30]
	if stored.PasswordHash != want {
		t.Fatalf("stored digest = %q, want truncated sha256 %q", stored.PasswordHash, want)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), "bob", "pass123", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "other456", ""); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_PasswordTooLong(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), "carol", strings.Repeat("x", 31), ""); err != domain.ErrPasswordTooLong {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, tokens := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), "carol", "s3cret", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.TokenType != "bearer" {
		t.Fatalf("token_type = %q, want bearer", result.TokenType)
	}
	if result.ExpiresIn != int((30 * time.Minute).Seconds()) {
		t.Fatalf("expires_in = %d, want 1800", result.ExpiresIn)
	}

	subject, err := tokens.Verify(result.AccessToken)
	if err != nil {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if subject != "carol" {
		t.Fatalf("token subject = %q, want carol", subject)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, _ = svc.Register(context.Background(), "dave", "goodpass", "")
	if _, err := svc.Login(context.Background(), "dave", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	// Unknown user and wrong password look identical to the caller.
	if _, err := svc.Login(context.Background(), "ghost", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_PasswordTooLong(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	if _, err := svc.Login(context.Background(), "dave", strings.Repeat("x", 31)); err != domain.ErrPasswordTooLong {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
}
