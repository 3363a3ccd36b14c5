package security

import (
	"strings"
	"testing"

	"github.com/wattwise/energy-system/internal/core/domain"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	for _, pw := range []string{"a", "s3cret", "正确的密码", strings.Repeat("x", 30)} {
		digest, err := HashPassword(pw)
		if err != nil {
			t.Fatalf("HashPassword(%q) returned error: %v", pw, err)
		}
		if len(digest) != MaxPasswordLength {
			t.Fatalf("digest length = %d, want %d", len(digest), MaxPasswordLength)
		}
		if !VerifyPassword(pw, digest) {
			t.Fatalf("VerifyPassword(%q) = false for its own digest", pw)
		}
	}
}

func TestHashPassword_Deterministic(t *testing.T) {
	a, _ := HashPassword("same-password")
	b, _ := HashPassword("same-password")
	if a != b {
		t.Fatalf("same password produced different digests: %q vs %q", a, b)
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	if _, err := HashPassword(strings.Repeat("x", 31)); err != domain.ErrPasswordTooLong {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
	// Length is measured in characters, not bytes: 30 multi-byte runes are fine.
	if _, err := HashPassword(strings.Repeat("密", 30)); err != nil {
		t.Fatalf("30 runes should hash, got %v", err)
	}
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	digest, _ := HashPassword("right")
	if VerifyPassword("wrong", digest) {
		t.Fatalf("wrong password verified")
	}
	if VerifyPassword(strings.Repeat("x", 31), digest) {
		t.Fatalf("oversized password verified")
	}
}
