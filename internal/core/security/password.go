// Package security implements credential hashing and bearer-token
// issuance/verification.
package security

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"unicode/utf8"

	"github.com/wattwise/energy-system/internal/core/domain"
)

// MaxPasswordLength bounds both the plaintext input and the stored digest.
// The users table stores the digest in a varchar(30) column.
const MaxPasswordLength = 30

// HashPassword returns the stored form of a password: the SHA-256 hex digest
// truncated to 30 characters. The truncated prefix keeps 120 bits of the
// digest, which is ample preimage resistance for this width; the scheme is
// unsalted, so equal passwords produce equal digests. Changing it would break
// every stored credential, so any upgrade needs a rehash-on-login migration.
func HashPassword(password string) (string, error) {
	if utf8.RuneCountInString(password) > MaxPasswordLength {
		return "", domain.ErrPasswordTooLong
	}
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])[:MaxPasswordLength], nil
}

// VerifyPassword reports whether password hashes to digest. It never fails:
// oversized input simply verifies as false.
func VerifyPassword(password, digest string) bool {
	expected, err := HashPassword(password)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(digest)) == 1
}
