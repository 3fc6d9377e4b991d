package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt only hashes the first 72 bytes of input; longer passwords are
// truncated up front so hashing and verification agree.
const maxPasswordBytes = 72

// HashPassword hashes a plaintext password with bcrypt. Hashing the same
// password twice yields different digests because of the embedded salt.
func HashPassword(password string) (string, error) {
	raw := []byte(password)
	if len(raw) > maxPasswordBytes {
		raw = raw[:maxPasswordBytes]
	}

	digest, err := bcrypt.GenerateFromPassword(raw, bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether plain matches the stored digest. A wrong
// password returns false, never an error.
func VerifyPassword(plain, digest string) bool {
	raw := []byte(plain)
	if len(raw) > maxPasswordBytes {
		raw = raw[:maxPasswordBytes]
	}

	return bcrypt.CompareHashAndPassword([]byte(digest), raw) == nil
}
