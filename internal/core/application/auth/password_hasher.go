package auth

import (
	"golang.org/x/crypto/bcrypt"

	"gardenstore/internal/pkg/errs"
)

// PasswordHasher abstracts the adaptive hash applied to client passwords.
// Services hash on registration and password change; the Authenticator
// compares on login.
type PasswordHasher interface {
	// Hash derives a salted hash from the plaintext password.
	Hash(password string) (string, error)

	// Compare checks the plaintext password against a stored hash.
	// Returns an error when they do not match.
	Compare(hash, password string) error
}

// BcryptHasher implements PasswordHasher on top of bcrypt.
// Each hash embeds its own random salt, so equal passwords produce
// different hashes and comparison must go through Compare.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the given work factor.
// Costs below the bcrypt minimum fall back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash derives a salted bcrypt hash from the plaintext password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errs.NewValueIsRequiredError("password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("password", err)
	}

	return string(hashed), nil
}

// Compare checks the plaintext password against a stored bcrypt hash.
func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
