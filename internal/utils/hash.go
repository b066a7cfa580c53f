package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher produces and verifies salted bcrypt password hashes.
// It stores the cost factor so the single-user insert path and the
// transactional insert path hash with identical parameters.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher constructs a PasswordHasher with the given bcrypt cost.
// A non-positive cost falls back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// HashPassword returns the bcrypt hash of the given plaintext password.
// The salt is generated by bcrypt and embedded in the returned hash.
func (h *PasswordHasher) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash.
func (h *PasswordHasher) CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
