// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"

	"cabby/config"
	"cabby/internal/domain/service"

	"github.com/pkg/errors"
)

// generatedPasswordBytes is the entropy of admin-generated passwords. The
// URL-safe base64 form is 32 printable characters, inside the accepted
// sign-in length range.
const generatedPasswordBytes = 24

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher. The cost comes from
// config when present, otherwise bcrypt's default.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost factor.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt embeds a fresh random salt in every hash it produces.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash. A mismatch is not
// an error; only a malformed stored hash is.
func (h *bcryptHasher) Check(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, errors.Wrap(err, "malformed password hash")
}

// Generate produces a cryptographically random password and its hash.
func (h *bcryptHasher) Generate() (*service.GeneratedPassword, error) {
	raw := make([]byte, generatedPasswordBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, errors.Wrap(err, "failed to read random bytes")
	}

	plain := base64.RawURLEncoding.EncodeToString(raw)

	hashed, err := h.Hash(plain)
	if err != nil {
		return nil, err
	}

	return &service.GeneratedPassword{Plain: plain, Hashed: hashed}, nil
}
