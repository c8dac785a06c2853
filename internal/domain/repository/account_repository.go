// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cabby/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when no account
// matches the lookup. The application layer translates it into the generic
// incorrect-credentials error before it reaches a client.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByTaxiNumber retrieves the account owning the taxi with the given
	// number. The caller is responsible for lowercasing the number first.
	FindByTaxiNumber(ctx context.Context, number string) (*entity.User, error)

	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Create persists a new account together with its taxi. The combined
	// insert is atomic: a failure on either row commits nothing.
	Create(ctx context.Context, user *entity.User) error
}
