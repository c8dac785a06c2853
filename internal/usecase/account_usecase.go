// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cabby/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignInInput defines the credentials presented at sign-in.
// Both fields are transient and never persisted as-is.
type SignInInput struct {
	Number   string `json:"number"`
	Password string `json:"password" validate:"required,min=8,max=125"`
}

// NewTaxiInput defines the taxi payload of the admin create-user operation.
// The caller supplies neither a password nor any id.
type NewTaxiInput struct {
	Number             string    `json:"number" validate:"required"`
	MaxPlace           int       `json:"maxPlace" validate:"required,gt=0"`
	CurrentStation     uuid.UUID `json:"currentStation" validate:"required"`
	DestinationStation uuid.UUID `json:"destinationStation" validate:"required"`
}

// CreateUserInput wraps the new-taxi payload.
type CreateUserInput struct {
	Taxi NewTaxiInput `json:"taxi" validate:"required"`
}

// --- Output DTOs ---

// SignInOutput returns the authenticated user's id and the session token the
// delivery layer turns into a cookie. The password hash never leaves the
// usecase.
type SignInOutput struct {
	UserID       uuid.UUID
	SessionToken string
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// SignIn authenticates by taxi number and password and issues a session.
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)

	// CreateUser provisions a new account with a generated password and a
	// fresh taxi record. Nothing is returned on success.
	CreateUser(ctx context.Context, input *CreateUserInput) error

	// GetAccount loads the account bound to an already verified session.
	// Delivery must project the result through an allow-list; the entity
	// carries the password hash.
	GetAccount(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
