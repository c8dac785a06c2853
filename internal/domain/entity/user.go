// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns exactly one taxi. The password hash is the
// only credential material that is ever persisted.
type User struct {
	ID           uuid.UUID // The unique identifier for the account, generated at creation and immutable.
	PasswordHash string    // bcrypt hash of the account password.
	Taxi         *Taxi     // The taxi owned by this account. Created together with the user.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
