package entity

import (
	"time"

	"github.com/google/uuid"
)

// Taxi is a vehicle record owned by exactly one user account.
// The number is stored lowercased so sign-in matching is case-insensitive.
type Taxi struct {
	ID                 uuid.UUID // The unique identifier for the taxi.
	Number             string    // Registration number, lowercased before storage.
	MaxPlace           int       // Total passenger capacity.
	AvailablePlace     int       // Remaining free places. Equals MaxPlace at creation.
	CurrentStation     uuid.UUID // Station the taxi currently serves.
	DestinationStation uuid.UUID // Station the taxi is heading to.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
