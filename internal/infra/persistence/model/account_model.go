package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Only the password hash is stored,
// never any plaintext credential.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Taxi *TaxiModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// TaxiModel mirrors the 'taxis' table. The unique index on the lowercased
// number is what serializes concurrent create-user calls for the same taxi.
type TaxiModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID             uuid.UUID `gorm:"type:uuid;not null"`
	Number             string    `gorm:"type:varchar(50);unique;not null"`
	MaxPlace           int       `gorm:"not null"`
	AvailablePlace     int       `gorm:"not null"`
	CurrentStation     uuid.UUID `gorm:"type:uuid;not null"`
	DestinationStation uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaxiModel) TableName() string {
	return "taxis"
}
