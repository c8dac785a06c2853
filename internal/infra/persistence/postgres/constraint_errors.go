package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// PostgreSQL unique_violation surfaces through the driver with these markers.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key") ||
		strings.Contains(errMsg, "23503")
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502")
}
