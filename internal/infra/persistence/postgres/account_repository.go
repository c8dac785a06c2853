// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"cabby/internal/domain/entity"
	domainerrors "cabby/internal/domain/errors"
	"cabby/internal/domain/repository"
	"cabby/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByTaxiNumber retrieves the account owning the taxi with the given number.
// Lookup is an exact match; callers lowercase the number first.
func (repo *accountRepository) FindByTaxiNumber(ctx context.Context, number string) (*entity.User, error) {
	var taxiM model.TaxiModel
	if err := repo.db.WithContext(ctx).
		Where("number = ?", number).
		First(&taxiM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find taxi by number")
	}

	var userM model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", taxiM.UserID).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// A taxi without its owner means the combined insert was not
			// atomic somewhere; still answer "not found" to the caller.
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find user for taxi")
	}
	userM.Taxi = &taxiM

	return toUserDomain(&userM), nil
}

// FindByID retrieves a single account by its unique ID, preloading its taxi.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).
		Preload("Taxi").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new account together with its taxi. GORM's Create with
// associations inserts into users and taxis within a single transaction, so a
// failure on either row commits nothing.
func (repo *accountRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTaxiNumberTaken.WrapMessage("taxi number already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required account information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("invalid foreign key reference")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Update the entity with the generated timestamps
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.Taxi != nil && userM.Taxi != nil {
		user.Taxi.CreatedAt = userM.Taxi.CreatedAt
		user.Taxi.UpdatedAt = userM.Taxi.UpdatedAt
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		PasswordHash: data.PasswordHash,
		Taxi:         toTaxiDomain(data.Taxi),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		PasswordHash: data.PasswordHash,
		Taxi:         fromTaxiDomain(data.Taxi),
	}
}

// toTaxiDomain converts a GORM TaxiModel to a domain Taxi entity.
func toTaxiDomain(data *model.TaxiModel) *entity.Taxi {
	if data == nil {
		return nil
	}

	return &entity.Taxi{
		ID:                 data.ID,
		Number:             data.Number,
		MaxPlace:           data.MaxPlace,
		AvailablePlace:     data.AvailablePlace,
		CurrentStation:     data.CurrentStation,
		DestinationStation: data.DestinationStation,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromTaxiDomain converts a domain Taxi entity to a GORM TaxiModel.
func fromTaxiDomain(data *entity.Taxi) *model.TaxiModel {
	if data == nil {
		return nil
	}

	return &model.TaxiModel{
		ID:                 data.ID,
		Number:             data.Number,
		MaxPlace:           data.MaxPlace,
		AvailablePlace:     data.AvailablePlace,
		CurrentStation:     data.CurrentStation,
		DestinationStation: data.DestinationStation,
	}
}
