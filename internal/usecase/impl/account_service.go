// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "cabby/internal/delivery/context"
	"cabby/internal/domain/entity"
	domainerrors "cabby/internal/domain/errors"
	"cabby/internal/domain/repository"
	"cabby/internal/domain/service"
	"cabby/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 125
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	sessions    service.SessionService
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Sessions    service.SessionService
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		sessions:    params.Sessions,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn authenticates by taxi number and password and issues a session.
//
// The password length gate runs before any storage access, and an unknown
// number produces exactly the same error as a wrong password so the endpoint
// cannot be used to probe for account existence.
func (srv *accountService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	if length := utf8.RuneCountInString(input.Password); length < passwordMinLength || length > passwordMaxLength {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "password length out of range")
	}

	number := strings.ToLower(input.Number)
	srv.log(ctx).Debug("Starting sign-in", slog.String("number", number))

	user, err := srv.accountRepo.FindByTaxiNumber(ctx, number)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Sign-in failed", slog.String("number", number))

			return nil, errors.Wrap(domainerrors.ErrIncorrectCredentials, "sign-in failed")
		}

		return nil, errors.Wrap(err, "failed to find account by taxi number")
	}

	ok, err := srv.hasher.Check(input.Password, user.PasswordHash)
	if err != nil {
		srv.log(ctx).Error("Password verification failed", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrCredentialFailure, "password verification failed")
	}
	if !ok {
		srv.log(ctx).Warn("Sign-in failed", slog.String("number", number))

		return nil, errors.Wrap(domainerrors.ErrIncorrectCredentials, "sign-in failed")
	}

	token, err := srv.sessions.Issue(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrCredentialFailure, "failed to issue session")
	}
	srv.log(ctx).Debug("Sign-in succeeded", slog.Any("userID", user.ID))

	return &usecase.SignInOutput{
		UserID:       user.ID,
		SessionToken: token,
	}, nil
}

// CreateUser provisions a new account: a generated password is hashed before
// anything exists to persist, then the user and its taxi are inserted in one
// transaction. The plaintext never leaves this method.
func (srv *accountService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) error {
	number := strings.ToLower(input.Taxi.Number)
	srv.log(ctx).Info("Creating account", slog.String("number", number))

	generated, err := srv.hasher.Generate()
	if err != nil {
		srv.log(ctx).Error("Failed to generate password", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrCredentialFailure, "failed to generate password")
	}

	newUser := &entity.User{
		ID:           uuid.New(),
		PasswordHash: generated.Hashed,
		Taxi: &entity.Taxi{
			ID:                 uuid.New(),
			Number:             number,
			MaxPlace:           input.Taxi.MaxPlace,
			AvailablePlace:     input.Taxi.MaxPlace,
			CurrentStation:     input.Taxi.CurrentStation,
			DestinationStation: input.Taxi.DestinationStation,
		},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.AccountRepo().Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute account creation transaction", slog.String("number", number), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute account creation transaction")
	}

	srv.log(ctx).Debug("Account created", slog.Any("userID", newUser.ID))

	return nil
}

// GetAccount loads the account bound to an already verified session.
func (srv *accountService) GetAccount(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.accountRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return user, nil
}
