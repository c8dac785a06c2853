package impl

import (
	"context"
	"strings"
	"testing"

	"cabby/internal/domain/entity"
	domainerrors "cabby/internal/domain/errors"
	"cabby/internal/domain/repository"
	"cabby/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service   usecase.AccountUsecase
	txManager *mockTransactionManager
	repo      *mockAccountRepository
	hasher    *mockPasswordHasher
	sessions  *mockSessionService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	t.Helper()

	repo := &mockAccountRepository{}
	txManager := &mockTransactionManager{repo: repo}
	hasher := &mockPasswordHasher{}
	sessions := &mockSessionService{}

	service := NewAccountService(AccountServiceParams{
		TxManager:   txManager,
		AccountRepo: repo,
		Hasher:      hasher,
		Sessions:    sessions,
		Logger:      newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:   service,
		txManager: txManager,
		repo:      repo,
		hasher:    hasher,
		sessions:  sessions,
	}
}

func TestAccountService_SignIn_PasswordLengthGate(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "too short", password: "short7!"},
		{name: "empty", password: ""},
		{name: "too long", password: strings.Repeat("x", 126)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixtures := createTestAccountService(t)

			_, err := fixtures.service.SignIn(context.Background(), &usecase.SignInInput{
				Number:   "ab-123",
				Password: tt.password,
			})

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			// The gate fires before any storage access.
			fixtures.repo.AssertNotCalled(t, "FindByTaxiNumber", mock.Anything, mock.Anything)
		})
	}
}

func TestAccountService_SignIn_BoundaryLengthsReachStorage(t *testing.T) {
	for _, password := range []string{strings.Repeat("x", 8), strings.Repeat("x", 125)} {
		fixtures := createTestAccountService(t)
		fixtures.repo.On("FindByTaxiNumber", mock.Anything, "ab-123").
			Return(nil, repository.ErrAccountNotFound)

		_, err := fixtures.service.SignIn(context.Background(), &usecase.SignInInput{
			Number:   "ab-123",
			Password: password,
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrIncorrectCredentials))
		fixtures.repo.AssertExpectations(t)
	}
}

func TestAccountService_SignIn_UnknownNumberAndWrongPasswordAreIndistinguishable(t *testing.T) {
	storedUser := &entity.User{ID: uuid.New(), PasswordHash: "$2a$10$stored"}

	// Unknown number.
	missing := createTestAccountService(t)
	missing.repo.On("FindByTaxiNumber", mock.Anything, "ghost-1").
		Return(nil, repository.ErrAccountNotFound)

	_, errNotFound := missing.service.SignIn(context.Background(), &usecase.SignInInput{
		Number:   "GHOST-1",
		Password: "password123",
	})

	// Known number, wrong password.
	wrong := createTestAccountService(t)
	wrong.repo.On("FindByTaxiNumber", mock.Anything, "ab-123").
		Return(storedUser, nil)
	wrong.hasher.On("Check", "wrongpass1", storedUser.PasswordHash).
		Return(false, nil)

	_, errWrongPass := wrong.service.SignIn(context.Background(), &usecase.SignInInput{
		Number:   "ab-123",
		Password: "wrongpass1",
	})

	require.Error(t, errNotFound)
	require.Error(t, errWrongPass)
	assert.True(t, errors.Is(errNotFound, domainerrors.ErrIncorrectCredentials))
	assert.True(t, errors.Is(errWrongPass, domainerrors.ErrIncorrectCredentials))

	// No session was issued in either case.
	missing.sessions.AssertNotCalled(t, "Issue", mock.Anything)
	wrong.sessions.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAccountService_SignIn_Success(t *testing.T) {
	fixtures := createTestAccountService(t)

	userID := uuid.New()
	storedUser := &entity.User{ID: userID, PasswordHash: "$2a$10$stored"}

	// The number is lowercased before the lookup.
	fixtures.repo.On("FindByTaxiNumber", mock.Anything, "ab-123").
		Return(storedUser, nil)
	fixtures.hasher.On("Check", "password123", storedUser.PasswordHash).
		Return(true, nil)
	fixtures.sessions.On("Issue", userID).
		Return("signed-token", nil)

	output, err := fixtures.service.SignIn(context.Background(), &usecase.SignInInput{
		Number:   "AB-123",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, output.UserID)
	assert.Equal(t, "signed-token", output.SessionToken)
	fixtures.repo.AssertExpectations(t)
	fixtures.hasher.AssertExpectations(t)
	fixtures.sessions.AssertExpectations(t)
}

func TestAccountService_SignIn_MalformedStoredHash(t *testing.T) {
	fixtures := createTestAccountService(t)

	storedUser := &entity.User{ID: uuid.New(), PasswordHash: "garbage"}
	fixtures.repo.On("FindByTaxiNumber", mock.Anything, "ab-123").
		Return(storedUser, nil)
	fixtures.hasher.On("Check", "password123", "garbage").
		Return(false, errors.New("malformed password hash"))

	_, err := fixtures.service.SignIn(context.Background(), &usecase.SignInInput{
		Number:   "ab-123",
		Password: "password123",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCredentialFailure))
	assert.False(t, errors.Is(err, domainerrors.ErrIncorrectCredentials))
}

func TestAccountService_CreateUser_Success(t *testing.T) {
	fixtures := createTestAccountService(t)

	stationA := uuid.New()
	stationB := uuid.New()

	fixtures.hasher.On("Generate").
		Return(&generatedTestPassword, nil)
	fixtures.txManager.On("Execute", mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil)

	var created *entity.User
	fixtures.repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.User)
		}).
		Return(nil)

	err := fixtures.service.CreateUser(context.Background(), &usecase.CreateUserInput{
		Taxi: usecase.NewTaxiInput{
			Number:             "AB-123",
			MaxPlace:           4,
			CurrentStation:     stationA,
			DestinationStation: stationB,
		},
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotNil(t, created.Taxi)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.NotEqual(t, uuid.Nil, created.Taxi.ID)
	assert.Equal(t, "ab-123", created.Taxi.Number)
	assert.Equal(t, 4, created.Taxi.MaxPlace)
	assert.Equal(t, 4, created.Taxi.AvailablePlace)
	assert.Equal(t, stationA, created.Taxi.CurrentStation)
	assert.Equal(t, stationB, created.Taxi.DestinationStation)

	// Only the hash is handed to storage, never the plaintext.
	assert.Equal(t, generatedTestPassword.Hashed, created.PasswordHash)
	assert.NotContains(t, created.PasswordHash, generatedTestPassword.Plain)
}

func TestAccountService_CreateUser_GenerationFailure(t *testing.T) {
	fixtures := createTestAccountService(t)

	fixtures.hasher.On("Generate").
		Return(nil, errors.New("rng failure"))

	err := fixtures.service.CreateUser(context.Background(), &usecase.CreateUserInput{
		Taxi: usecase.NewTaxiInput{Number: "ab-123", MaxPlace: 4},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCredentialFailure))
	fixtures.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAccountService_CreateUser_DuplicateNumber(t *testing.T) {
	fixtures := createTestAccountService(t)

	fixtures.hasher.On("Generate").
		Return(&generatedTestPassword, nil)
	fixtures.txManager.On("Execute", mock.Anything, mock.Anything).
		Return(nil)
	fixtures.repo.On("Create", mock.Anything, mock.Anything).
		Return(domainerrors.ErrTaxiNumberTaken.WrapMessage("taxi number already exists"))

	err := fixtures.service.CreateUser(context.Background(), &usecase.CreateUserInput{
		Taxi: usecase.NewTaxiInput{Number: "ab-123", MaxPlace: 4},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTaxiNumberTaken))
}

func TestAccountService_GetAccount(t *testing.T) {
	fixtures := createTestAccountService(t)

	userID := uuid.New()
	fixtures.repo.On("FindByID", mock.Anything, userID).
		Return(&entity.User{ID: userID, PasswordHash: "$2a$10$stored"}, nil)

	user, err := fixtures.service.GetAccount(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)

	missingID := uuid.New()
	fixtures.repo.On("FindByID", mock.Anything, missingID).
		Return(nil, repository.ErrAccountNotFound)

	_, err = fixtures.service.GetAccount(context.Background(), missingID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
