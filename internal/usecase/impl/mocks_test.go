package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"cabby/internal/domain/entity"
	"cabby/internal/domain/repository"
	"cabby/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Hand-rolled testify doubles for the interfaces the account service consumes.

type mockAccountRepository struct {
	mock.Mock
}

func (m *mockAccountRepository) FindByTaxiNumber(ctx context.Context, number string) (*entity.User, error) {
	args := m.Called(ctx, number)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAccountRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// mockTransactionManager runs the callback against a factory that hands out
// the given repository, without any real transaction.
type mockTransactionManager struct {
	mock.Mock

	repo repository.AccountRepository
}

func (m *mockTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}

	return fn(&mockRepositoryFactory{repo: m.repo})
}

type mockRepositoryFactory struct {
	repo repository.AccountRepository
}

func (f *mockRepositoryFactory) AccountRepo() repository.AccountRepository {
	return f.repo
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) (bool, error) {
	args := m.Called(password, hash)

	return args.Bool(0), args.Error(1)
}

func (m *mockPasswordHasher) Generate() (*service.GeneratedPassword, error) {
	args := m.Called()
	if generated, ok := args.Get(0).(*service.GeneratedPassword); ok {
		return generated, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockSessionService struct {
	mock.Mock
}

func (m *mockSessionService) Issue(userID uuid.UUID) (string, error) {
	args := m.Called(userID)

	return args.String(0), args.Error(1)
}

func (m *mockSessionService) Verify(token string) (uuid.UUID, error) {
	args := m.Called(token)
	if id, ok := args.Get(0).(uuid.UUID); ok {
		return id, args.Error(1)
	}

	return uuid.Nil, args.Error(1)
}

func (m *mockSessionService) TTL() time.Duration {
	args := m.Called()
	if ttl, ok := args.Get(0).(time.Duration); ok {
		return ttl
	}

	return 0
}

// generatedTestPassword is the fixed credential pair the mocked hasher hands out.
var generatedTestPassword = service.GeneratedPassword{
	Plain:  "uP9rT2wQ8xL5mB0kZ7cV4nJ1aF6hD3sY",
	Hashed: "$2a$10$e0MYzXyjpJS7Pd0RVvHwHeFJm8fHn0AbCdEfGhIjKlMnOpQrStUvW",
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
