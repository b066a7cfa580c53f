package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-address-book/internal/logger"
	"github.com/MKhiriev/go-address-book/internal/store"
	"github.com/MKhiriev/go-address-book/internal/utils"
	"github.com/MKhiriev/go-address-book/internal/validators"
	"github.com/MKhiriev/go-address-book/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockUserRepo is a func-field fake for store.UserRepository.
type mockUserRepo struct {
	listFn     func(ctx context.Context) ([]models.User, error)
	createFn   func(ctx context.Context, user models.User) (models.User, error)
	getFn      func(ctx context.Context, userID int64) (models.User, error)
	updateFn   func(ctx context.Context, user models.User) (models.User, error)
	deleteFn   func(ctx context.Context, userID int64) (models.User, error)
	createTxFn func(ctx context.Context, user models.User, addresses []models.Address) (int64, error)
}

func (m *mockUserRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listFn(ctx)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createFn(ctx, user)
}

func (m *mockUserRepo) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getFn(ctx, userID)
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.updateFn(ctx, user)
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, userID int64) (models.User, error) {
	return m.deleteFn(ctx, userID)
}

func (m *mockUserRepo) CreateUserWithAddresses(ctx context.Context, user models.User, addresses []models.Address) (int64, error) {
	return m.createTxFn(ctx, user, addresses)
}

func newUserService(repo store.UserRepository) UserService {
	return NewUserService(repo, utils.NewPasswordHasher(0), logger.Nop())
}

func TestCreateUser_HashesPasswordBeforeInsert(t *testing.T) {
	var storedPassword string
	repo := &mockUserRepo{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			storedPassword = user.Password
			user.ID = 1
			user.Password = ""
			return user, nil
		},
	}

	svc := newUserService(repo)
	created, err := svc.CreateUser(context.Background(), models.CreateUserRequest{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.NotEqual(t, "secret1", storedPassword)
	assert.True(t, strings.HasPrefix(storedPassword, "$2"), "expected bcrypt hash, got %q", storedPassword)
}

func TestCreateUser_ValidationShortCircuitsRepository(t *testing.T) {
	called := false
	repo := &mockUserRepo{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			called = true
			return user, nil
		},
	}

	svc := newUserService(repo)
	_, err := svc.CreateUser(context.Background(), models.CreateUserRequest{
		Name:     "A",
		Email:    "bad",
		Password: "short",
	})

	require.Error(t, err)
	fieldErrors, ok := validators.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrors, "name")
	assert.Contains(t, fieldErrors, "email")
	assert.Contains(t, fieldErrors, "password")
	assert.False(t, called, "repository must not be called on validation failure")
}

func TestCreateUser_RepositoryErrorIsWrapped(t *testing.T) {
	repo := &mockUserRepo{
		createFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}

	svc := newUserService(repo)
	_, err := svc.CreateUser(context.Background(), models.CreateUserRequest{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "secret1",
	})

	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestUpdateUser_PassesValidatedFields(t *testing.T) {
	repo := &mockUserRepo{
		updateFn: func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, int64(4), user.ID)
			assert.Equal(t, "Ann", user.Name)
			return user, nil
		},
	}

	svc := newUserService(repo)
	_, err := svc.UpdateUser(context.Background(), 4, models.UpdateUserRequest{Name: "Ann", Email: "ann@x.com"})

	require.NoError(t, err)
}

func TestCreateUserWithAddresses_Success(t *testing.T) {
	repo := &mockUserRepo{
		createTxFn: func(_ context.Context, user models.User, addresses []models.Address) (int64, error) {
			assert.True(t, strings.HasPrefix(user.Password, "$2"))
			assert.Len(t, addresses, 2)
			// input order is preserved
			assert.Equal(t, "First St", addresses[0].AddressLine)
			assert.Equal(t, "Second St", addresses[1].AddressLine)
			return 10, nil
		},
	}

	svc := newUserService(repo)
	result, err := svc.CreateUserWithAddresses(context.Background(), models.CreateUserWithAddressesRequest{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "secret1",
		Addresses: []models.CreateAddressRequest{
			{AddressLine: "First St", City: "Pune", State: "MH", PostalCode: "411001", Country: "India"},
			{AddressLine: "Second St", City: "Pune", State: "MH", PostalCode: "411002", Country: "India"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), result.UserID)
	assert.Equal(t, 2, result.AddressCount)
}

func TestCreateUserWithAddresses_InvalidElementNeverReachesRepository(t *testing.T) {
	called := false
	repo := &mockUserRepo{
		createTxFn: func(_ context.Context, _ models.User, _ []models.Address) (int64, error) {
			called = true
			return 0, nil
		},
	}

	svc := newUserService(repo)
	_, err := svc.CreateUserWithAddresses(context.Background(), models.CreateUserWithAddressesRequest{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "secret1",
		Addresses: []models.CreateAddressRequest{
			{AddressLine: "First St", City: "Pune", State: "MH", PostalCode: "411001", Country: "India"},
			{AddressLine: "Second St", City: "Pune", State: "MH", PostalCode: "411002", Country: "India"},
			{AddressLine: "Third St", City: "", State: "MH", PostalCode: "411003", Country: "India"},
		},
	})

	require.Error(t, err)
	fieldErrors, ok := validators.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrors, "addresses[2].city")
	assert.False(t, called, "transaction must not start when validation fails")
}

func TestCreateUserWithAddresses_EmptyArray(t *testing.T) {
	svc := newUserService(&mockUserRepo{})

	_, err := svc.CreateUserWithAddresses(context.Background(), models.CreateUserWithAddressesRequest{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "secret1",
	})

	require.Error(t, err)
	fieldErrors, ok := validators.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrors, "addresses")
}

func TestCreateUserWithAddresses_RepositoryFailure(t *testing.T) {
	repoErr := errors.New("transaction aborted")
	repo := &mockUserRepo{
		createTxFn: func(_ context.Context, _ models.User, _ []models.Address) (int64, error) {
			return 0, repoErr
		},
	}

	svc := newUserService(repo)
	_, err := svc.CreateUserWithAddresses(context.Background(), models.CreateUserWithAddressesRequest{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "secret1",
		Addresses: []models.CreateAddressRequest{
			{AddressLine: "First St", City: "Pune", State: "MH", PostalCode: "411001", Country: "India"},
		},
	})

	require.ErrorIs(t, err, repoErr)
}
