package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-address-book/internal/logger"
	"github.com/MKhiriev/go-address-book/internal/store"
	"github.com/MKhiriev/go-address-book/internal/utils"
	"github.com/MKhiriev/go-address-book/internal/validators"
	"github.com/MKhiriev/go-address-book/models"
)

// userService is the concrete implementation of UserService.
// It validates request payloads, hashes passwords with bcrypt, and delegates
// persistence to a UserRepository.
type userService struct {
	// userRepository is the data-access layer for user rows.
	userRepository store.UserRepository

	// hasher produces salted bcrypt hashes; the same instance serves the
	// single-user insert path and the transactional insert path so both
	// hash with identical parameters.
	hasher *utils.PasswordHasher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, hasher *utils.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// ListUsers returns all user accounts without password data.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}

// CreateUser validates the payload, hashes the password, and persists a new
// user account.
//
// Returns the created user (with server-assigned id and no password) or:
//   - validators.FieldErrors when the payload violates a field constraint;
//   - a wrapped storage error when the repository call fails (e.g. the email
//     is already taken — see store.ErrEmailAlreadyExists).
func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if fieldErrors := validators.ValidateCreateUser(req); fieldErrors != nil {
		log.Error().Any("field_errors", fieldErrors).Msg("invalid user data provided")
		return models.User{}, fieldErrors
	}

	hashedPassword, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	createdUser, err := s.userRepository.CreateUser(ctx, models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// GetUser returns one user account by id.
func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return s.userRepository.GetUser(ctx, userID)
}

// UpdateUser validates the payload and overwrites name and email of the
// given user, returning the updated record.
func (s *userService) UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if fieldErrors := validators.ValidateUpdateUser(req); fieldErrors != nil {
		log.Error().Any("field_errors", fieldErrors).Msg("invalid user data provided")
		return models.User{}, fieldErrors
	}

	return s.userRepository.UpdateUser(ctx, models.User{
		ID:    userID,
		Name:  req.Name,
		Email: req.Email,
	})
}

// DeleteUser removes one user account by id and returns the deleted record.
func (s *userService) DeleteUser(ctx context.Context, userID int64) (models.User, error) {
	return s.userRepository.DeleteUser(ctx, userID)
}

// CreateUserWithAddresses validates the full payload (user fields plus a
// non-empty address array) before the repository acquires any transactional
// state, hashes the password with the same parameters as CreateUser, and
// performs the atomic insert.
//
// On success the result carries the new user id and the number of addresses
// created; on any repository failure the transaction has already been rolled
// back.
func (s *userService) CreateUserWithAddresses(ctx context.Context, req models.CreateUserWithAddressesRequest) (models.CreateUserWithAddressesResult, error) {
	log := logger.FromContext(ctx)

	// validation happens before a connection is checked out of the pool
	if fieldErrors := validators.ValidateCreateUserWithAddresses(req); fieldErrors != nil {
		log.Error().Any("field_errors", fieldErrors).Msg("invalid transactional payload provided")
		return models.CreateUserWithAddressesResult{}, fieldErrors
	}

	hashedPassword, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.CreateUserWithAddressesResult{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	addresses := make([]models.Address, 0, len(req.Addresses))
	for _, address := range req.Addresses {
		addresses = append(addresses, models.Address{
			AddressLine: address.AddressLine,
			City:        address.City,
			State:       address.State,
			PostalCode:  address.PostalCode,
			Country:     address.Country,
		})
	}

	userID, err := s.userRepository.CreateUserWithAddresses(ctx, models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}, addresses)
	if err != nil {
		log.Err(err).Str("email", req.Email).Int("address_count", len(addresses)).Msg("transactional user creation ended with error")
		return models.CreateUserWithAddressesResult{}, fmt.Errorf("transactional user creation ended with error: %w", err)
	}

	return models.CreateUserWithAddressesResult{
		UserID:       userID,
		AddressCount: len(addresses),
	}, nil
}
