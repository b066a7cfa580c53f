package service

import (
	"context"

	"github.com/MKhiriev/go-address-book/models"
)

// UserService is the business-logic contract for user accounts: payload
// validation, password hashing, and delegation to the user repository.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) (models.User, error)

	// CreateUserWithAddresses validates the combined payload before any
	// transactional state is touched, then performs the all-or-nothing
	// insert of the user and every address.
	CreateUserWithAddresses(ctx context.Context, req models.CreateUserWithAddressesRequest) (models.CreateUserWithAddressesResult, error)
}

// AddressService is the business-logic contract for addresses and the
// read-only aggregates.
type AddressService interface {
	CreateAddress(ctx context.Context, userID int64, req models.CreateAddressRequest) (models.Address, error)
	ListAddresses(ctx context.Context, userID int64) ([]models.Address, error)
	UpdateAddress(ctx context.Context, addressID, userID int64, update models.AddressUpdate) (models.Address, error)
	DeleteAddress(ctx context.Context, addressID, userID int64) (models.Address, error)

	CountAddressesPerUser(ctx context.Context) ([]models.UserAddressCount, error)
	ListUsersWithoutAddresses(ctx context.Context) ([]models.User, error)
}
