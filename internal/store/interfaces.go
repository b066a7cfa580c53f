package store

import (
	"context"

	"github.com/MKhiriev/go-address-book/models"
)

// UserRepository is the persistence contract for user rows, including the
// transactional user-plus-addresses insert.
type UserRepository interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) (models.User, error)

	// CreateUserWithAddresses inserts the user and all addresses inside one
	// transaction on a dedicated connection. Either every row is persisted
	// or none are.
	CreateUserWithAddresses(ctx context.Context, user models.User, addresses []models.Address) (int64, error)
}

// AddressRepository is the persistence contract for address rows and the
// read-only aggregates over users and addresses.
type AddressRepository interface {
	CreateAddress(ctx context.Context, address models.Address) (models.Address, error)
	ListAddresses(ctx context.Context, userID int64) ([]models.Address, error)
	UpdateAddress(ctx context.Context, addressID, userID int64, update models.AddressUpdate) (models.Address, error)
	DeleteAddress(ctx context.Context, addressID, userID int64) (models.Address, error)

	CountAddressesPerUser(ctx context.Context) ([]models.UserAddressCount, error)
	ListUsersWithoutAddresses(ctx context.Context) ([]models.User, error)
}
