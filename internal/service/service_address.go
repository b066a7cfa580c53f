package service

import (
	"context"

	"github.com/MKhiriev/go-address-book/internal/logger"
	"github.com/MKhiriev/go-address-book/internal/store"
	"github.com/MKhiriev/go-address-book/internal/validators"
	"github.com/MKhiriev/go-address-book/models"
)

// addressService is the concrete implementation of AddressService.
type addressService struct {
	addressRepository store.AddressRepository
	logger            *logger.Logger
}

// NewAddressService constructs an AddressService wired to the given
// AddressRepository.
func NewAddressService(addressRepository store.AddressRepository, logger *logger.Logger) AddressService {
	return &addressService{
		addressRepository: addressRepository,
		logger:            logger,
	}
}

// CreateAddress validates the payload and persists a new address for the
// given user. No application-level check that the user exists precedes the
// insert; a missing user surfaces as store.ErrUserNotFound via the foreign
// key.
func (s *addressService) CreateAddress(ctx context.Context, userID int64, req models.CreateAddressRequest) (models.Address, error) {
	log := logger.FromContext(ctx)

	if fieldErrors := validators.ValidateCreateAddress(req); fieldErrors != nil {
		log.Error().Any("field_errors", fieldErrors).Int64("user_id", userID).Msg("invalid address data provided")
		return models.Address{}, fieldErrors
	}

	return s.addressRepository.CreateAddress(ctx, models.Address{
		UserID:      userID,
		AddressLine: req.AddressLine,
		City:        req.City,
		State:       req.State,
		PostalCode:  req.PostalCode,
		Country:     req.Country,
	})
}

// ListAddresses returns all addresses of the given user; an empty list is a
// valid result.
func (s *addressService) ListAddresses(ctx context.Context, userID int64) ([]models.Address, error) {
	return s.addressRepository.ListAddresses(ctx, userID)
}

// UpdateAddress applies a partial update. An update with no fields at all is
// rejected with ErrNoFieldsToUpdate before any query is issued; fields that
// are present must pass the full address constraints.
func (s *addressService) UpdateAddress(ctx context.Context, addressID, userID int64, update models.AddressUpdate) (models.Address, error) {
	log := logger.FromContext(ctx)

	if update.Empty() {
		log.Error().Int64("address_id", addressID).Int64("user_id", userID).Msg("partial update with no fields")
		return models.Address{}, ErrNoFieldsToUpdate
	}

	if fieldErrors := validators.ValidateAddressUpdate(update); fieldErrors != nil {
		log.Error().Any("field_errors", fieldErrors).Int64("address_id", addressID).Msg("invalid address update provided")
		return models.Address{}, fieldErrors
	}

	return s.addressRepository.UpdateAddress(ctx, addressID, userID, update)
}

// DeleteAddress removes one address identified by address id and owner user
// id, returning the deleted record.
func (s *addressService) DeleteAddress(ctx context.Context, addressID, userID int64) (models.Address, error) {
	return s.addressRepository.DeleteAddress(ctx, addressID, userID)
}

// CountAddressesPerUser returns the per-user address counts, including users
// with zero addresses.
func (s *addressService) CountAddressesPerUser(ctx context.Context) ([]models.UserAddressCount, error) {
	return s.addressRepository.CountAddressesPerUser(ctx)
}

// ListUsersWithoutAddresses returns the users lacking any address rows.
func (s *addressService) ListUsersWithoutAddresses(ctx context.Context) ([]models.User, error) {
	return s.addressRepository.ListUsersWithoutAddresses(ctx)
}
