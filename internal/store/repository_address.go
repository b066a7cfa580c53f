package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-address-book/internal/logger"
	"github.com/MKhiriev/go-address-book/models"
	"github.com/jackc/pgerrcode"
)

// addressRepository is the PostgreSQL-backed implementation of
// [AddressRepository]. It executes all address CRUD operations and the
// read-only aggregates against the "addresses" and "users" tables using the
// shared [*DB] pool.
type addressRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAddressRepository constructs an [AddressRepository] backed by the
// provided database connection and logger.
func NewAddressRepository(db *DB, logger *logger.Logger) AddressRepository {
	logger.Debug().Msg("creating address repository")
	return &addressRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAddress persists a new address row for the given user and returns
// the row with its server-assigned id.
//
// Error handling:
//   - foreign_key_violation on user_id → [ErrUserNotFound] (the referenced
//     user does not exist; no application-level existence check precedes the
//     insert);
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *addressRepository) CreateAddress(ctx context.Context, address models.Address) (models.Address, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAddress,
		address.UserID, address.AddressLine, address.City, address.State, address.PostalCode, address.Country)

	var created models.Address
	if err := row.Scan(&created.ID, &created.UserID, &created.AddressLine, &created.City, &created.State, &created.PostalCode, &created.Country); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Address{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*addressRepository.CreateAddress").Int64("user_id", address.UserID).Msg("error: scanning error")
		return models.Address{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// ListAddresses returns every address owned by the given user ordered by id.
// An empty result set is a valid result, not an error.
func (r *addressRepository) ListAddresses(ctx context.Context, userID int64) ([]models.Address, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAddressesByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.ListAddresses").Int64("user_id", userID).Msg("failed to execute query for listing addresses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	addresses := make([]models.Address, 0, 8)

	for rows.Next() {
		var address models.Address
		if scanErr := rows.Scan(&address.ID, &address.UserID, &address.AddressLine, &address.City, &address.State, &address.PostalCode, &address.Country); scanErr != nil {
			log.Err(scanErr).Str("func", "*addressRepository.ListAddresses").Int64("user_id", userID).Msg("failed to scan address row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		addresses = append(addresses, address)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*addressRepository.ListAddresses").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return addresses, nil
}

// UpdateAddress applies a partial update built at request time from the
// fields present in update, and returns the updated row.
//
// The UPDATE statement is constructed with [buildUpdateAddressQuery]; zero
// rows updated → [ErrAddressNotFound].
func (r *addressRepository) UpdateAddress(ctx context.Context, addressID, userID int64, update models.AddressUpdate) (models.Address, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAddressQuery(addressID, userID, update)
	if err != nil {
		log.Err(err).
			Str("func", "*addressRepository.UpdateAddress").
			Int64("address_id", addressID).
			Int64("user_id", userID).
			Msg("failed to build update query")
		return models.Address{}, err
	}

	var updated models.Address
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&updated.ID, &updated.UserID, &updated.AddressLine, &updated.City, &updated.State, &updated.PostalCode, &updated.Country); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Address{}, ErrAddressNotFound
		}
		log.Err(err).Str("func", "*addressRepository.UpdateAddress").Int64("address_id", addressID).Msg("error: scanning error")
		return models.Address{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteAddress removes one address row identified by address id and owner
// user id, returning the deleted row.
//
// Returns [ErrAddressNotFound] when no row matches.
func (r *addressRepository) DeleteAddress(ctx context.Context, addressID, userID int64) (models.Address, error) {
	log := logger.FromContext(ctx)

	var deleted models.Address
	row := r.db.QueryRowContext(ctx, deleteAddress, addressID, userID)

	if err := row.Scan(&deleted.ID, &deleted.UserID, &deleted.AddressLine, &deleted.City, &deleted.State, &deleted.PostalCode, &deleted.Country); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Address{}, ErrAddressNotFound
		}
		log.Err(err).Str("func", "*addressRepository.DeleteAddress").Int64("address_id", addressID).Msg("error: scanning error")
		return models.Address{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return deleted, nil
}

// CountAddressesPerUser returns one row per user with the number of
// addresses that user owns. Users without addresses appear with a zero
// count, courtesy of the LEFT JOIN.
func (r *addressRepository) CountAddressesPerUser(ctx context.Context) ([]models.UserAddressCount, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, countAddressesPerUser)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.CountAddressesPerUser").Msg("failed to execute aggregate query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make([]models.UserAddressCount, 0, 16)

	for rows.Next() {
		var count models.UserAddressCount
		if scanErr := rows.Scan(&count.UserID, &count.Name, &count.AddressCount); scanErr != nil {
			log.Err(scanErr).Str("func", "*addressRepository.CountAddressesPerUser").Msg("failed to scan aggregate row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		counts = append(counts, count)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*addressRepository.CountAddressesPerUser").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return counts, nil
}

// ListUsersWithoutAddresses returns every user that owns no address rows.
// An empty result set is a valid result.
func (r *addressRepository) ListUsersWithoutAddresses(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, usersWithoutAddresses)
	if err != nil {
		log.Err(err).Str("func", "*addressRepository.ListUsersWithoutAddresses").Msg("failed to execute aggregate query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)

	for rows.Next() {
		var user models.User
		if scanErr := rows.Scan(&user.ID, &user.Name, &user.Email); scanErr != nil {
			log.Err(scanErr).Str("func", "*addressRepository.ListUsersWithoutAddresses").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*addressRepository.ListUsersWithoutAddresses").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}
