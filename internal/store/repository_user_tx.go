package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-address-book/internal/logger"
	"github.com/MKhiriev/go-address-book/models"
	"github.com/jackc/pgerrcode"
)

const insertAddressInTx = `INSERT INTO addresses (user_id, address_line, city, state, postal_code, country)
		VALUES ($1, $2, $3, $4, $5, $6);`

// CreateUserWithAddresses inserts a user row plus all address rows inside a
// single transaction.
//
// A dedicated connection is checked out of the pool so every statement from
// BEGIN to COMMIT/ROLLBACK shares one transactional context; the connection
// is returned to the pool on every exit path. Addresses are inserted in the
// order of the input slice. If any statement fails, the whole transaction is
// rolled back, including the user insert.
//
// Error handling:
//   - unique_violation on the user insert → [ErrEmailAlreadyExists];
//   - connection/transaction failures → wrapped sentinel errors;
//   - any mid-loop insert error aborts and rolls back.
func (r *userRepository) CreateUserWithAddresses(ctx context.Context, user models.User, addresses []models.Address) (int64, error) {
	log := logger.FromContext(ctx)

	// dedicated connection for the whole BEGIN..COMMIT sequence
	conn, err := r.db.Conn(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUserWithAddresses").Msg("error acquiring dedicated connection")
		return 0, fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
	}
	defer conn.Close() // releases the connection back to the pool on all paths

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUserWithAddresses").Msg("error during opening transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() // no-op once the transaction is committed

	// insert the user, capturing the generated identifier
	var userID int64
	row := tx.QueryRowContext(ctx, createUser, user.Name, user.Email, user.Password)
	if err := row.Scan(&userID, &user.Name, &user.Email); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return 0, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUserWithAddresses").Msg("error inserting user inside transaction")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	// prepare the address insert once, reuse for every element
	stmt, err := tx.PrepareContext(ctx, insertAddressInTx)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUserWithAddresses").Msg("error during preparing statement")
		return 0, err
	}
	defer stmt.Close()

	for idx, address := range addresses {
		log.Debug().
			Str("func", "*userRepository.CreateUserWithAddresses").
			Int("iteration", idx).
			Int64("user_id", userID).
			Msg("trying to insert address")

		_, execErr := stmt.ExecContext(ctx, userID, address.AddressLine, address.City, address.State, address.PostalCode, address.Country)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "*userRepository.CreateUserWithAddresses").
				Int("iteration", idx).
				Msg("error executing prepared statement for inserting address")
			return 0, execErr
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUserWithAddresses").Msg("error committing transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return userID, nil
}
