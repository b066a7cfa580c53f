package store

import (
	"context"

	"github.com/MKhiriev/go-address-book/internal/config"
	"github.com/MKhiriev/go-address-book/internal/logger"
)

// Repositories aggregates every repository of the application behind one
// construction point, all sharing the same connection pool.
type Repositories struct {
	UserRepository    UserRepository
	AddressRepository AddressRepository
}

// NewRepositories connects to the database, applies pending migrations, and
// wires all repositories on top of the shared pool.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Msg("connection to database failed")
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Msg("database migration failed")
		return nil, err
	}

	return &Repositories{
		UserRepository:    NewUserRepository(db, log),
		AddressRepository: NewAddressRepository(db, log),
	}, nil
}
