package service

import (
	"github.com/MKhiriev/go-address-book/internal/config"
	"github.com/MKhiriev/go-address-book/internal/logger"
	"github.com/MKhiriev/go-address-book/internal/store"
	"github.com/MKhiriev/go-address-book/internal/utils"
)

type Services struct {
	UserService    UserService
	AddressService AddressService
}

func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	hasher := utils.NewPasswordHasher(cfg.BcryptCost)

	return &Services{
		UserService:    NewUserService(repositories.UserRepository, hasher, logger),
		AddressService: NewAddressService(repositories.AddressRepository, logger),
	}
}
