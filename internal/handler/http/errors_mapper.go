package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-address-book/internal/service"
	"github.com/MKhiriev/go-address-book/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrNoFieldsToUpdate: http.StatusBadRequest,
	service.ErrHashingPassword:  http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrAddressNotFound:    http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrAcquiringConnection:  http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrNoFieldsToUpdate: "No fields to update",

	store.ErrEmailAlreadyExists: "Email already exists",
	store.ErrUserNotFound:       "User not found",
	store.ErrAddressNotFound:    "Address not found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return "Database error"
}

// fieldErrorsFromError surfaces storage-level constraint violations as
// field-level detail, matching the shape produced by the validators.
func fieldErrorsFromError(err error) map[string][]string {
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return map[string][]string{"email": {"Email already exists"}}
	}
	return nil
}
