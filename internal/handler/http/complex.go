package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-address-book/internal/logger"
	"github.com/MKhiriev/go-address-book/internal/store"
	"github.com/MKhiriev/go-address-book/internal/validators"
	"github.com/MKhiriev/go-address-book/models"
)

// createUserWithAddresses inserts a user and all of their addresses in one
// database transaction. Validation rejections come back as field errors
// before the transaction starts; any failure inside it rolls everything back.
func (h *Handler) createUserWithAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateUserWithAddressesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeEnvelope(w, r, http.StatusBadRequest, nil, "Invalid JSON was passed", nil)
		return
	}

	result, err := h.services.UserService.CreateUserWithAddresses(ctx, req)
	if err != nil {
		if fieldErrors, ok := validators.AsFieldErrors(err); ok {
			h.writeEnvelope(w, r, http.StatusBadRequest, nil, "", fieldErrors)
			return
		}

		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Err(err).Msg("email already exists")
			h.writeError(w, r, err)
			return
		}

		log.Err(err).Msg("user with addresses transaction failed")
		h.writeEnvelope(w, r, http.StatusInternalServerError, nil, "Transaction failed", nil)
		return
	}

	h.writeEnvelope(w, r, http.StatusCreated, result, "", nil)
}
