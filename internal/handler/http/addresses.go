package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-address-book/internal/logger"
	"github.com/MKhiriev/go-address-book/internal/validators"
	"github.com/MKhiriev/go-address-book/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, fieldErrors := validators.ValidateID("user_id", chi.URLParam(r, "userID"))
	if fieldErrors != nil {
		h.writeEnvelope(w, r, http.StatusBadRequest, nil, "", fieldErrors)
		return
	}

	var req models.CreateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeEnvelope(w, r, http.StatusBadRequest, nil, "Invalid JSON was passed", nil)
		return
	}

	address, err := h.services.AddressService.CreateAddress(ctx, userID, req)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("address creation failed")
		h.writeError(w, r, err)
		return
	}

	h.writeEnvelope(w, r, http.StatusCreated, address, "", nil)
}

func (h *Handler) listAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, fieldErrors := validators.ValidateID("user_id", chi.URLParam(r, "userID"))
	if fieldErrors != nil {
		h.writeEnvelope(w, r, http.StatusBadRequest, nil, "", fieldErrors)
		return
	}

	addresses, err := h.services.AddressService.ListAddresses(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing addresses failed")
		h.writeError(w, r, err)
		return
	}

	h.writeEnvelope(w, r, http.StatusOK, addresses, "", nil)
}

func (h *Handler) updateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, addressID, fieldErrors := h.addressPathIDs(r)
	if fieldErrors != nil {
		h.writeEnvelope(w, r, http.StatusBadRequest, nil, "", fieldErrors)
		return
	}

	var update models.AddressUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeEnvelope(w, r, http.StatusBadRequest, nil, "Invalid JSON was passed", nil)
		return
	}

	address, err := h.services.AddressService.UpdateAddress(ctx, addressID, userID, update)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("address_id", addressID).Msg("address update failed")
		h.writeError(w, r, err)
		return
	}

	h.writeEnvelope(w, r, http.StatusOK, address, "", nil)
}

func (h *Handler) deleteAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, addressID, fieldErrors := h.addressPathIDs(r)
	if fieldErrors != nil {
		h.writeEnvelope(w, r, http.StatusBadRequest, nil, "", fieldErrors)
		return
	}

	address, err := h.services.AddressService.DeleteAddress(ctx, addressID, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("address_id", addressID).Msg("address deletion failed")
		h.writeError(w, r, err)
		return
	}

	h.writeEnvelope(w, r, http.StatusOK, address, "", nil)
}

func (h *Handler) countAddressesPerUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	counts, err := h.services.AddressService.CountAddressesPerUser(ctx)
	if err != nil {
		log.Err(err).Msg("counting addresses per user failed")
		h.writeError(w, r, err)
		return
	}

	h.writeEnvelope(w, r, http.StatusOK, counts, "", nil)
}

func (h *Handler) listUsersWithoutAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.AddressService.ListUsersWithoutAddresses(ctx)
	if err != nil {
		log.Err(err).Msg("listing users without addresses failed")
		h.writeError(w, r, err)
		return
	}

	h.writeEnvelope(w, r, http.StatusOK, users, "", nil)
}

// addressPathIDs validates both identifiers of the nested address routes,
// accumulating violations for each into one FieldErrors map.
func (h *Handler) addressPathIDs(r *http.Request) (userID, addressID int64, fieldErrors validators.FieldErrors) {
	userID, userErrors := validators.ValidateID("user_id", chi.URLParam(r, "userID"))
	addressID, addressErrors := validators.ValidateID("address_id", chi.URLParam(r, "addressID"))

	if userErrors == nil && addressErrors == nil {
		return userID, addressID, nil
	}

	fieldErrors = validators.FieldErrors{}
	for field, messages := range userErrors {
		fieldErrors[field] = messages
	}
	for field, messages := range addressErrors {
		fieldErrors[field] = messages
	}
	return 0, 0, fieldErrors
}
