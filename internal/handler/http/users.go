package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-address-book/internal/logger"
	"github.com/MKhiriev/go-address-book/internal/validators"
	"github.com/MKhiriev/go-address-book/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		h.writeError(w, r, err)
		return
	}

	h.writeEnvelope(w, r, http.StatusOK, users, "", nil)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeEnvelope(w, r, http.StatusBadRequest, nil, "Invalid JSON was passed", nil)
		return
	}

	user, err := h.services.UserService.CreateUser(ctx, req)
	if err != nil {
		log.Err(err).Msg("user creation failed")
		h.writeError(w, r, err)
		return
	}

	h.writeEnvelope(w, r, http.StatusCreated, user, "", nil)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, fieldErrors := validators.ValidateID("id", chi.URLParam(r, "userID"))
	if fieldErrors != nil {
		h.writeEnvelope(w, r, http.StatusBadRequest, nil, "", fieldErrors)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("fetching user failed")
		h.writeError(w, r, err)
		return
	}

	h.writeEnvelope(w, r, http.StatusOK, user, "", nil)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, fieldErrors := validators.ValidateID("id", chi.URLParam(r, "userID"))
	if fieldErrors != nil {
		h.writeEnvelope(w, r, http.StatusBadRequest, nil, "", fieldErrors)
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeEnvelope(w, r, http.StatusBadRequest, nil, "Invalid JSON was passed", nil)
		return
	}

	user, err := h.services.UserService.UpdateUser(ctx, userID, req)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user update failed")
		h.writeError(w, r, err)
		return
	}

	h.writeEnvelope(w, r, http.StatusOK, user, "", nil)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, fieldErrors := validators.ValidateID("id", chi.URLParam(r, "userID"))
	if fieldErrors != nil {
		h.writeEnvelope(w, r, http.StatusBadRequest, nil, "", fieldErrors)
		return
	}

	user, err := h.services.UserService.DeleteUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user deletion failed")
		h.writeError(w, r, err)
		return
	}

	h.writeEnvelope(w, r, http.StatusOK, user, "", nil)
}
