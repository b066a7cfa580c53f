package http

import (
	"net/http"

	"github.com/MKhiriev/go-address-book/internal/logger"
	"github.com/MKhiriev/go-address-book/internal/utils"
	"github.com/MKhiriev/go-address-book/internal/validators"
	"github.com/MKhiriev/go-address-book/models"
)

// writeEnvelope wraps data into the uniform response envelope and writes it
// as JSON. The envelope is a pure function of the status code: success
// mirrors the status class and data is dropped on failure.
func (h *Handler) writeEnvelope(w http.ResponseWriter, r *http.Request, status int, data any, message string, fieldErrors map[string][]string) {
	envelope := models.NewEnvelope(status, data, message, fieldErrors)
	if _, err := utils.WriteJSON(w, envelope, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response envelope failed")
	}
}

// writeError translates a service or store error into the appropriate
// envelope: validation failures carry field-level detail with status 400,
// known sentinels are looked up in the error maps, everything else is a 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if fieldErrors, ok := validators.AsFieldErrors(err); ok {
		h.writeEnvelope(w, r, http.StatusBadRequest, nil, "", fieldErrors)
		return
	}

	h.writeEnvelope(w, r, statusFromError(err), nil, messageFromError(err), fieldErrorsFromError(err))
}
