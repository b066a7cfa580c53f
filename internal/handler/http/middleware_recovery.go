package http

import (
	"net/http"

	"github.com/MKhiriev/go-address-book/internal/logger"
)

// withRecovery converts a panicking handler into a JSON 500 envelope instead
// of letting net/http kill the connection.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromRequest(r).Error().Any("panic", rec).Msg("recovered from panic in handler")
				h.writeEnvelope(w, r, http.StatusInternalServerError, nil, "", nil)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
