package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecovery)

	router.Get("/", h.live)

	router.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)

		// static segments must be registered alongside the {userID} subtree;
		// chi matches them before the parameter route
		r.Get("/addresses/count", h.countAddressesPerUser)
		r.Get("/no-addresses", h.listUsersWithoutAddresses)
		r.Post("/complex", h.createUserWithAddresses)

		r.Route("/{userID}", func(r chi.Router) {
			r.Get("/", h.getUser)
			r.Put("/", h.updateUser)
			r.Delete("/", h.deleteUser)

			r.Post("/addresses", h.createAddress)
			r.Get("/addresses", h.listAddresses)
			r.Put("/addresses/{addressID}", h.updateAddress)
			r.Delete("/addresses/{addressID}", h.deleteAddress)
		})
	})

	// unknown routes and wrong methods answer with the same JSON envelope
	// as every other response
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeEnvelope(w, r, http.StatusNotFound, nil, "Route not found", nil)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.writeEnvelope(w, r, http.StatusMethodNotAllowed, nil, "Method not allowed", nil)
	})

	return router
}

func (h *Handler) live(w http.ResponseWriter, r *http.Request) {
	h.writeEnvelope(w, r, http.StatusOK, map[string]string{"status": "up"}, "", nil)
}
