// internal/app/features/registrations/routes.go
package registrations

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter for the submission endpoints. Every route
// runs behind the registration-window gate.
func Routes(h *Handler, gate func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(gate)
	r.Post("/individuals", h.CreateIndividual)
	r.Post("/teams", h.CreateTeam)
	return r
}
