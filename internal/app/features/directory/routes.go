// internal/app/features/directory/routes.go
package directory

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the public directory endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/individuals", h.ListIndividuals)
	r.Get("/teams", h.ListTeams)
	r.Get("/skill-options", h.SkillOptions)
	return r
}
