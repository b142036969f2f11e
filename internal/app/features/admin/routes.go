// internal/app/features/admin/routes.go
package admin

import "github.com/go-chi/chi/v5"

// Routes returns the admin subrouter. Everything except login sits
// behind the session check.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(h.Sessions.RequireAdmin)

		r.Post("/logout", h.Logout)
		r.Get("/stats", h.Stats)

		r.Get("/teams", h.ListTeams)
		r.Delete("/teams/{id}", h.DeleteTeam)
		r.Get("/individuals", h.ListIndividuals)
		r.Delete("/individuals/{id}", h.DeleteIndividual)
		r.Post("/clear", h.ClearAll)

		r.Get("/settings", h.GetSettings)
		r.Put("/settings", h.UpdateSettings)

		r.Get("/export/{collection}", h.Export)
	})

	return r
}
