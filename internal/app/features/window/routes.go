// internal/app/features/window/routes.go
package window

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the public registration-window state.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve) // mounted under /api/registration-window
	return r
}
