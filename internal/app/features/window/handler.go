// internal/app/features/window/handler.go
package window

import (
	"net/http"
	"time"

	apperrors "github.com/lnctu/sihportal/internal/app/features/errors"
	settingsstore "github.com/lnctu/sihportal/internal/app/store/settings"
	"github.com/lnctu/sihportal/internal/app/system/notify"
	"github.com/lnctu/sihportal/internal/app/system/regwindow"
	"github.com/lnctu/sihportal/internal/app/system/timeouts"
	cache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const settingsKey = "registration_settings"

// DefaultCacheTTL bounds how stale the window gate may be. It mirrors
// the lifetime of a page load: a visitor who got the form may finish
// submitting even if the admin closed registration moments earlier.
const DefaultCacheTTL = 30 * time.Second

// Handler serves the public registration-window state and gates the
// submission endpoints on it. Settings reads go through a small TTL
// cache so the gate does not hit Mongo on every request.
type Handler struct {
	Settings *settingsstore.Store
	Cache    *cache.Cache
	Log      *zap.Logger
}

func NewHandler(settings *settingsstore.Store, ttl time.Duration, logger *zap.Logger) *Handler {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Handler{
		Settings: settings,
		Cache:    cache.New(ttl, 2*ttl),
		Log:      logger,
	}
}

// Invalidate drops the cached settings. Called after the admin saves new
// ones so the gate picks them up immediately.
func (h *Handler) Invalidate() {
	h.Cache.Delete(settingsKey)
}

// Current returns the registration window, reading through the cache.
func (h *Handler) Current(r *http.Request) (regwindow.Window, error) {
	if v, ok := h.Cache.Get(settingsKey); ok {
		return v.(regwindow.Window), nil
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "settings.Get")
	defer cancel()

	s, err := h.Settings.Get(ctx)
	if err != nil {
		return regwindow.Window{}, err
	}
	w := regwindow.FromSettings(s)
	h.Cache.SetDefault(settingsKey, w)
	return w, nil
}

type windowResponse struct {
	Open     bool      `json:"open"`
	Enabled  bool      `json:"enabled"`
	Deadline time.Time `json:"deadline"`
	Message  string    `json:"message,omitempty"`
}

// Serve handles GET /api/registration-window.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	win, err := h.Current(r)
	if err != nil {
		h.Log.Error("registration window: settings fetch failed", zap.Error(err))
		apperrors.Fetch(w, "registration settings", nil)
		return
	}

	resp := windowResponse{
		Open:     win.IsOpen(time.Now().UTC()),
		Enabled:  win.Enabled,
		Deadline: win.Deadline,
	}
	if !resp.Open {
		resp.Message = win.ClosedMessage()
	}
	apperrors.JSON(w, http.StatusOK, resp)
}

// RequireOpen blocks the wrapped handler while registration is closed.
// A settings fetch failure fails closed: submissions are never accepted
// on a guess.
func (h *Handler) RequireOpen(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		win, err := h.Current(r)
		if err != nil {
			h.Log.Error("registration gate: settings fetch failed", zap.Error(err))
			n := notify.Error("Error", "Unable to verify the registration window. Please try again.")
			apperrors.Render(w, http.StatusServiceUnavailable, "registration window unavailable", n)
			return
		}
		if !win.IsOpen(time.Now().UTC()) {
			n := notify.Info("Registration Closed", win.ClosedMessage())
			apperrors.Render(w, http.StatusForbidden, "registration closed", n)
			return
		}
		next.ServeHTTP(w, r)
	})
}
