// internal/app/features/admin/handler.go
package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/lnctu/sihportal/internal/app/features/errors"
	"github.com/lnctu/sihportal/internal/app/system/auth"
	"github.com/lnctu/sihportal/internal/app/system/notify"
	"github.com/lnctu/sihportal/internal/app/system/ratelimit"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	individualstore "github.com/lnctu/sihportal/internal/app/store/individuals"
	settingsstore "github.com/lnctu/sihportal/internal/app/store/settings"
	teamstore "github.com/lnctu/sihportal/internal/app/store/teams"
)

// Handler serves the admin panel API: stats, record management, the
// registration window editor, and data export.
type Handler struct {
	Client      *mongo.Client
	Sessions    *auth.SessionManager
	Individuals *individualstore.Store
	Teams       *teamstore.Store
	Settings    *settingsstore.Store
	Limits      *ratelimit.AdminLimiter
	Log         *zap.Logger

	// invalidate drops the window feature's cached settings after the
	// admin saves new ones.
	invalidate func()
}

func NewHandler(
	client *mongo.Client,
	sessions *auth.SessionManager,
	individuals *individualstore.Store,
	teams *teamstore.Store,
	settings *settingsstore.Store,
	invalidate func(),
	logger *zap.Logger,
) *Handler {
	if invalidate == nil {
		invalidate = func() {}
	}
	return &Handler{
		Client:      client,
		Sessions:    sessions,
		Individuals: individuals,
		Teams:       teams,
		Settings:    settings,
		Limits:      ratelimit.NewAdminLimiter(),
		Log:         logger,
		invalidate:  invalidate,
	}
}

// Login handles POST /api/admin/login. The error is the same whatever
// went wrong with the credential.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if ok, reason := h.Limits.Check(r); !ok {
		h.Log.Warn("admin login throttled", zap.String("ip", ratelimit.ClientIP(r)))
		apperrors.Plain(w, http.StatusTooManyRequests, reason)
		return
	}

	var body struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		apperrors.Plain(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.Sessions.VerifyCredential(body.Password); err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			h.Log.Error("admin login: credential check failed", zap.Error(err))
		}
		apperrors.Plain(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := h.Sessions.SignIn(w, r); err != nil {
		h.Log.Error("admin login: session save failed", zap.Error(err))
		apperrors.Mutation(w, "Login failed. Please try again.")
		return
	}
	h.Limits.ResetFor(r)

	h.Log.Info("admin signed in")
	n := notify.Success("Welcome", "Signed in to the admin panel.")
	apperrors.JSON(w, http.StatusOK, map[string]any{"notification": n})
}

// Logout handles POST /api/admin/logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.SignOut(w, r); err != nil {
		h.Log.Error("admin logout: session save failed", zap.Error(err))
		apperrors.Mutation(w, "Logout failed. Please try again.")
		return
	}
	apperrors.JSON(w, http.StatusOK, map[string]any{"ok": true})
}
