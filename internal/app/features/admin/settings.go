// internal/app/features/admin/settings.go
package admin

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/lnctu/sihportal/internal/app/features/errors"
	"github.com/lnctu/sihportal/internal/app/system/inputval"
	"github.com/lnctu/sihportal/internal/app/system/notify"
	"github.com/lnctu/sihportal/internal/app/system/regwindow"
	"github.com/lnctu/sihportal/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// GetSettings handles GET /api/admin/settings.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "admin.settings.Get")
	defer cancel()

	s, err := h.Settings.Get(ctx)
	if err != nil {
		h.Log.Error("admin: settings fetch failed", zap.Error(err))
		apperrors.Fetch(w, "registration settings", nil)
		return
	}
	apperrors.JSON(w, http.StatusOK, s)
}

// UpdateSettings handles PUT /api/admin/settings. The deadline arrives
// as a calendar day and is stored as end of that day UTC. A malformed
// day is rejected before anything is written.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RegistrationDeadline  string `json:"registrationDeadline"`
		IsRegistrationEnabled bool   `json:"isRegistrationEnabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		apperrors.Plain(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	deadline, err := regwindow.ParseDeadline(body.RegistrationDeadline)
	if err != nil {
		apperrors.Validation(w, inputval.Errors{
			{Field: "registrationDeadline", Message: "must be a valid date in YYYY-MM-DD form"},
		})
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "admin.settings.Save")
	defer cancel()

	if _, err := h.Settings.Save(ctx, deadline, body.IsRegistrationEnabled); err != nil {
		h.Log.Error("admin: settings save failed", zap.Error(err))
		apperrors.Mutation(w, "Failed to save settings. Please try again.")
		return
	}
	h.invalidate()

	// Serve what the store now holds, not what we think we wrote.
	saved, err := h.Settings.Get(ctx)
	if err != nil {
		h.Log.Error("admin: settings refetch failed", zap.Error(err))
		apperrors.Fetch(w, "registration settings", nil)
		return
	}

	h.Log.Info("admin updated registration settings",
		zap.Time("deadline", saved.RegistrationDeadline),
		zap.Bool("enabled", saved.IsRegistrationEnabled))

	note := notify.Success("Saved", "Registration settings updated.")
	apperrors.JSON(w, http.StatusOK, map[string]any{
		"settings":     saved,
		"notification": note,
	})
}
