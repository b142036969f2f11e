// internal/app/features/registrations/handler.go
package registrations

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/lnctu/sihportal/internal/app/features/errors"
	individualstore "github.com/lnctu/sihportal/internal/app/store/individuals"
	teamstore "github.com/lnctu/sihportal/internal/app/store/teams"
	"github.com/lnctu/sihportal/internal/app/system/inputval"
	"github.com/lnctu/sihportal/internal/app/system/notify"
	"github.com/lnctu/sihportal/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler accepts individual and team registration submissions.
type Handler struct {
	Individuals *individualstore.Store
	Teams       *teamstore.Store
	Log         *zap.Logger
}

func NewHandler(individuals *individualstore.Store, teams *teamstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Individuals: individuals, Teams: teams, Log: logger}
}

// CreateIndividual handles POST /api/individuals.
func (h *Handler) CreateIndividual(w http.ResponseWriter, r *http.Request) {
	var sub inputval.IndividualSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		apperrors.Plain(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ind, errs := inputval.ValidateIndividual(&sub)
	if errs != nil {
		apperrors.Validation(w, errs)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "individuals.Create")
	defer cancel()

	created, err := h.Individuals.Create(ctx, ind)
	if err != nil {
		h.Log.Error("individual registration failed", zap.Error(err))
		apperrors.Mutation(w, "Registration failed. Please try again.")
		return
	}

	h.Log.Info("individual registered",
		zap.String("id", created.ID.Hex()),
		zap.String("branch", created.Branch))

	n := notify.Success("Registration Successful", "You have been registered for the hackathon.")
	apperrors.JSON(w, http.StatusCreated, map[string]any{
		"individual":   created,
		"notification": n,
	})
}

// CreateTeam handles POST /api/teams.
func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var sub inputval.TeamSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		apperrors.Plain(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	team, errs := inputval.ValidateTeam(&sub)
	if errs != nil {
		apperrors.Validation(w, errs)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "teams.Create")
	defer cancel()

	created, err := h.Teams.Create(ctx, team)
	if err != nil {
		h.Log.Error("team registration failed", zap.Error(err))
		apperrors.Mutation(w, "Registration failed. Please try again.")
		return
	}

	h.Log.Info("team registered",
		zap.String("id", created.ID.Hex()),
		zap.String("team", created.TeamName),
		zap.Int("participants", created.ParticipantCount()))

	n := notify.Success("Registration Successful", "Your team has been registered for the hackathon.")
	apperrors.JSON(w, http.StatusCreated, map[string]any{
		"team":         created,
		"notification": n,
	})
}
