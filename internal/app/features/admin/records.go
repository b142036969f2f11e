// internal/app/features/admin/records.go
package admin

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	apperrors "github.com/lnctu/sihportal/internal/app/features/errors"
	"github.com/lnctu/sihportal/internal/app/system/notify"
	"github.com/lnctu/sihportal/internal/app/system/timeouts"
	"github.com/lnctu/sihportal/internal/app/system/txn"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Stats handles GET /api/admin/stats. Participants counts every team
// leader plus members plus the individual registrations.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "admin.stats")
	defer cancel()

	teams, err := h.Teams.Count(ctx)
	if err != nil {
		h.Log.Error("admin stats: team count failed", zap.Error(err))
		apperrors.Fetch(w, "stats", nil)
		return
	}
	individuals, err := h.Individuals.Count(ctx)
	if err != nil {
		h.Log.Error("admin stats: individual count failed", zap.Error(err))
		apperrors.Fetch(w, "stats", nil)
		return
	}
	teamParticipants, err := h.Teams.ParticipantCount(ctx)
	if err != nil {
		h.Log.Error("admin stats: participant count failed", zap.Error(err))
		apperrors.Fetch(w, "stats", nil)
		return
	}

	apperrors.JSON(w, http.StatusOK, map[string]any{
		"teams":        teams,
		"individuals":  individuals,
		"participants": teamParticipants + individuals,
	})
}

// ListTeams handles GET /api/admin/teams.
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "admin.teams.List")
	defer cancel()

	list, err := h.Teams.List(ctx)
	if err != nil {
		h.Log.Error("admin: team list failed", zap.Error(err))
		apperrors.Fetch(w, "teams", map[string]any{"teams": []any{}})
		return
	}
	apperrors.JSON(w, http.StatusOK, map[string]any{"teams": list})
}

// ListIndividuals handles GET /api/admin/individuals.
func (h *Handler) ListIndividuals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "admin.individuals.List")
	defer cancel()

	list, err := h.Individuals.List(ctx)
	if err != nil {
		h.Log.Error("admin: individual list failed", zap.Error(err))
		apperrors.Fetch(w, "individuals", map[string]any{"individuals": []any{}})
		return
	}
	apperrors.JSON(w, http.StatusOK, map[string]any{"individuals": list})
}

func pathID(r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	return id, err == nil
}

// DeleteTeam handles DELETE /api/admin/teams/{id}. Deleting a missing
// record succeeds; the response carries the refetched list so the panel
// always renders server state.
func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		apperrors.Plain(w, http.StatusBadRequest, "invalid record id")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "admin.teams.Delete")
	defer cancel()

	n, err := h.Teams.Delete(ctx, id)
	if err != nil {
		h.Log.Error("admin: team delete failed", zap.Error(err), zap.String("id", id.Hex()))
		apperrors.Mutation(w, "Failed to delete team. Please try again.")
		return
	}

	list, err := h.Teams.List(ctx)
	if err != nil {
		h.Log.Error("admin: team refetch after delete failed", zap.Error(err))
		apperrors.Fetch(w, "teams", map[string]any{"teams": []any{}})
		return
	}

	h.Log.Info("admin deleted team", zap.String("id", id.Hex()), zap.Int64("removed", n))
	note := notify.Success("Deleted", "Team registration removed.")
	apperrors.JSON(w, http.StatusOK, map[string]any{
		"deleted":      n,
		"teams":        list,
		"notification": note,
	})
}

// DeleteIndividual handles DELETE /api/admin/individuals/{id}.
func (h *Handler) DeleteIndividual(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		apperrors.Plain(w, http.StatusBadRequest, "invalid record id")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "admin.individuals.Delete")
	defer cancel()

	n, err := h.Individuals.Delete(ctx, id)
	if err != nil {
		h.Log.Error("admin: individual delete failed", zap.Error(err), zap.String("id", id.Hex()))
		apperrors.Mutation(w, "Failed to delete registration. Please try again.")
		return
	}

	list, err := h.Individuals.List(ctx)
	if err != nil {
		h.Log.Error("admin: individual refetch after delete failed", zap.Error(err))
		apperrors.Fetch(w, "individuals", map[string]any{"individuals": []any{}})
		return
	}

	h.Log.Info("admin deleted individual", zap.String("id", id.Hex()), zap.Int64("removed", n))
	note := notify.Success("Deleted", "Individual registration removed.")
	apperrors.JSON(w, http.StatusOK, map[string]any{
		"deleted":      n,
		"individuals":  list,
		"notification": note,
	})
}

// ClearAll handles POST /api/admin/clear. Both collections are emptied
// inside one transaction where the server supports it; a partial
// failure reports as failure.
func (h *Handler) ClearAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "admin.clearAll")
	defer cancel()

	var removedTeams, removedIndividuals int64
	err := txn.WithTransaction(ctx, h.Client, h.Log, func(ctx context.Context) error {
		var err error
		if removedTeams, err = h.Teams.DeleteAll(ctx); err != nil {
			return err
		}
		removedIndividuals, err = h.Individuals.DeleteAll(ctx)
		return err
	})
	if err != nil {
		h.Log.Error("admin: clear all failed", zap.Error(err))
		apperrors.Mutation(w, "Failed to clear registrations. Please try again.")
		return
	}

	h.Log.Warn("admin cleared all registrations",
		zap.Int64("teams", removedTeams),
		zap.Int64("individuals", removedIndividuals))

	note := notify.Success("Cleared", "All registrations removed.")
	apperrors.JSON(w, http.StatusOK, map[string]any{
		"teams":        removedTeams,
		"individuals":  removedIndividuals,
		"notification": note,
	})
}
