// internal/app/features/directory/handler.go
package directory

import (
	"net/http"

	apperrors "github.com/lnctu/sihportal/internal/app/features/errors"
	individualstore "github.com/lnctu/sihportal/internal/app/store/individuals"
	teamstore "github.com/lnctu/sihportal/internal/app/store/teams"
	query "github.com/lnctu/sihportal/internal/app/system/directory"
	"github.com/lnctu/sihportal/internal/app/system/skills"
	"github.com/lnctu/sihportal/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler serves the public participant directory.
type Handler struct {
	Individuals *individualstore.Store
	Teams       *teamstore.Store
	Log         *zap.Logger
}

func NewHandler(individuals *individualstore.Store, teams *teamstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Individuals: individuals, Teams: teams, Log: logger}
}

func filterFromQuery(r *http.Request) query.Filter {
	q := r.URL.Query()
	return query.Filter{
		Text:   q.Get("q"),
		Skill:  q.Get("skill"),
		Branch: q.Get("branch"),
	}
}

// ListIndividuals handles GET /api/directory/individuals?q=&skill=&branch=.
// A store failure degrades to an empty list with an error notification
// rather than breaking the page.
func (h *Handler) ListIndividuals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "individuals.Search")
	defer cancel()

	list, err := h.Individuals.Search(ctx, filterFromQuery(r))
	if err != nil {
		h.Log.Error("directory: individual search failed", zap.Error(err))
		apperrors.Fetch(w, "individuals", map[string]any{"individuals": []any{}})
		return
	}
	apperrors.JSON(w, http.StatusOK, map[string]any{"individuals": list})
}

// ListTeams handles GET /api/directory/teams?q=.
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "teams.Search")
	defer cancel()

	list, err := h.Teams.Search(ctx, filterFromQuery(r))
	if err != nil {
		h.Log.Error("directory: team search failed", zap.Error(err))
		apperrors.Fetch(w, "teams", map[string]any{"teams": []any{}})
		return
	}
	apperrors.JSON(w, http.StatusOK, map[string]any{"teams": list})
}

type skillOption struct {
	Label string `json:"label"`
	Class string `json:"class"`
}

type skillCategory struct {
	Name   string        `json:"name"`
	Skills []skillOption `json:"skills"`
}

// SkillOptions handles GET /api/directory/skill-options. It serves the
// static taxonomy that backs the skill filter and the registration
// form: skill categories with their display classes, plus the branch
// and study-year enums.
func (h *Handler) SkillOptions(w http.ResponseWriter, _ *http.Request) {
	cats := make([]skillCategory, 0, len(skills.Categories))
	for _, c := range skills.Categories {
		opts := make([]skillOption, 0, len(c.Skills))
		for _, s := range c.Skills {
			opts = append(opts, skillOption{Label: s, Class: skills.Classify(s)})
		}
		cats = append(cats, skillCategory{Name: c.Name, Skills: opts})
	}
	apperrors.JSON(w, http.StatusOK, map[string]any{
		"categories": cats,
		"branches":   skills.BranchOptions,
		"years":      skills.YearOptions,
	})
}
