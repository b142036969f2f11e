// internal/app/features/admin/export.go
package admin

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	apperrors "github.com/lnctu/sihportal/internal/app/features/errors"
	"github.com/lnctu/sihportal/internal/app/system/export"
	"github.com/lnctu/sihportal/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Export handles GET /api/admin/export/{collection}?format=json|csv.
// Collection is "teams" or "individuals"; format defaults to json.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	format := r.URL.Query().Get("format")
	if format == "" {
		format = export.FormatJSON
	}
	if format != export.FormatJSON && format != export.FormatCSV {
		apperrors.Plain(w, http.StatusBadRequest, "format must be json or csv")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "admin.export")
	defer cancel()

	filename := export.Filename(collection+"_export", format, time.Now().UTC())

	switch collection {
	case "teams":
		list, err := h.Teams.List(ctx)
		if err != nil {
			h.Log.Error("admin export: team list failed", zap.Error(err))
			apperrors.Fetch(w, "teams", nil)
			return
		}
		writeDownloadHeaders(w, format, filename)
		if format == export.FormatCSV {
			err = export.WriteTeamsCSV(w, list)
		} else {
			err = export.WriteJSON(w, list)
		}
		if err != nil {
			h.Log.Error("admin export: write failed", zap.Error(err))
		}

	case "individuals":
		list, err := h.Individuals.List(ctx)
		if err != nil {
			h.Log.Error("admin export: individual list failed", zap.Error(err))
			apperrors.Fetch(w, "individuals", nil)
			return
		}
		writeDownloadHeaders(w, format, filename)
		if format == export.FormatCSV {
			err = export.WriteIndividualsCSV(w, list)
		} else {
			err = export.WriteJSON(w, list)
		}
		if err != nil {
			h.Log.Error("admin export: write failed", zap.Error(err))
		}

	default:
		apperrors.Plain(w, http.StatusNotFound, "unknown collection")
	}
}

func writeDownloadHeaders(w http.ResponseWriter, format, filename string) {
	if format == export.FormatCSV {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	} else {
		w.Header().Set("Content-Type", "application/json")
	}
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
}
