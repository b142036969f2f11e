// internal/app/features/errors/render.go
package errors

import (
	"encoding/json"
	"net/http"

	"github.com/lnctu/sihportal/internal/app/system/inputval"
	"github.com/lnctu/sihportal/internal/app/system/notify"
)

// Response is the envelope for error payloads. Notification carries the
// toast data the front end renders; Fields carries inline form errors.
type Response struct {
	Error        string               `json:"error,omitempty"`
	Notification *notify.Notification `json:"notification,omitempty"`
	Fields       inputval.Errors      `json:"fields,omitempty"`
}

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Render writes an error message with an attached notification.
func Render(w http.ResponseWriter, status int, message string, n notify.Notification) {
	JSON(w, status, Response{Error: message, Notification: &n})
}

// Plain writes a bare error message, no notification. Used for auth
// failures where detail would leak information.
func Plain(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Response{Error: message})
}

// Validation writes a 422 with per-field errors.
func Validation(w http.ResponseWriter, errs inputval.Errors) {
	JSON(w, http.StatusUnprocessableEntity, Response{
		Error:  "validation failed",
		Fields: errs,
	})
}

// Fetch writes the degraded read-failure response: an error notification
// plus whatever empty payload the caller supplies, so list pages render
// empty instead of breaking.
func Fetch(w http.ResponseWriter, what string, payload map[string]any) {
	n := notify.Error("Error", "Failed to fetch "+what+". Please try again.")
	if payload == nil {
		payload = map[string]any{}
	}
	payload["error"] = "failed to fetch " + what
	payload["notification"] = &n
	JSON(w, http.StatusInternalServerError, payload)
}

// Mutation writes the write-failure response.
func Mutation(w http.ResponseWriter, description string) {
	n := notify.Error("Error", description)
	Render(w, http.StatusInternalServerError, description, n)
}
