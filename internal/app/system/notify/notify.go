// Package notify builds the outcome payloads the API attaches to
// responses. The core never renders toasts itself; it only produces
// {id, title, description, severity} for the client's notification
// surface.
package notify

import "github.com/google/uuid"

// Severity levels understood by the client.
const (
	SeveritySuccess = "success"
	SeverityError   = "error"
	SeverityInfo    = "info"
)

// Notification is a single user-facing outcome message. The id lets
// the client de-duplicate retried deliveries.
type Notification struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// Success builds a success notification.
func Success(title, description string) Notification {
	return Notification{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Severity:    SeveritySuccess,
	}
}

// Error builds an error notification.
func Error(title, description string) Notification {
	return Notification{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Severity:    SeverityError,
	}
}

// Info builds an informational notification.
func Info(title, description string) Notification {
	return Notification{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Severity:    SeverityInfo,
	}
}
