// Package regwindow is the registration-window policy: the single
// source of truth for "can a user register right now". Both the public
// gate and the admin settings editor go through it so the two surfaces
// cannot disagree.
package regwindow

import (
	"fmt"
	"time"

	"github.com/lnctu/sihportal/internal/domain/models"
)

// Window is the evaluated policy state, loaded from the settings
// singleton.
type Window struct {
	Deadline time.Time
	Enabled  bool
}

// FromSettings builds a Window from the persisted settings document.
func FromSettings(s models.RegistrationSettings) Window {
	return Window{Deadline: s.RegistrationDeadline, Enabled: s.IsRegistrationEnabled}
}

// IsOpen reports whether registration is accepted at the given instant.
// The comparison is strict: now == deadline is closed. Callers must
// pass their current time at the moment of the check, not a cached one.
func (w Window) IsOpen(now time.Time) bool {
	return w.Enabled && now.Before(w.Deadline)
}

// ClosedMessage is the user-facing gate message. The deadline is always
// normalized to end of day, so the message carries the calendar date
// only.
func (w Window) ClosedMessage() string {
	if !w.Enabled {
		return "Registration is currently closed."
	}
	return fmt.Sprintf("Registration closed on %s.", w.Deadline.UTC().Format("January 2, 2006"))
}

// Default is the synthesized window used when no settings document
// exists yet: open, ending 30 days from now.
func Default(now time.Time) Window {
	return Window{
		Deadline: EndOfDayUTC(now.AddDate(0, 0, models.DefaultRegistrationDays)),
		Enabled:  true,
	}
}

// EndOfDayUTC normalizes t to 23:59:59.999 UTC of its calendar day.
// The admin picks a day; fixing the time-of-day here keeps "deadline"
// meaning end-of-day regardless of the admin's local time zone.
func EndOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, 999_000_000, time.UTC)
}

// ParseDeadline validates an admin-supplied calendar day ("2006-01-02")
// and normalizes it. A malformed value is an error for the admin to
// fix; it is never silently treated as an open window.
func ParseDeadline(day string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid deadline %q: expected YYYY-MM-DD", day)
	}
	return EndOfDayUTC(t), nil
}
