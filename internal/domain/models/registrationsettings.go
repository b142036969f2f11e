// internal/domain/models/registrationsettings.go
package models

import "time"

// RegistrationSettingsID is the fixed key of the singleton settings
// document. Writes always upsert against this id so a second row can
// never be created.
const RegistrationSettingsID = "registration"

// DefaultRegistrationDays is the synthesized window length when no
// settings document exists yet.
const DefaultRegistrationDays = 30

// RegistrationSettings is the singleton registration-window
// configuration. The deadline is stored in UTC, normalized to
// 23:59:59.999 of the chosen calendar day.
type RegistrationSettings struct {
	ID                    string     `bson:"_id" json:"-"`
	RegistrationDeadline  time.Time  `bson:"registration_deadline" json:"registrationDeadline"`
	IsRegistrationEnabled bool       `bson:"is_registration_enabled" json:"isRegistrationEnabled"`
	UpdatedAt             *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}
