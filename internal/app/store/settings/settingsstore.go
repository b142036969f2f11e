// internal/app/store/settings/settingsstore.go
package settingsstore

import (
	"context"
	"errors"
	"time"

	"github.com/lnctu/sihportal/internal/app/system/regwindow"
	"github.com/lnctu/sihportal/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store manages the registration settings singleton. All reads and
// writes go through the fixed document ID, so there is never more than
// one settings document.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("registration_settings")}
}

// Get loads the settings document. When none exists yet, the default
// window (registration enabled, deadline 30 days out at end of day UTC)
// is returned without being persisted.
func (s *Store) Get(ctx context.Context) (models.RegistrationSettings, error) {
	var out models.RegistrationSettings
	err := s.c.FindOne(ctx, bson.M{"_id": models.RegistrationSettingsID}).Decode(&out)
	if err == nil {
		return out, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Default(time.Now().UTC()), nil
	}
	return models.RegistrationSettings{}, err
}

// Default builds the settings used before an admin has saved any.
func Default(now time.Time) models.RegistrationSettings {
	w := regwindow.Default(now)
	return models.RegistrationSettings{
		ID:                    models.RegistrationSettingsID,
		RegistrationDeadline:  w.Deadline,
		IsRegistrationEnabled: w.Enabled,
	}
}

// Save upserts the singleton document and returns the stored value.
func (s *Store) Save(ctx context.Context, deadline time.Time, enabled bool) (models.RegistrationSettings, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"registration_deadline":   deadline.UTC(),
			"is_registration_enabled": enabled,
			"updated_at":              now,
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := s.c.UpdateByID(ctx, models.RegistrationSettingsID, update, opts); err != nil {
		return models.RegistrationSettings{}, err
	}
	return models.RegistrationSettings{
		ID:                    models.RegistrationSettingsID,
		RegistrationDeadline:  deadline.UTC(),
		IsRegistrationEnabled: enabled,
		UpdatedAt:             &now,
	}, nil
}

// EnsureDefault persists the default settings if no document exists yet.
// Used at startup so the admin panel always has something to show.
func (s *Store) EnsureDefault(ctx context.Context) error {
	def := Default(time.Now().UTC())
	update := bson.M{
		"$setOnInsert": bson.M{
			"registration_deadline":   def.RegistrationDeadline,
			"is_registration_enabled": def.IsRegistrationEnabled,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateByID(ctx, models.RegistrationSettingsID, update, opts)
	return err
}
