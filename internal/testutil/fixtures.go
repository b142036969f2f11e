package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/lnctu/sihportal/internal/app/system/directory"
	"github.com/lnctu/sihportal/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateIndividual inserts an individual registration with the given name
// and skills, created at the given time. Returns it with its generated ID.
func (f *Fixtures) CreateIndividual(ctx context.Context, name string, skills []string, createdAt time.Time) models.Individual {
	f.t.Helper()

	ind := models.Individual{
		ID:            primitive.NewObjectID(),
		CreatedAt:     createdAt.UTC(),
		Name:          name,
		NameCI:        text.Fold(name),
		Year:          "2nd Year",
		Branch:        "Computer Science & Engineering",
		BranchCI:      text.Fold("Computer Science & Engineering"),
		Skills:        skills,
		SkillsCI:      directory.FoldSkills(skills),
		ContactNumber: "+911234567890",
	}

	if _, err := f.db.Collection("individuals").InsertOne(ctx, ind); err != nil {
		f.t.Fatalf("failed to create test individual: %v", err)
	}
	return ind
}

// CreateTeam inserts a team registration led by leaderName. Returns it
// with its generated ID.
func (f *Fixtures) CreateTeam(ctx context.Context, teamName, leaderName string, leaderSkills []string, createdAt time.Time) models.Team {
	f.t.Helper()

	team := models.Team{
		ID:             primitive.NewObjectID(),
		CreatedAt:      createdAt.UTC(),
		TeamName:       teamName,
		TeamNameCI:     text.Fold(teamName),
		LeaderName:     leaderName,
		LeaderNameCI:   text.Fold(leaderName),
		LeaderYear:     "3rd Year",
		LeaderBranch:   "Information Technology",
		LeaderBranchCI: text.Fold("Information Technology"),
		LeaderSkills:   leaderSkills,
		LeaderSkillsCI: directory.FoldSkills(leaderSkills),
		LeaderPhone:    "+911234567890",
		Members: []models.TeamMember{
			{Name: "Member One", Year: "2nd Year", Branch: "Computer Science & Engineering", Skills: []string{"Python"}},
		},
	}

	if _, err := f.db.Collection("teams").InsertOne(ctx, team); err != nil {
		f.t.Fatalf("failed to create test team: %v", err)
	}
	return team
}

// SaveSettings upserts the registration settings singleton document.
func (f *Fixtures) SaveSettings(ctx context.Context, deadline time.Time, enabled bool) models.RegistrationSettings {
	f.t.Helper()

	now := time.Now().UTC()
	s := models.RegistrationSettings{
		ID:                    models.RegistrationSettingsID,
		RegistrationDeadline:  deadline.UTC(),
		IsRegistrationEnabled: enabled,
		UpdatedAt:             &now,
	}

	coll := f.db.Collection("registration_settings")
	if _, err := coll.DeleteOne(ctx, map[string]any{"_id": models.RegistrationSettingsID}); err != nil {
		f.t.Fatalf("failed to reset test settings: %v", err)
	}
	if _, err := coll.InsertOne(ctx, s); err != nil {
		f.t.Fatalf("failed to save test settings: %v", err)
	}
	return s
}
