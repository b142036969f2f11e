package admin_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/lnctu/sihportal/internal/app/features/admin"
	individualstore "github.com/lnctu/sihportal/internal/app/store/individuals"
	settingsstore "github.com/lnctu/sihportal/internal/app/store/settings"
	teamstore "github.com/lnctu/sihportal/internal/app/store/teams"
	"github.com/lnctu/sihportal/internal/app/system/auth"
	"github.com/lnctu/sihportal/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "open-sesame"

func newSessions(t *testing.T) *auth.SessionManager {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	sm, err := auth.NewSessionManager(
		"0123456789abcdef0123456789abcdef", "sihportal_test", "", string(hash), false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return sm
}

func newHandler(t *testing.T) (*admin.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	h := admin.NewHandler(
		db.Client(),
		newSessions(t),
		individualstore.New(db),
		teamstore.New(db),
		settingsstore.New(db),
		nil,
		zap.NewNop(),
	)
	return h, db
}

func TestLogin_WrongPassword(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/admin/login", map[string]any{"password": "guess"})
	rec := testutil.NewRecorder()
	h.Login(rec, req)

	rec.AssertStatus(t, http.StatusUnauthorized)
	rec.AssertContains(t, "invalid credentials")
}

func TestLogin_ThrottlesRepeatedGuesses(t *testing.T) {
	h, _ := newHandler(t)

	var last *testutil.ResponseRecorder
	for i := 0; i < 6; i++ {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/admin/login", map[string]any{"password": "guess"})
		last = testutil.NewRecorder()
		h.Login(last, req)
	}
	last.AssertStatus(t, http.StatusTooManyRequests)
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/admin/login", map[string]any{"password": testPassword})
	rec := testutil.NewRecorder()
	h.Login(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login should set a session cookie")
	}
	if cookies[0].Name != "sihportal_test" {
		t.Errorf("cookie name = %q", cookies[0].Name)
	}
}

func TestStats_CountsParticipants(t *testing.T) {
	h, db := newHandler(t)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)

	now := time.Now().UTC()
	fx.CreateTeam(ctx, "Team A", "Leader A", []string{"Go"}, now) // leader + 1 member
	fx.CreateIndividual(ctx, "Solo", []string{"Python"}, now)

	rec := testutil.NewRecorder()
	h.Stats(rec, testutil.NewRequest(http.MethodGet, "/api/admin/stats"))

	rec.AssertStatus(t, http.StatusOK)
	var resp struct {
		Teams        int64 `json:"teams"`
		Individuals  int64 `json:"individuals"`
		Participants int64 `json:"participants"`
	}
	testutil.DecodeJSON(t, rec.Body, &resp)
	if resp.Teams != 1 || resp.Individuals != 1 {
		t.Errorf("counts = %+v", resp)
	}
	if resp.Participants != 3 {
		t.Errorf("participants = %d, want 3 (leader + member + individual)", resp.Participants)
	}
}

func TestDeleteTeam_MissingIDIsNoOpSuccess(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.NewRequest(http.MethodDelete, "/api/admin/teams/507f1f77bcf86cd799439011")
	req = testutil.WithChiURLParam(req, "id", "507f1f77bcf86cd799439011")
	rec := testutil.NewRecorder()
	h.DeleteTeam(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	var resp struct {
		Deleted int64 `json:"deleted"`
	}
	testutil.DecodeJSON(t, rec.Body, &resp)
	if resp.Deleted != 0 {
		t.Errorf("deleted = %d, want 0", resp.Deleted)
	}
}

func TestDeleteIndividual_RefetchesList(t *testing.T) {
	h, db := newHandler(t)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)

	now := time.Now().UTC()
	victim := fx.CreateIndividual(ctx, "Victim", []string{"Go"}, now)
	fx.CreateIndividual(ctx, "Survivor", []string{"Go"}, now)

	req := testutil.NewRequest(http.MethodDelete, "/api/admin/individuals/"+victim.ID.Hex())
	req = testutil.WithChiURLParam(req, "id", victim.ID.Hex())
	rec := testutil.NewRecorder()
	h.DeleteIndividual(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	var resp struct {
		Deleted     int64 `json:"deleted"`
		Individuals []struct {
			Name string `json:"name"`
		} `json:"individuals"`
	}
	testutil.DecodeJSON(t, rec.Body, &resp)
	if resp.Deleted != 1 {
		t.Errorf("deleted = %d, want 1", resp.Deleted)
	}
	if len(resp.Individuals) != 1 || resp.Individuals[0].Name != "Survivor" {
		t.Errorf("refetched list = %+v", resp.Individuals)
	}
}

func TestDeleteTeam_BadID(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.NewRequest(http.MethodDelete, "/api/admin/teams/not-hex")
	req = testutil.WithChiURLParam(req, "id", "not-hex")
	rec := testutil.NewRecorder()
	h.DeleteTeam(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestClearAll_EmptiesBothCollections(t *testing.T) {
	h, db := newHandler(t)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)

	now := time.Now().UTC()
	fx.CreateTeam(ctx, "Team A", "Leader A", []string{"Go"}, now)
	fx.CreateIndividual(ctx, "Solo", []string{"Python"}, now)

	rec := testutil.NewRecorder()
	h.ClearAll(rec, testutil.NewRequest(http.MethodPost, "/api/admin/clear"))

	rec.AssertStatus(t, http.StatusOK)

	teams, _ := teamstore.New(db).Count(ctx)
	individuals, _ := individualstore.New(db).Count(ctx)
	if teams != 0 || individuals != 0 {
		t.Errorf("after clear: teams=%d individuals=%d, want 0,0", teams, individuals)
	}
}

func TestUpdateSettings_MalformedDeadline(t *testing.T) {
	h, db := newHandler(t)
	ctx := testutil.TestContext(t)

	req := testutil.NewJSONRequest(t, http.MethodPut, "/api/admin/settings", map[string]any{
		"registrationDeadline":  "junk",
		"isRegistrationEnabled": true,
	})
	rec := testutil.NewRecorder()
	h.UpdateSettings(rec, req)

	rec.AssertStatus(t, http.StatusUnprocessableEntity)
	rec.AssertContains(t, "registrationDeadline")

	// nothing may have been written
	n, err := db.Collection("registration_settings").CountDocuments(ctx, map[string]any{})
	if err != nil {
		t.Fatalf("CountDocuments: %v", err)
	}
	if n != 0 {
		t.Errorf("settings documents after rejected update = %d, want 0", n)
	}
}

func TestUpdateSettings_NormalizesToEndOfDay(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.NewJSONRequest(t, http.MethodPut, "/api/admin/settings", map[string]any{
		"registrationDeadline":  "2025-06-30",
		"isRegistrationEnabled": true,
	})
	rec := testutil.NewRecorder()
	h.UpdateSettings(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	var resp struct {
		Settings struct {
			RegistrationDeadline time.Time `json:"registrationDeadline"`
		} `json:"settings"`
	}
	testutil.DecodeJSON(t, rec.Body, &resp)
	d := resp.Settings.RegistrationDeadline.UTC()
	if d.Hour() != 23 || d.Minute() != 59 || d.Second() != 59 {
		t.Errorf("deadline not end-of-day: %v", d)
	}
	if d.Year() != 2025 || d.Month() != time.June || d.Day() != 30 {
		t.Errorf("deadline wrong day: %v", d)
	}
}

func TestExport_CSVHeaders(t *testing.T) {
	h, db := newHandler(t)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)
	fx.CreateIndividual(ctx, "Ananya Rao", []string{"Go"}, time.Now().UTC())

	req := testutil.NewRequest(http.MethodGet, "/api/admin/export/individuals?format=csv")
	req = testutil.WithChiURLParam(req, "collection", "individuals")
	rec := testutil.NewRecorder()
	h.Export(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd == "" {
		t.Error("missing Content-Disposition header")
	}
	rec.AssertContains(t, "Ananya Rao")
}

func TestExport_UnknownCollection(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.NewRequest(http.MethodGet, "/api/admin/export/nope")
	req = testutil.WithChiURLParam(req, "collection", "nope")
	rec := testutil.NewRecorder()
	h.Export(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
}

func TestRequireAdmin_BlocksAnonymous(t *testing.T) {
	sm := newSessions(t)

	called := false
	guard := sm.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := testutil.NewRecorder()
	guard.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/api/admin/stats"))

	rec.AssertStatus(t, http.StatusUnauthorized)
	if called {
		t.Error("guarded handler ran without a session")
	}
}
