package registrations_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/lnctu/sihportal/internal/app/features/registrations"
	individualstore "github.com/lnctu/sihportal/internal/app/store/individuals"
	teamstore "github.com/lnctu/sihportal/internal/app/store/teams"
	"github.com/lnctu/sihportal/internal/app/system/inputval"
	"github.com/lnctu/sihportal/internal/testutil"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) *registrations.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return registrations.NewHandler(individualstore.New(db), teamstore.New(db), zap.NewNop())
}

func individualPayload() map[string]any {
	return map[string]any{
		"name":          "Ananya Rao",
		"year":          "2nd Year",
		"branch":        "Computer Science & Engineering",
		"skills":        []string{"JavaScript", "React"},
		"contactNumber": "+911234567890",
		"github":        "ananya",
	}
}

// The happy-path payload must clear the validator as-is, enum fields
// included. Runs without a database so enum drift is caught everywhere.
func TestIndividualPayload_PassesValidation(t *testing.T) {
	raw, err := json.Marshal(individualPayload())
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	var sub inputval.IndividualSubmission
	if err := json.Unmarshal(raw, &sub); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if _, errs := inputval.ValidateIndividual(&sub); errs != nil {
		t.Errorf("payload rejected: %+v", errs)
	}
}

func TestCreateIndividual_OK(t *testing.T) {
	h := newHandler(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/individuals", individualPayload())
	rec := testutil.NewRecorder()
	h.CreateIndividual(rec, req)

	rec.AssertStatus(t, http.StatusCreated)

	var resp struct {
		Individual struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"individual"`
		Notification struct {
			Severity string `json:"severity"`
		} `json:"notification"`
	}
	testutil.DecodeJSON(t, rec.Body, &resp)
	if resp.Individual.ID == "" {
		t.Error("response should carry the stored record's id")
	}
	if resp.Individual.Name != "Ananya Rao" {
		t.Errorf("name = %q", resp.Individual.Name)
	}
	if resp.Notification.Severity != "success" {
		t.Errorf("notification severity = %q, want success", resp.Notification.Severity)
	}
}

func TestCreateIndividual_ValidationFailureStoresNothing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := individualstore.New(db)
	h := registrations.NewHandler(store, teamstore.New(db), zap.NewNop())

	payload := individualPayload()
	payload["contactNumber"] = "not-a-phone"
	payload["skills"] = []string{}

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/individuals", payload)
	rec := testutil.NewRecorder()
	h.CreateIndividual(rec, req)

	rec.AssertStatus(t, http.StatusUnprocessableEntity)
	rec.AssertContains(t, "contactNumber")
	rec.AssertContains(t, "skills")

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Errorf("store has %d records after rejected submission, want 0", n)
	}
}

func TestCreateIndividual_BadJSON(t *testing.T) {
	h := newHandler(t)

	req := testutil.NewRequest(http.MethodPost, "/api/individuals")
	rec := testutil.NewRecorder()
	h.CreateIndividual(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestCreateTeam_OK(t *testing.T) {
	h := newHandler(t)

	payload := map[string]any{
		"teamName":     "Code Crusaders",
		"leaderName":   "Ananya Rao",
		"leaderYear":   "3rd Year",
		"leaderBranch": "Computer Science & Engineering",
		"leaderSkills": []string{"React", "Node.js"},
		"leaderPhone":  "+911234567890",
		"members": []map[string]any{
			{"name": "Member One", "year": "2nd Year", "branch": "Information Technology", "skills": []string{"Python"}},
		},
	}

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/teams", payload)
	rec := testutil.NewRecorder()
	h.CreateTeam(rec, req)

	rec.AssertStatus(t, http.StatusCreated)

	var resp struct {
		Team struct {
			ID       string `json:"id"`
			TeamName string `json:"teamName"`
		} `json:"team"`
	}
	testutil.DecodeJSON(t, rec.Body, &resp)
	if resp.Team.ID == "" || resp.Team.TeamName != "Code Crusaders" {
		t.Errorf("unexpected team response: %+v", resp.Team)
	}
}

func TestCreateTeam_MemberErrorsAreAddressed(t *testing.T) {
	h := newHandler(t)

	payload := map[string]any{
		"teamName":     "Code Crusaders",
		"leaderName":   "Ananya Rao",
		"leaderYear":   "3rd Year",
		"leaderBranch": "Computer Science & Engineering",
		"leaderSkills": []string{"React"},
		"leaderPhone":  "+911234567890",
		"members": []map[string]any{
			{"name": "", "year": "2nd Year", "branch": "Computer Science & Engineering", "skills": []string{"Python"}},
		},
	}

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/teams", payload)
	rec := testutil.NewRecorder()
	h.CreateTeam(rec, req)

	rec.AssertStatus(t, http.StatusUnprocessableEntity)
	rec.AssertContains(t, "members.0.name")
}
