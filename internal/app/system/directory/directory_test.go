package directory_test

import (
	"testing"
	"time"

	"github.com/lnctu/sihportal/internal/app/system/directory"
	"github.com/lnctu/sihportal/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ind(name string, skills []string, branch string) models.Individual {
	return models.Individual{
		ID:     primitive.NewObjectID(),
		Name:   name,
		Branch: branch,
		Skills: skills,
	}
}

func TestMatchIndividual_SkillSubstring(t *testing.T) {
	rohan := ind("Rohan", []string{"React"}, "MCA")
	kavya := ind("Kavya", []string{"Flutter"}, "BCA")

	f := directory.Filter{Skill: "react"}
	if !directory.MatchIndividual(rohan, f) {
		t.Error("lower-cased filter should match React via case-insensitive substring")
	}
	if directory.MatchIndividual(kavya, f) {
		t.Error("Flutter should not match react")
	}

	// Substring containment is intentional: "scri" matches JavaScript.
	js := ind("Dev", []string{"JavaScript"}, "MCA")
	if !directory.MatchIndividual(js, directory.Filter{Skill: "scri"}) {
		t.Error("scri should match JavaScript by substring containment")
	}
}

func TestMatchIndividual_MissingSkills(t *testing.T) {
	none := ind("Nil Skills", nil, "MCA")
	if directory.MatchIndividual(none, directory.Filter{Skill: "react"}) {
		t.Error("a record without skills must not match a skill filter")
	}
	// No skill constraint: record still matches.
	if !directory.MatchIndividual(none, directory.Filter{Skill: directory.All}) {
		t.Error("sentinel all should not constrain")
	}
}

func TestMatchIndividual_BranchAndText(t *testing.T) {
	rec := ind("Rohan Mehta", []string{"React"}, "Computer Science & Engineering")

	tests := []struct {
		name string
		f    directory.Filter
		want bool
	}{
		{"name substring", directory.Filter{Text: "mehta"}, true},
		{"name miss", directory.Filter{Text: "kavya"}, false},
		{"branch exact ci", directory.Filter{Branch: "computer science & engineering"}, true},
		{"branch miss", directory.Filter{Branch: "MCA"}, false},
		{"all three AND", directory.Filter{Text: "rohan", Skill: "rea", Branch: "Computer Science & Engineering"}, true},
		{"AND fails on one", directory.Filter{Text: "rohan", Skill: "flutter"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := directory.MatchIndividual(rec, tt.f); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchTeam_NameEitherField(t *testing.T) {
	tm := models.Team{
		ID:           primitive.NewObjectID(),
		TeamName:     "Code Warriors",
		LeaderName:   "Rahul Sharma",
		LeaderSkills: []string{"React", "Python"},
		LeaderBranch: "Information Technology",
	}

	if !directory.MatchTeam(tm, directory.Filter{Text: "warriors"}) {
		t.Error("team name should match")
	}
	if !directory.MatchTeam(tm, directory.Filter{Text: "rahul"}) {
		t.Error("leader name should match")
	}
	if directory.MatchTeam(tm, directory.Filter{Text: "kavya"}) {
		t.Error("neither name matches")
	}
	if !directory.MatchTeam(tm, directory.Filter{Skill: "pyth", Branch: "information technology"}) {
		t.Error("leader skills and branch should match")
	}
}

func TestApplyIndividuals_Ordering(t *testing.T) {
	base := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	oldest := ind("A", nil, "")
	oldest.CreatedAt = base.Add(-2 * time.Hour)
	middle := ind("B", nil, "")
	middle.CreatedAt = base.Add(-time.Hour)
	newest := ind("C", nil, "")
	newest.CreatedAt = base

	got := directory.ApplyIndividuals([]models.Individual{oldest, newest, middle}, directory.Filter{})
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	if got[0].Name != "C" || got[1].Name != "B" || got[2].Name != "A" {
		t.Errorf("order: got %s,%s,%s, want C,B,A", got[0].Name, got[1].Name, got[2].Name)
	}
}

func TestApplyIndividuals_TieBreakByID(t *testing.T) {
	at := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	a := ind("X", nil, "")
	b := ind("Y", nil, "")
	a.CreatedAt, b.CreatedAt = at, at

	lo, hi := a, b
	if b.ID.Hex() < a.ID.Hex() {
		lo, hi = b, a
	}

	got := directory.ApplyIndividuals([]models.Individual{hi, lo}, directory.Filter{})
	if got[0].ID != lo.ID || got[1].ID != hi.ID {
		t.Error("equal timestamps should order by id ascending")
	}
}

func TestQueries_MirrorLocalSemantics(t *testing.T) {
	// The pushed-down builders target folded columns; spot-check the
	// shapes so a field rename cannot silently fork the two paths.
	q := directory.IndividualQuery(directory.Filter{Text: "Ro", Skill: "React", Branch: "MCA"})
	for _, key := range []string{"name_ci", "skills_ci", "branch_ci"} {
		if _, ok := q[key]; !ok {
			t.Errorf("individual query missing %s", key)
		}
	}

	tq := directory.TeamQuery(directory.Filter{Text: "Ro"})
	if _, ok := tq["$or"]; !ok {
		t.Error("team text query must match team_name_ci or leader_name_ci")
	}

	if len(directory.IndividualQuery(directory.Filter{Skill: directory.All, Branch: directory.All})) != 0 {
		t.Error("sentinel all must push no constraints down")
	}
}
