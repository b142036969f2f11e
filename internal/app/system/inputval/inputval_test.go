package inputval_test

import (
	"strings"
	"testing"

	"github.com/lnctu/sihportal/internal/app/system/inputval"
	"github.com/lnctu/sihportal/internal/domain/models"
)

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"9876543210", true},
		{"+919876543210", true},
		{"12345678", true},
		{"+123456789012345", true},

		{"", false},
		{"0123456789", false},       // leading zero
		{"1234567", false},          // too short
		{"1234567890123456", false}, // too long
		{"98765-43210", false},
		{"phone", false},
	}
	for _, tt := range tests {
		if got := inputval.ValidPhone(tt.phone); got != tt.want {
			t.Errorf("ValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestClean_StripsMarkup(t *testing.T) {
	if got := inputval.Clean("  Rohan <script>alert(1)</script>Mehta "); got != "Rohan Mehta" {
		t.Errorf("Clean: got %q", got)
	}
	if got := inputval.Clean("<b>React</b>"); got != "React" {
		t.Errorf("Clean: got %q", got)
	}
}

func validIndividual() inputval.IndividualSubmission {
	return inputval.IndividualSubmission{
		Name:          "Rohan Mehta",
		Year:          "2nd Year",
		Branch:        "Computer Science & Engineering",
		Skills:        []string{"React", "Node.js"},
		ContactNumber: "9876543210",
	}
}

func TestValidateIndividual_OK(t *testing.T) {
	sub := validIndividual()
	ind, errs := inputval.ValidateIndividual(&sub)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if ind.Name != "Rohan Mehta" || len(ind.Skills) != 2 {
		t.Errorf("unexpected record: %+v", ind)
	}
}

func TestValidateIndividual_FieldErrors(t *testing.T) {
	sub := inputval.IndividualSubmission{
		Name:          "R",
		Year:          "7th Year",
		Branch:        "Astrology",
		Skills:        nil,
		ContactNumber: "nope",
	}
	_, errs := inputval.ValidateIndividual(&sub)
	if errs == nil {
		t.Fatal("expected errors")
	}
	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	for _, f := range []string{"name", "year", "branch", "skills", "contactNumber"} {
		if !fields[f] {
			t.Errorf("missing error for field %s", f)
		}
	}
}

func TestValidateIndividual_DeploymentLinkGatedByFlag(t *testing.T) {
	sub := validIndividual()
	sub.DeploymentLink = "https://my-portfolio.com"
	ind, errs := inputval.ValidateIndividual(&sub)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if ind.DeploymentLink != "" {
		t.Error("deployment link should be dropped when hasDeployedSoftware is false")
	}

	sub = validIndividual()
	sub.HasDeployedSoftware = true
	sub.DeploymentLink = "https://my-portfolio.com"
	ind, _ = inputval.ValidateIndividual(&sub)
	if ind.DeploymentLink != "https://my-portfolio.com" {
		t.Error("deployment link should be kept when hasDeployedSoftware is true")
	}
}

func validTeam() inputval.TeamSubmission {
	return inputval.TeamSubmission{
		TeamName:     "Code Warriors",
		LeaderName:   "Rahul Sharma",
		LeaderYear:   "3rd Year",
		LeaderBranch: "Information Technology",
		LeaderSkills: []string{"Python"},
		LeaderPhone:  "9876543210",
		Members: []inputval.MemberSubmission{
			{Name: "Priya Singh", Year: "3rd Year", Branch: "MCA", Skills: []string{"UI/UX Design"}},
		},
	}
}

func TestValidateTeam_OK(t *testing.T) {
	sub := validTeam()
	tm, errs := inputval.ValidateTeam(&sub)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if tm.ParticipantCount() != 2 {
		t.Errorf("participant count: got %d, want 2", tm.ParticipantCount())
	}
}

func TestValidateTeam_TooManyMembers(t *testing.T) {
	sub := validTeam()
	for len(sub.Members) <= models.MaxTeamMembers {
		sub.Members = append(sub.Members, sub.Members[0])
	}
	_, errs := inputval.ValidateTeam(&sub)
	if errs == nil {
		t.Fatal("expected member-limit error")
	}
	found := false
	for _, e := range errs {
		if e.Field == "members" {
			found = true
		}
	}
	if !found {
		t.Error("expected an error on the members field")
	}
}

func TestValidateTeam_MemberFieldAddressing(t *testing.T) {
	sub := validTeam()
	sub.Members[0].Name = ""
	_, errs := inputval.ValidateTeam(&sub)
	if errs == nil {
		t.Fatal("expected errors")
	}
	found := false
	for _, e := range errs {
		if strings.HasPrefix(e.Field, "members.0.") {
			found = true
		}
	}
	if !found {
		t.Errorf("member errors should be addressed by index, got %v", errs)
	}
}
