// internal/app/system/inputval/registration.go
package inputval

import (
	"fmt"

	"github.com/lnctu/sihportal/internal/domain/models"
)

// IndividualSubmission is the inbound individual-registration payload.
type IndividualSubmission struct {
	Name                string   `json:"name"`
	Year                string   `json:"year"`
	Branch              string   `json:"branch"`
	Skills              []string `json:"skills"`
	ContactNumber       string   `json:"contactNumber"`
	Github              string   `json:"github"`
	Discord             string   `json:"discord"`
	HasDeployedSoftware bool     `json:"hasDeployedSoftware"`
	DeploymentLink      string   `json:"deploymentLink"`
}

// ValidateIndividual sanitizes the submission in place and returns any
// field errors. The returned record is store-ready except for identity
// and timestamps, which the store owns.
func ValidateIndividual(sub *IndividualSubmission) (models.Individual, Errors) {
	sub.Name = Clean(sub.Name)
	sub.Skills = CleanAll(sub.Skills)
	sub.Github = Clean(sub.Github)
	sub.Discord = Clean(sub.Discord)
	sub.DeploymentLink = Clean(sub.DeploymentLink)

	var errs Errors
	checkName(&errs, "name", sub.Name)
	checkYear(&errs, "year", sub.Year)
	checkBranch(&errs, "branch", sub.Branch)
	checkSkills(&errs, "skills", sub.Skills)
	checkPhone(&errs, "contactNumber", sub.ContactNumber)

	if errs != nil {
		return models.Individual{}, errs
	}

	ind := models.Individual{
		Name:                sub.Name,
		Year:                sub.Year,
		Branch:              sub.Branch,
		Skills:              sub.Skills,
		ContactNumber:       sub.ContactNumber,
		Github:              sub.Github,
		Discord:             sub.Discord,
		HasDeployedSoftware: sub.HasDeployedSoftware,
	}
	// The deployment link only means anything alongside the flag.
	if sub.HasDeployedSoftware {
		ind.DeploymentLink = sub.DeploymentLink
	}
	return ind, nil
}

// MemberSubmission is one non-leader member in a team payload.
type MemberSubmission struct {
	Name   string   `json:"name"`
	Year   string   `json:"year"`
	Branch string   `json:"branch"`
	Skills []string `json:"skills"`
	Github string   `json:"github"`
}

// TeamSubmission is the inbound team-registration payload.
type TeamSubmission struct {
	TeamName      string             `json:"teamName"`
	LeaderName    string             `json:"leaderName"`
	LeaderYear    string             `json:"leaderYear"`
	LeaderBranch  string             `json:"leaderBranch"`
	LeaderSkills  []string           `json:"leaderSkills"`
	LeaderPhone   string             `json:"leaderPhone"`
	LeaderDiscord string             `json:"leaderDiscord"`
	LeaderGithub  string             `json:"leaderGithub"`
	Members       []MemberSubmission `json:"members"`
}

// ValidateTeam sanitizes the submission in place and returns any field
// errors. Member field errors are addressed as members.<i>.<field>.
func ValidateTeam(sub *TeamSubmission) (models.Team, Errors) {
	sub.TeamName = Clean(sub.TeamName)
	sub.LeaderName = Clean(sub.LeaderName)
	sub.LeaderSkills = CleanAll(sub.LeaderSkills)
	sub.LeaderDiscord = Clean(sub.LeaderDiscord)
	sub.LeaderGithub = Clean(sub.LeaderGithub)

	var errs Errors
	checkName(&errs, "teamName", sub.TeamName)
	checkName(&errs, "leaderName", sub.LeaderName)
	checkYear(&errs, "leaderYear", sub.LeaderYear)
	checkBranch(&errs, "leaderBranch", sub.LeaderBranch)
	checkSkills(&errs, "leaderSkills", sub.LeaderSkills)
	checkPhone(&errs, "leaderPhone", sub.LeaderPhone)

	if len(sub.Members) > models.MaxTeamMembers {
		errs.add("members", fmt.Sprintf("a team may have at most %d members besides the leader", models.MaxTeamMembers))
	}

	members := make([]models.TeamMember, 0, len(sub.Members))
	for i := range sub.Members {
		m := &sub.Members[i]
		m.Name = Clean(m.Name)
		m.Skills = CleanAll(m.Skills)
		m.Github = Clean(m.Github)

		prefix := fmt.Sprintf("members.%d.", i)
		checkName(&errs, prefix+"name", m.Name)
		checkYear(&errs, prefix+"year", m.Year)
		checkBranch(&errs, prefix+"branch", m.Branch)
		checkSkills(&errs, prefix+"skills", m.Skills)

		members = append(members, models.TeamMember{
			Name:   m.Name,
			Year:   m.Year,
			Branch: m.Branch,
			Skills: m.Skills,
			Github: m.Github,
		})
	}

	if errs != nil {
		return models.Team{}, errs
	}

	return models.Team{
		TeamName:      sub.TeamName,
		LeaderName:    sub.LeaderName,
		LeaderYear:    sub.LeaderYear,
		LeaderBranch:  sub.LeaderBranch,
		LeaderSkills:  sub.LeaderSkills,
		LeaderPhone:   sub.LeaderPhone,
		LeaderDiscord: sub.LeaderDiscord,
		LeaderGithub:  sub.LeaderGithub,
		Members:       members,
	}, nil
}
