// internal/domain/models/team.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxTeamMembers is the member limit excluding the leader
// (leader + members ≤ 6 participants total).
const MaxTeamMembers = 5

// TeamMember is an embedded member record; only the leader carries
// contact details.
type TeamMember struct {
	Name   string   `bson:"name" json:"name"`
	Year   string   `bson:"year" json:"year"`
	Branch string   `bson:"branch" json:"branch"`
	Skills []string `bson:"skills" json:"skills"`
	Github string   `bson:"github,omitempty" json:"github,omitempty"`
}

// Team is a pre-formed team registration. TeamNameCI and LeaderNameCI
// are the folded columns used for search.
type Team struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`

	TeamName   string `bson:"team_name" json:"teamName"`
	TeamNameCI string `bson:"team_name_ci" json:"-"`

	LeaderName     string   `bson:"leader_name" json:"leaderName"`
	LeaderNameCI   string   `bson:"leader_name_ci" json:"-"`
	LeaderYear     string   `bson:"leader_year" json:"leaderYear"`
	LeaderBranch   string   `bson:"leader_branch" json:"leaderBranch"`
	LeaderBranchCI string   `bson:"leader_branch_ci" json:"-"`
	LeaderSkills   []string `bson:"leader_skills" json:"leaderSkills"`
	LeaderSkillsCI []string `bson:"leader_skills_ci" json:"-"`
	LeaderPhone    string   `bson:"leader_phone" json:"leaderPhone"`
	LeaderDiscord  string   `bson:"leader_discord,omitempty" json:"leaderDiscord,omitempty"`
	LeaderGithub   string   `bson:"leader_github,omitempty" json:"leaderGithub,omitempty"`

	Members []TeamMember `bson:"members" json:"members"`
}

// ParticipantCount returns the number of people on the team including
// the leader.
func (t *Team) ParticipantCount() int {
	return len(t.Members) + 1
}
