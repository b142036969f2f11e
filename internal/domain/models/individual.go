// internal/domain/models/individual.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Individual is a solo registrant looking for a team.
// NameCI and BranchCI are the folded columns used for search/sort.
type Individual struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`

	Name     string `bson:"name" json:"name"`
	NameCI   string `bson:"name_ci" json:"-"`
	Year     string `bson:"year" json:"year"`
	Branch   string `bson:"branch" json:"branch"`
	BranchCI string `bson:"branch_ci" json:"-"`

	Skills   []string `bson:"skills" json:"skills"`
	SkillsCI []string `bson:"skills_ci" json:"-"`

	ContactNumber string `bson:"contact_number" json:"contactNumber"`
	Github        string `bson:"github,omitempty" json:"github,omitempty"`
	Discord       string `bson:"discord,omitempty" json:"discord,omitempty"`

	HasDeployedSoftware bool   `bson:"has_deployed_software" json:"hasDeployedSoftware"`
	DeploymentLink      string `bson:"deployment_link,omitempty" json:"deploymentLink,omitempty"`
}
