// Package directory is the participant-directory query engine: the
// filter/order semantics behind the public "browse registrants" view
// and admin search.
//
// Filtering can run in two places: pushed down to Mongo (Query
// builders below, against the stored *_ci folded columns) or locally
// over an already-fetched slice (Match/Apply). Both paths must produce
// the same result set in the same order; the tests hold them to that.
package directory

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/lnctu/sihportal/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// All is the sentinel meaning "no constraint" for Skill and Branch.
const All = "all"

// Filter is a directory query: free-text name search plus optional
// skill and branch constraints, combined with AND.
type Filter struct {
	Text   string
	Skill  string
	Branch string
}

// IsZero reports whether the filter constrains nothing.
func (f Filter) IsZero() bool {
	return f.Text == "" && !f.hasSkill() && !f.hasBranch()
}

func (f Filter) hasSkill() bool  { return f.Skill != "" && f.Skill != All }
func (f Filter) hasBranch() bool { return f.Branch != "" && f.Branch != All }

// MatchIndividual applies the filter to a single individual record.
// A record with no skills never matches a skill constraint; absence
// is "no skills", not a wildcard.
func MatchIndividual(ind models.Individual, f Filter) bool {
	if f.Text != "" && !foldContains(ind.Name, f.Text) {
		return false
	}
	if f.hasSkill() && !anySkillContains(ind.Skills, f.Skill) {
		return false
	}
	if f.hasBranch() && text.Fold(ind.Branch) != text.Fold(f.Branch) {
		return false
	}
	return true
}

// MatchTeam applies the filter to a team record. The name test matches
// if either the team name or the leader name contains the text; skill
// and branch constraints run against the leader's fields.
func MatchTeam(tm models.Team, f Filter) bool {
	if f.Text != "" && !foldContains(tm.TeamName, f.Text) && !foldContains(tm.LeaderName, f.Text) {
		return false
	}
	if f.hasSkill() && !anySkillContains(tm.LeaderSkills, f.Skill) {
		return false
	}
	if f.hasBranch() && text.Fold(tm.LeaderBranch) != text.Fold(f.Branch) {
		return false
	}
	return true
}

// ApplyIndividuals filters and orders a fetched slice: created_at
// descending, id ascending on ties.
func ApplyIndividuals(list []models.Individual, f Filter) []models.Individual {
	out := make([]models.Individual, 0, len(list))
	for _, ind := range list {
		if MatchIndividual(ind, f) {
			out = append(out, ind)
		}
	}
	SortIndividuals(out)
	return out
}

// ApplyTeams filters and orders a fetched slice the same way.
func ApplyTeams(list []models.Team, f Filter) []models.Team {
	out := make([]models.Team, 0, len(list))
	for _, tm := range list {
		if MatchTeam(tm, f) {
			out = append(out, tm)
		}
	}
	SortTeams(out)
	return out
}

// SortIndividuals orders in place: most recent first, id ascending on
// equal timestamps so the order is deterministic.
func SortIndividuals(list []models.Individual) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID.Hex() < list[j].ID.Hex()
	})
}

// SortTeams orders in place with the same rule.
func SortTeams(list []models.Team) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID.Hex() < list[j].ID.Hex()
	})
}

// Sort is the Mongo sort matching SortIndividuals/SortTeams.
func Sort() bson.D {
	return bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}
}

// IndividualQuery builds the pushed-down Mongo filter equivalent to
// MatchIndividual. It runs entirely against the folded *_ci columns,
// so no case options are needed and the semantics stay identical to
// the local path.
func IndividualQuery(f Filter) bson.M {
	q := bson.M{}
	if f.Text != "" {
		q["name_ci"] = bson.M{"$regex": foldRegex(f.Text)}
	}
	if f.hasSkill() {
		q["skills_ci"] = bson.M{"$elemMatch": bson.M{"$regex": foldRegex(f.Skill)}}
	}
	if f.hasBranch() {
		q["branch_ci"] = text.Fold(f.Branch)
	}
	return q
}

// TeamQuery builds the pushed-down Mongo filter equivalent to
// MatchTeam.
func TeamQuery(f Filter) bson.M {
	q := bson.M{}
	if f.Text != "" {
		re := bson.M{"$regex": foldRegex(f.Text)}
		q["$or"] = []bson.M{{"team_name_ci": re}, {"leader_name_ci": re}}
	}
	if f.hasSkill() {
		q["leader_skills_ci"] = bson.M{"$elemMatch": bson.M{"$regex": foldRegex(f.Skill)}}
	}
	if f.hasBranch() {
		q["leader_branch_ci"] = text.Fold(f.Branch)
	}
	return q
}

// FoldSkills returns the folded copies stored alongside a skills array.
func FoldSkills(skills []string) []string {
	if len(skills) == 0 {
		return nil
	}
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = text.Fold(s)
	}
	return out
}

// foldContains is the case-insensitive substring test used for names.
func foldContains(field, query string) bool {
	return strings.Contains(text.Fold(field), text.Fold(query))
}

// anySkillContains: the filter value is a substring of at least one
// entry, so "script" matches "JavaScript".
func anySkillContains(skills []string, query string) bool {
	q := text.Fold(query)
	for _, s := range skills {
		if strings.Contains(text.Fold(s), q) {
			return true
		}
	}
	return false
}

// foldRegex is a substring regex over an already-folded column.
func foldRegex(query string) string {
	return regexp.QuoteMeta(text.Fold(query))
}
