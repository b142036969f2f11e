// Package export serializes record collections into downloadable
// artifacts: a pretty-printed JSON document that preserves nesting
// (team member lists survive a round trip) and a flat CSV with a
// fixed column order where list-valued fields are flattened into a
// single delimited cell.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lnctu/sihportal/internal/domain/models"
)

// listSep joins flattened list values inside one CSV cell. The csv
// writer handles quoting, so the cell never breaks row or column
// alignment.
const listSep = "; "

// Formats accepted by the admin export endpoint.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Filename builds the download name for an export, e.g.
// "teams_export_20250115.json".
func Filename(base, format string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", base, now.UTC().Format("20060102"), format)
}

// WriteJSON writes v as an indented JSON document. The structured
// format is the round-trippable one: re-parsing it yields records
// structurally equal to the input.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var individualColumns = []string{
	"id", "created_at", "name", "year", "branch", "skills",
	"contact_number", "github", "discord",
	"has_deployed_software", "deployment_link",
}

// WriteIndividualsCSV writes one row per individual in a fixed column
// order.
func WriteIndividualsCSV(w io.Writer, list []models.Individual) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(individualColumns); err != nil {
		return err
	}
	for _, ind := range list {
		row := []string{
			ind.ID.Hex(),
			ind.CreatedAt.UTC().Format(time.RFC3339),
			ind.Name,
			ind.Year,
			ind.Branch,
			strings.Join(ind.Skills, listSep),
			ind.ContactNumber,
			ind.Github,
			ind.Discord,
			strconv.FormatBool(ind.HasDeployedSoftware),
			ind.DeploymentLink,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

var teamColumns = []string{
	"id", "created_at", "team_name",
	"leader_name", "leader_year", "leader_branch", "leader_skills",
	"leader_phone", "leader_discord", "leader_github",
	"participant_count", "members",
}

// WriteTeamsCSV writes one row per team. The nested member list is
// flattened to "Name (Year, Branch)" entries in a single cell.
func WriteTeamsCSV(w io.Writer, list []models.Team) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(teamColumns); err != nil {
		return err
	}
	for _, tm := range list {
		members := make([]string, len(tm.Members))
		for i, m := range tm.Members {
			members[i] = fmt.Sprintf("%s (%s, %s)", m.Name, m.Year, m.Branch)
		}
		row := []string{
			tm.ID.Hex(),
			tm.CreatedAt.UTC().Format(time.RFC3339),
			tm.TeamName,
			tm.LeaderName,
			tm.LeaderYear,
			tm.LeaderBranch,
			strings.Join(tm.LeaderSkills, listSep),
			tm.LeaderPhone,
			tm.LeaderDiscord,
			tm.LeaderGithub,
			strconv.Itoa(tm.ParticipantCount()),
			strings.Join(members, listSep),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
