package sheets

import (
	"context"
	"fmt"
	"strings"

	"flounder-swim/internal/fixtures"
	"flounder-swim/internal/models"
	"flounder-swim/internal/util"
)

const (
	SheetParticipants  = "Participants"
	SheetTeams         = "Teams"
	SheetMembers       = "Team_Members"
	SheetHeatNames     = "Heat_Names"
	SheetAgeCategories = "Age_Categories"
)

// LoadSeed reads every seed sheet. The first row of each sheet is a header.
// Protocols and awards are not kept in the spreadsheet and stay empty.
func (c *Client) LoadSeed(ctx context.Context) (fixtures.Seed, error) {
	var s fixtures.Seed

	values, err := c.readAll(ctx, SheetParticipants)
	if err != nil {
		return s, err
	}
	s.Participants = ParseParticipants(values)

	teams, err := c.readAll(ctx, SheetTeams)
	if err != nil {
		return s, err
	}
	members, err := c.readAll(ctx, SheetMembers)
	if err != nil {
		return s, err
	}
	s.Teams = ParseTeams(teams, members)

	if values, err = c.readAll(ctx, SheetHeatNames); err != nil {
		return s, err
	}
	s.HeatNames = ParseHeatNames(values)

	if values, err = c.readAll(ctx, SheetAgeCategories); err != nil {
		return s, err
	}
	s.AgeCategories = ParseAgeCategories(values)
	return s, nil
}

// ---------- Participants ----------

// ParseParticipants expects: id, discipline, full_name, team, age, time,
// distance, heat, lane.
func ParseParticipants(values [][]interface{}) []models.Participant {
	out := []models.Participant{}
	for i := 1; i < len(values); i++ {
		row := values[i]
		if strings.TrimSpace(get(row, 0)) == "" {
			continue
		}
		out = append(out, models.Participant{
			ID:         get(row, 0),
			Discipline: get(row, 1),
			FullName:   get(row, 2),
			Team:       get(row, 3),
			Age:        util.Number(get(row, 4)),
			Time:       get(row, 5),
			Distance:   get(row, 6),
			Heat:       get(row, 7),
			Lane:       util.Number(get(row, 8)),
		})
	}
	return out
}

// ---------- Teams ----------

// ParseTeams expects teams as id, name, description, coach, total_points
// and members as team_id, id, name, initials, age. Members of unknown
// teams are dropped.
func ParseTeams(teams, members [][]interface{}) []models.Team {
	out := []models.Team{}
	index := map[string]int{}
	for i := 1; i < len(teams); i++ {
		row := teams[i]
		t := models.Team{
			ID:          get(row, 0),
			Name:        get(row, 1),
			Description: get(row, 2),
			Coach:       get(row, 3),
			TotalPoints: util.Number(get(row, 4)),
			Members:     []models.Member{},
		}
		if strings.TrimSpace(t.ID) == "" || strings.TrimSpace(t.Name) == "" {
			continue
		}
		index[t.ID] = len(out)
		out = append(out, t)
	}
	for i := 1; i < len(members); i++ {
		row := members[i]
		pos, ok := index[get(row, 0)]
		if !ok {
			continue
		}
		out[pos].Members = append(out[pos].Members, models.Member{
			ID:       get(row, 1),
			Name:     get(row, 2),
			Initials: get(row, 3),
			Age:      util.Number(get(row, 4)),
		})
	}
	return out
}

// ---------- Regulations ----------

// ParseHeatNames expects: id, name, stage, order.
func ParseHeatNames(values [][]interface{}) []models.HeatName {
	out := []models.HeatName{}
	for i := 1; i < len(values); i++ {
		row := values[i]
		if strings.TrimSpace(get(row, 0)) == "" {
			continue
		}
		out = append(out, models.HeatName{
			ID:    get(row, 0),
			Name:  get(row, 1),
			Stage: get(row, 2),
			Order: util.Number(get(row, 3)),
		})
	}
	return out
}

// ParseAgeCategories expects: id, group_name, min_age, max_age.
func ParseAgeCategories(values [][]interface{}) []models.AgeCategory {
	out := []models.AgeCategory{}
	for i := 1; i < len(values); i++ {
		row := values[i]
		if strings.TrimSpace(get(row, 0)) == "" {
			continue
		}
		out = append(out, models.AgeCategory{
			ID:        get(row, 0),
			GroupName: get(row, 1),
			MinAge:    util.Number(get(row, 2)),
			MaxAge:    util.Number(get(row, 3)),
		})
	}
	return out
}

// ---------- helpers ----------

func get(row []interface{}, idx int) string {
	if idx < 0 || idx >= len(row) || row[idx] == nil {
		return ""
	}
	return fmt.Sprint(row[idx])
}
