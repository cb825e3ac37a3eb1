package nbastats

import (
	"strconv"
	"strings"

	"nba-shotchart/internal/domain/players"
	"nba-shotchart/internal/domain/shots"
	"nba-shotchart/internal/domain/stats"
)

func mapCandidates(env *envelope) ([]players.Candidate, error) {
	if len(env.ResultSets) == 0 {
		return nil, errMissingSets("commonallplayers")
	}
	rs := &env.ResultSets[0]
	cols, err := rs.columns("PERSON_ID", "DISPLAY_FIRST_LAST", "FROM_YEAR", "TO_YEAR")
	if err != nil {
		return nil, err
	}

	out := make([]players.Candidate, 0, len(rs.RowSet))
	for _, row := range rs.RowSet {
		out = append(out, players.Candidate{
			ID:       cols.int(row, "PERSON_ID"),
			FullName: cols.str(row, "DISPLAY_FIRST_LAST"),
			FromYear: cols.int(row, "FROM_YEAR"),
			ToYear:   cols.int(row, "TO_YEAR"),
		})
	}
	return out, nil
}

func mapAggregates(env *envelope) ([]stats.SeasonAggregate, error) {
	rs, err := env.set(setCareerTotals)
	if err != nil {
		return nil, err
	}
	cols, err := rs.columns("SEASON_ID", "TEAM_ID", "TEAM_ABBREVIATION",
		"GP", "FGM", "FGA", "FG3M", "FG3A", "REB", "AST", "PTS")
	if err != nil {
		return nil, err
	}

	out := make([]stats.SeasonAggregate, 0, len(rs.RowSet))
	for _, row := range rs.RowSet {
		// "TOT" rows duplicate the per-team rows of a traded season.
		if cols.str(row, "TEAM_ABBREVIATION") == "TOT" {
			continue
		}
		seasonID := cols.str(row, "SEASON_ID")
		out = append(out, stats.SeasonAggregate{
			SeasonID:            seasonID,
			SeasonStartYear:     seasonStartYear(seasonID),
			TeamID:              cols.int(row, "TEAM_ID"),
			TeamAbbreviation:    cols.str(row, "TEAM_ABBREVIATION"),
			GamesPlayed:         cols.int(row, "GP"),
			Points:              cols.float(row, "PTS"),
			Assists:             cols.float(row, "AST"),
			Rebounds:            cols.float(row, "REB"),
			FieldGoalsMade:      cols.int(row, "FGM"),
			FieldGoalsAttempted: cols.int(row, "FGA"),
			ThreeMade:           cols.int(row, "FG3M"),
			ThreeAttempted:      cols.int(row, "FG3A"),
		})
	}
	return out, nil
}

func mapShots(env *envelope) ([]shots.Record, error) {
	rs, err := env.set(setShotDetail)
	if err != nil {
		return nil, err
	}
	cols, err := rs.columns("LOC_X", "LOC_Y", "SHOT_MADE_FLAG", "SHOT_TYPE", "PERIOD")
	if err != nil {
		return nil, err
	}

	out := make([]shots.Record, 0, len(rs.RowSet))
	for _, row := range rs.RowSet {
		shotType := shots.TwoPoint
		if strings.Contains(cols.str(row, "SHOT_TYPE"), "3PT") {
			shotType = shots.ThreePoint
		}
		out = append(out, shots.Record{
			X:      cols.float(row, "LOC_X"),
			Y:      cols.float(row, "LOC_Y"),
			Made:   cols.int(row, "SHOT_MADE_FLAG") == 1,
			Type:   shotType,
			Period: cols.int(row, "PERIOD"),
		})
	}
	return out, nil
}

// seasonStartYear pulls the start year out of a SEASON_ID like "2005-06".
func seasonStartYear(seasonID string) int {
	if len(seasonID) < 4 {
		return 0
	}
	year, err := strconv.Atoi(seasonID[:4])
	if err != nil {
		return 0
	}
	return year
}
