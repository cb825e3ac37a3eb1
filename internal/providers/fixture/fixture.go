// Package fixture returns a static data set useful for offline runs and
// local testing.
package fixture

import (
	"context"

	"nba-shotchart/internal/domain/players"
	"nba-shotchart/internal/domain/shots"
	"nba-shotchart/internal/domain/stats"
	"nba-shotchart/internal/providers"
	"nba-shotchart/internal/season"
)

// Provider serves a deterministic two-player data set.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchPlayers returns a deterministic directory.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Candidate, error) {
	_ = ctx
	return []players.Candidate{
		{ID: 101, FullName: "Jane Doe", FromYear: 2004, ToYear: 2011},
		{ID: 102, FullName: "John Smith", FromYear: 1990, ToYear: 1998},
	}, nil
}

// FetchCareerStats returns deterministic aggregate rows per fixture player.
func (p *Provider) FetchCareerStats(ctx context.Context, playerID int) ([]stats.SeasonAggregate, error) {
	_ = ctx
	switch playerID {
	case 101:
		return []stats.SeasonAggregate{
			{SeasonID: "2004-05", SeasonStartYear: 2004, TeamID: 1610612738, TeamAbbreviation: "BOS", GamesPlayed: 78, Points: 1432, Assists: 301, Rebounds: 404, FieldGoalsMade: 540, FieldGoalsAttempted: 1180, ThreeMade: 88, ThreeAttempted: 240},
			{SeasonID: "2005-06", SeasonStartYear: 2005, TeamID: 1610612738, TeamAbbreviation: "BOS", GamesPlayed: 80, Points: 2000, Assists: 400, Rebounds: 560, FieldGoalsMade: 700, FieldGoalsAttempted: 1400, ThreeMade: 100, ThreeAttempted: 250},
		}, nil
	case 102:
		// Entire career pre-dates shot tracking.
		return []stats.SeasonAggregate{
			{SeasonID: "1990-91", SeasonStartYear: 1990, TeamID: 1610612747, TeamAbbreviation: "LAL", GamesPlayed: 82, Points: 1650, Assists: 520, Rebounds: 310, FieldGoalsMade: 620, FieldGoalsAttempted: 1300, ThreeMade: 40, ThreeAttempted: 130},
		}, nil
	default:
		return nil, &providers.NotFoundError{Resource: "player", Key: "fixture"}
	}
}

// FetchShots returns deterministic shots for tracked seasons and an empty
// list for pre-tracking ones.
func (p *Provider) FetchShots(ctx context.Context, playerID, teamID int, s season.Season) ([]shots.Record, error) {
	_ = ctx
	_ = teamID
	if playerID != 101 || !s.Tracked() {
		return []shots.Record{}, nil
	}
	return []shots.Record{
		{X: 0, Y: 10, Made: true, Type: shots.TwoPoint, Period: 1},
		{X: -120, Y: 80, Made: false, Type: shots.TwoPoint, Period: 1},
		{X: 235, Y: 40, Made: true, Type: shots.ThreePoint, Period: 2},
		{X: -5, Y: 260, Made: false, Type: shots.ThreePoint, Period: 3},
		{X: 60, Y: 140, Made: true, Type: shots.TwoPoint, Period: 4},
	}, nil
}
