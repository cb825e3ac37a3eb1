// Package providers defines how upstream basketball data is fetched and
// normalized, plus decorators layered around concrete clients.
package providers

import (
	"context"

	"nba-shotchart/internal/domain/players"
	"nba-shotchart/internal/domain/shots"
	"nba-shotchart/internal/domain/stats"
	"nba-shotchart/internal/season"
)

// PlayerDirectoryProvider fetches the full player directory.
type PlayerDirectoryProvider interface {
	FetchPlayers(ctx context.Context) ([]players.Candidate, error)
}

// CareerStatsProvider fetches a player's per-season aggregate rows.
type CareerStatsProvider interface {
	FetchCareerStats(ctx context.Context, playerID int) ([]stats.SeasonAggregate, error)
}

// ShotProvider fetches a player's shot records for one season. An empty slice
// is a valid result: shot tracking does not exist before 1996-97.
type ShotProvider interface {
	FetchShots(ctx context.Context, playerID, teamID int, s season.Season) ([]shots.Record, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	PlayerDirectoryProvider
	CareerStatsProvider
	ShotProvider
}
