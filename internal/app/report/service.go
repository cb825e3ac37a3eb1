// Package report builds the per-season report for a resolved player. The
// interactive prompt loop lives elsewhere; this is the pure request/response
// core.
package report

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"nba-shotchart/internal/domain/players"
	"nba-shotchart/internal/domain/shots"
	"nba-shotchart/internal/domain/stats"
	"nba-shotchart/internal/domain/teams"
	"nba-shotchart/internal/providers"
	"nba-shotchart/internal/season"
)

// Provider is the slice of upstream capability this service needs.
type Provider interface {
	providers.CareerStatsProvider
	providers.ShotProvider
}

// Report is everything one run produces before rendering.
type Report struct {
	Player    players.Candidate
	Season    season.Season
	TeamName  string
	Aggregate stats.SeasonAggregate
	Derived   stats.DerivedStats
	Shots     []shots.Record
}

// Service builds reports using an injected provider.
type Service struct {
	provider Provider
}

// NewService constructs a Service with the provided upstream.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// Career fetches a player's per-season aggregate rows.
func (s *Service) Career(ctx context.Context, playerID int) ([]stats.SeasonAggregate, error) {
	return s.provider.FetchCareerStats(ctx, playerID)
}

// SeasonsPlayed lists the distinct seasons present in career rows, newest
// first. Useful for prompting before the season is chosen.
func SeasonsPlayed(rows []stats.SeasonAggregate) []string {
	seen := make(map[string]struct{}, len(rows))
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.SeasonID]; ok {
			continue
		}
		seen[row.SeasonID] = struct{}{}
		out = append(out, row.SeasonID)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}

// Build assembles the report for one player season from already-fetched
// career rows. Seasons the player did not play are a NotFoundError; a season
// without shot tracking yields an empty shot list and a complete report.
func (s *Service) Build(ctx context.Context, player players.Candidate, rows []stats.SeasonAggregate, seasonValue string) (Report, error) {
	parsed, err := season.Parse(seasonValue)
	if err != nil {
		return Report{}, &providers.ValidationError{Field: "season", Message: err.Error()}
	}

	seasonRows := rowsForSeason(rows, parsed)
	if len(seasonRows) == 0 {
		return Report{}, &providers.NotFoundError{
			Resource: "season data",
			Key:      fmt.Sprintf("%s in %s", player.FullName, parsed),
		}
	}

	merged := stats.Merge(seasonRows)
	derived := stats.Derive(merged, stats.DistinctSeasons(rows))

	records, err := s.provider.FetchShots(ctx, player.ID, seasonRows[0].TeamID, parsed)
	if err != nil {
		return Report{}, fmt.Errorf("fetch shots: %w", err)
	}

	return Report{
		Player:    player,
		Season:    parsed,
		TeamName:  teamLabel(seasonRows),
		Aggregate: merged,
		Derived:   derived,
		Shots:     records,
	}, nil
}

func rowsForSeason(rows []stats.SeasonAggregate, s season.Season) []stats.SeasonAggregate {
	var out []stats.SeasonAggregate
	for _, row := range rows {
		if row.SeasonID == s.String() {
			out = append(out, row)
		}
	}
	return out
}

// teamLabel names the season's team, or all of them for a traded player.
func teamLabel(seasonRows []stats.SeasonAggregate) string {
	names := make([]string, 0, len(seasonRows))
	for _, row := range seasonRows {
		names = append(names, teams.FullName(row.TeamID, row.TeamAbbreviation))
	}
	return strings.Join(names, " / ")
}
