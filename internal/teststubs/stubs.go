// Package teststubs provides shared provider doubles for tests.
package teststubs

import (
	"context"
	"sync/atomic"

	"nba-shotchart/internal/domain/players"
	"nba-shotchart/internal/domain/shots"
	"nba-shotchart/internal/domain/stats"
	"nba-shotchart/internal/season"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Players    []players.Candidate
	PlayersErr error

	Career    []stats.SeasonAggregate
	CareerErr error

	Shots    []shots.Record
	ShotsErr error

	PlayerCalls atomic.Int32
	CareerCalls atomic.Int32
	ShotCalls   atomic.Int32

	LastPlayerID int
	LastTeamID   int
	LastSeason   season.Season
}

// FetchPlayers returns the configured directory while tracking calls.
func (s *StubProvider) FetchPlayers(ctx context.Context) ([]players.Candidate, error) {
	_ = ctx
	s.PlayerCalls.Add(1)
	return s.Players, s.PlayersErr
}

// FetchCareerStats returns the configured rows while tracking calls.
func (s *StubProvider) FetchCareerStats(ctx context.Context, playerID int) ([]stats.SeasonAggregate, error) {
	_ = ctx
	s.CareerCalls.Add(1)
	s.LastPlayerID = playerID
	return s.Career, s.CareerErr
}

// FetchShots returns the configured shots while tracking calls.
func (s *StubProvider) FetchShots(ctx context.Context, playerID, teamID int, ssn season.Season) ([]shots.Record, error) {
	_ = ctx
	s.ShotCalls.Add(1)
	s.LastPlayerID = playerID
	s.LastTeamID = teamID
	s.LastSeason = ssn
	return s.Shots, s.ShotsErr
}

// FlakyProvider fails a fixed number of times before delegating.
type FlakyProvider struct {
	StubProvider
	FailuresLeft int
	FailErr      error
}

// FetchCareerStats fails FailuresLeft times, then succeeds.
func (f *FlakyProvider) FetchCareerStats(ctx context.Context, playerID int) ([]stats.SeasonAggregate, error) {
	if f.FailuresLeft > 0 {
		f.FailuresLeft--
		f.CareerCalls.Add(1)
		return nil, f.FailErr
	}
	return f.StubProvider.FetchCareerStats(ctx, playerID)
}
