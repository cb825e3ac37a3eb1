package report

import (
	"context"
	"errors"
	"testing"

	"nba-shotchart/internal/domain/players"
	"nba-shotchart/internal/domain/shots"
	"nba-shotchart/internal/domain/stats"
	"nba-shotchart/internal/providers"
	"nba-shotchart/internal/teststubs"
)

var testPlayer = players.Candidate{ID: 101, FullName: "Jane Doe"}

func careerRows() []stats.SeasonAggregate {
	return []stats.SeasonAggregate{
		{SeasonID: "2004-05", SeasonStartYear: 2004, TeamID: 1610612738, TeamAbbreviation: "BOS", GamesPlayed: 78, Points: 1432},
		{SeasonID: "2005-06", SeasonStartYear: 2005, TeamID: 1610612738, TeamAbbreviation: "BOS", GamesPlayed: 80, Points: 2000, Assists: 400, Rebounds: 560, FieldGoalsMade: 700, FieldGoalsAttempted: 1400, ThreeMade: 100, ThreeAttempted: 250},
	}
}

func TestBuildProducesReport(t *testing.T) {
	stub := &teststubs.StubProvider{
		Shots: []shots.Record{{X: 10, Y: 20, Made: true, Type: shots.TwoPoint, Period: 1}},
	}
	svc := NewService(stub)

	rpt, err := svc.Build(context.Background(), testPlayer, careerRows(), "2005-06")
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if rpt.Derived.PPG != 25.0 {
		t.Fatalf("ppg = %v, want 25.0", rpt.Derived.PPG)
	}
	if rpt.Derived.YearsInLeague != 2 {
		t.Fatalf("years = %d, want 2", rpt.Derived.YearsInLeague)
	}
	if rpt.TeamName != "Boston Celtics" {
		t.Fatalf("team = %q", rpt.TeamName)
	}
	if len(rpt.Shots) != 1 {
		t.Fatalf("expected shots forwarded, got %d", len(rpt.Shots))
	}
	if stub.LastPlayerID != 101 || stub.LastTeamID != 1610612738 {
		t.Fatalf("shot fetch keyed wrong: player=%d team=%d", stub.LastPlayerID, stub.LastTeamID)
	}
	if stub.LastSeason.String() != "2005-06" {
		t.Fatalf("shot fetch season = %s", stub.LastSeason)
	}
}

func TestBuildMergesTradeSeason(t *testing.T) {
	rows := []stats.SeasonAggregate{
		{SeasonID: "2010-11", TeamID: 1610612738, TeamAbbreviation: "BOS", GamesPlayed: 40, Points: 800},
		{SeasonID: "2010-11", TeamID: 1610612747, TeamAbbreviation: "LAL", GamesPlayed: 30, Points: 450},
	}
	svc := NewService(&teststubs.StubProvider{})

	rpt, err := svc.Build(context.Background(), testPlayer, rows, "2010-11")
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if rpt.Aggregate.GamesPlayed != 70 || rpt.Aggregate.Points != 1250 {
		t.Fatalf("trade rows not merged: %+v", rpt.Aggregate)
	}
	if rpt.TeamName != "Boston Celtics / Los Angeles Lakers" {
		t.Fatalf("team label = %q", rpt.TeamName)
	}
}

func TestBuildPreTrackingSeasonHasEmptyShots(t *testing.T) {
	rows := []stats.SeasonAggregate{
		{SeasonID: "1990-91", SeasonStartYear: 1990, TeamID: 1610612747, TeamAbbreviation: "LAL", GamesPlayed: 82, Points: 1650},
	}
	svc := NewService(&teststubs.StubProvider{Shots: []shots.Record{}})

	rpt, err := svc.Build(context.Background(), testPlayer, rows, "1990-91")
	if err != nil {
		t.Fatalf("pre-tracking season should build: %v", err)
	}
	if len(rpt.Shots) != 0 {
		t.Fatalf("expected no shots, got %d", len(rpt.Shots))
	}
	if rpt.Aggregate.GamesPlayed != 82 {
		t.Fatalf("stats should still derive: %+v", rpt.Aggregate)
	}
}

func TestBuildRejectsMalformedSeasonBeforeFetching(t *testing.T) {
	stub := &teststubs.StubProvider{}
	svc := NewService(stub)

	_, err := svc.Build(context.Background(), testPlayer, careerRows(), "2005-7")
	if _, ok := providers.AsValidation(err); !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if stub.ShotCalls.Load() != 0 {
		t.Fatal("no network call should happen for malformed season")
	}
}

func TestBuildSeasonNotPlayedIsNotFound(t *testing.T) {
	svc := NewService(&teststubs.StubProvider{})

	_, err := svc.Build(context.Background(), testPlayer, careerRows(), "1999-00")
	if _, ok := providers.AsNotFound(err); !ok {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestBuildPropagatesShotFetchFailure(t *testing.T) {
	svc := NewService(&teststubs.StubProvider{ShotsErr: errors.New("upstream down")})

	if _, err := svc.Build(context.Background(), testPlayer, careerRows(), "2005-06"); err == nil {
		t.Fatal("expected shot fetch error")
	}
}

func TestSeasonsPlayedNewestFirstDistinct(t *testing.T) {
	rows := []stats.SeasonAggregate{
		{SeasonID: "2004-05"},
		{SeasonID: "2010-11"},
		{SeasonID: "2010-11"},
		{SeasonID: "2005-06"},
	}
	got := SeasonsPlayed(rows)
	want := []string{"2010-11", "2005-06", "2004-05"}
	if len(got) != len(want) {
		t.Fatalf("seasons = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("seasons = %v, want %v", got, want)
		}
	}
}
