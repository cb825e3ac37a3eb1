package stats

import "testing"

func TestDeriveComputesPerGameAverages(t *testing.T) {
	agg := SeasonAggregate{
		SeasonID:            "2005-06",
		GamesPlayed:         80,
		Points:              2000,
		Assists:             400,
		Rebounds:            560,
		FieldGoalsMade:      700,
		FieldGoalsAttempted: 1400,
		ThreeMade:           100,
		ThreeAttempted:      250,
	}

	derived := Derive(agg, 3)

	if derived.PPG != 25.0 {
		t.Fatalf("ppg = %v, want 25.0", derived.PPG)
	}
	if derived.APG != 5.0 {
		t.Fatalf("apg = %v, want 5.0", derived.APG)
	}
	if derived.RPG != 7.0 {
		t.Fatalf("rpg = %v, want 7.0", derived.RPG)
	}
	if derived.FGPct != 50.0 {
		t.Fatalf("fg%% = %v, want 50.0", derived.FGPct)
	}
	if derived.ThreePct != 40.0 {
		t.Fatalf("3pt%% = %v, want 40.0", derived.ThreePct)
	}
	if derived.YearsInLeague != 3 {
		t.Fatalf("years = %d, want 3", derived.YearsInLeague)
	}
}

func TestDeriveGuardsZeroDenominators(t *testing.T) {
	derived := Derive(SeasonAggregate{}, 0)
	if derived.PPG != 0 || derived.APG != 0 || derived.RPG != 0 {
		t.Fatalf("per-game stats should be zero with zero games: %+v", derived)
	}
	if derived.FGPct != 0 || derived.ThreePct != 0 {
		t.Fatalf("percentages should be zero with zero attempts: %+v", derived)
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	agg := SeasonAggregate{GamesPlayed: 73, Points: 1837, Assists: 312, Rebounds: 501, FieldGoalsMade: 661, FieldGoalsAttempted: 1433, ThreeMade: 87, ThreeAttempted: 254}
	first := Derive(agg, 7)
	second := Derive(agg, 7)
	if first != second {
		t.Fatalf("repeated derivation differs: %+v vs %+v", first, second)
	}
}

func TestMergeSumsTradeRows(t *testing.T) {
	rows := []SeasonAggregate{
		{SeasonID: "2010-11", TeamID: 1, TeamAbbreviation: "AAA", GamesPlayed: 40, Points: 800, FieldGoalsMade: 300, FieldGoalsAttempted: 700},
		{SeasonID: "2010-11", TeamID: 2, TeamAbbreviation: "BBB", GamesPlayed: 30, Points: 450, FieldGoalsMade: 160, FieldGoalsAttempted: 400},
	}
	merged := Merge(rows)
	if merged.GamesPlayed != 70 || merged.Points != 1250 {
		t.Fatalf("unexpected merge totals: %+v", merged)
	}
	if merged.FieldGoalsMade != 460 || merged.FieldGoalsAttempted != 1100 {
		t.Fatalf("unexpected shooting totals: %+v", merged)
	}
	if merged.SeasonID != "2010-11" {
		t.Fatalf("season id lost in merge: %+v", merged)
	}
	if merged.TeamID != 0 || merged.TeamAbbreviation != "" {
		t.Fatalf("merged row should not claim a single team: %+v", merged)
	}
}

func TestMergeEmpty(t *testing.T) {
	if merged := Merge(nil); merged != (SeasonAggregate{}) {
		t.Fatalf("merge of no rows should be zero value, got %+v", merged)
	}
}

func TestDistinctSeasons(t *testing.T) {
	rows := []SeasonAggregate{
		{SeasonID: "2009-10"},
		{SeasonID: "2010-11"},
		{SeasonID: "2010-11"}, // traded mid-season
		{SeasonID: "2011-12"},
	}
	if got := DistinctSeasons(rows); got != 3 {
		t.Fatalf("distinct seasons = %d, want 3", got)
	}
	if got := DistinctSeasons(nil); got != 0 {
		t.Fatalf("distinct seasons of none = %d, want 0", got)
	}
}
