package stats

// Merge sums several aggregate rows into one. Used to fold the per-team rows
// of a traded player's season before derivation.
func Merge(rows []SeasonAggregate) SeasonAggregate {
	if len(rows) == 0 {
		return SeasonAggregate{}
	}
	merged := rows[0]
	for _, row := range rows[1:] {
		merged.GamesPlayed += row.GamesPlayed
		merged.Points += row.Points
		merged.Assists += row.Assists
		merged.Rebounds += row.Rebounds
		merged.FieldGoalsMade += row.FieldGoalsMade
		merged.FieldGoalsAttempted += row.FieldGoalsAttempted
		merged.ThreeMade += row.ThreeMade
		merged.ThreeAttempted += row.ThreeAttempted
	}
	merged.TeamID = 0
	merged.TeamAbbreviation = ""
	return merged
}

// DistinctSeasons counts the distinct season ids across career rows.
// This is the "years in league" definition used throughout.
func DistinctSeasons(rows []SeasonAggregate) int {
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		seen[row.SeasonID] = struct{}{}
	}
	return len(seen)
}

// Derive computes per-game and shooting stats from one (possibly merged)
// season aggregate. Zero games or zero attempts yield zero, not a panic.
func Derive(agg SeasonAggregate, yearsInLeague int) DerivedStats {
	derived := DerivedStats{YearsInLeague: yearsInLeague}
	if agg.GamesPlayed > 0 {
		gp := float64(agg.GamesPlayed)
		derived.PPG = agg.Points / gp
		derived.APG = agg.Assists / gp
		derived.RPG = agg.Rebounds / gp
	}
	derived.FGPct = percentage(agg.FieldGoalsMade, agg.FieldGoalsAttempted)
	derived.ThreePct = percentage(agg.ThreeMade, agg.ThreeAttempted)
	return derived
}

func percentage(made, attempted int) float64 {
	if attempted <= 0 {
		return 0
	}
	return float64(made) / float64(attempted) * 100
}
