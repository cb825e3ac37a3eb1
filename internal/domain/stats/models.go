// Package stats holds season aggregate rows and the derived per-season stats.
package stats

// SeasonAggregate is one season/team summary row. A player traded mid-season
// has one row per team for that season.
type SeasonAggregate struct {
	SeasonID            string  `json:"seasonId"`
	SeasonStartYear     int     `json:"seasonStartYear"`
	TeamID              int     `json:"teamId"`
	TeamAbbreviation    string  `json:"teamAbbreviation"`
	GamesPlayed         int     `json:"gamesPlayed"`
	Points              float64 `json:"points"`
	Assists             float64 `json:"assists"`
	Rebounds            float64 `json:"rebounds"`
	FieldGoalsMade      int     `json:"fieldGoalsMade"`
	FieldGoalsAttempted int     `json:"fieldGoalsAttempted"`
	ThreeMade           int     `json:"threeMade"`
	ThreeAttempted      int     `json:"threeAttempted"`
}

// DerivedStats are computed from aggregate rows on every run, never stored.
// Percentages are expressed 0-100.
type DerivedStats struct {
	YearsInLeague int     `json:"yearsInLeague"`
	PPG           float64 `json:"ppg"`
	APG           float64 `json:"apg"`
	RPG           float64 `json:"rpg"`
	FGPct         float64 `json:"fgPct"`
	ThreePct      float64 `json:"threePct"`
}
