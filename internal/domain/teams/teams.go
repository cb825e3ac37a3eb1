// Package teams maps upstream franchise ids to team names. The directory is
// fixed (30 franchises), so it is a static table rather than a network call.
package teams

// Team is one franchise directory entry.
type Team struct {
	ID           int    `json:"id"`
	FullName     string `json:"fullName"`
	Abbreviation string `json:"abbreviation"`
}

var directory = []Team{
	{1610612737, "Atlanta Hawks", "ATL"},
	{1610612738, "Boston Celtics", "BOS"},
	{1610612739, "Cleveland Cavaliers", "CLE"},
	{1610612740, "New Orleans Pelicans", "NOP"},
	{1610612741, "Chicago Bulls", "CHI"},
	{1610612742, "Dallas Mavericks", "DAL"},
	{1610612743, "Denver Nuggets", "DEN"},
	{1610612744, "Golden State Warriors", "GSW"},
	{1610612745, "Houston Rockets", "HOU"},
	{1610612746, "LA Clippers", "LAC"},
	{1610612747, "Los Angeles Lakers", "LAL"},
	{1610612748, "Miami Heat", "MIA"},
	{1610612749, "Milwaukee Bucks", "MIL"},
	{1610612750, "Minnesota Timberwolves", "MIN"},
	{1610612751, "Brooklyn Nets", "BKN"},
	{1610612752, "New York Knicks", "NYK"},
	{1610612753, "Orlando Magic", "ORL"},
	{1610612754, "Indiana Pacers", "IND"},
	{1610612755, "Philadelphia 76ers", "PHI"},
	{1610612756, "Phoenix Suns", "PHX"},
	{1610612757, "Portland Trail Blazers", "POR"},
	{1610612758, "Sacramento Kings", "SAC"},
	{1610612759, "San Antonio Spurs", "SAS"},
	{1610612760, "Oklahoma City Thunder", "OKC"},
	{1610612761, "Toronto Raptors", "TOR"},
	{1610612762, "Utah Jazz", "UTA"},
	{1610612763, "Memphis Grizzlies", "MEM"},
	{1610612764, "Washington Wizards", "WAS"},
	{1610612765, "Detroit Pistons", "DET"},
	{1610612766, "Charlotte Hornets", "CHA"},
}

var byID = func() map[int]Team {
	m := make(map[int]Team, len(directory))
	for _, t := range directory {
		m[t.ID] = t
	}
	return m
}()

// ByID returns the franchise with the given upstream id.
func ByID(id int) (Team, bool) {
	t, ok := byID[id]
	return t, ok
}

// FullName returns the franchise full name, or a fallback built from the
// abbreviation when the id is unknown (historical/relocated team ids).
func FullName(id int, abbreviation string) string {
	if t, ok := byID[id]; ok {
		return t.FullName
	}
	if abbreviation != "" {
		return abbreviation
	}
	return "Unknown Team"
}

// All returns the franchise directory in a stable order.
func All() []Team {
	out := make([]Team, len(directory))
	copy(out, directory)
	return out
}
