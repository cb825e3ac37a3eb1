package nbastats

import "time"

const (
	providerName = "nbastats"

	defaultBaseURL = "https://stats.nba.com/stats"
	// The API rejects requests that do not look like they come from nba.com.
	defaultReferer     = "https://www.nba.com/"
	defaultUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	defaultHTTPTimeout = 15 * time.Second

	leagueID          = "00"
	defaultSeasonType = "Regular Season"

	endpointAllPlayers  = "commonallplayers"
	endpointCareerStats = "playercareerstats"
	endpointShotChart   = "shotchartdetail"

	setCareerTotals = "SeasonTotalsRegularSeason"
	setShotDetail   = "Shot_Chart_Detail"
)
