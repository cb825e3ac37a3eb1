package config

import "time"

const (
	envConfigFile = "SHOTCHART_CONFIG"
	envProvider   = "SHOTCHART_PROVIDER"
	envOutput     = "SHOTCHART_OUTPUT"
	envSeasonType = "SHOTCHART_SEASON_TYPE"
	envLogLevel   = "LOG_LEVEL"
	envLogFormat  = "LOG_FORMAT"

	defaultProvider   = "nbastats"
	defaultOutput     = "shotchart.svg"
	defaultSeasonType = "Regular Season"
	defaultLogLevel   = "info"
	defaultLogFormat  = "text"

	envStatsBaseURL   = "NBA_STATS_BASE_URL"
	envStatsUserAgent = "NBA_STATS_USER_AGENT"
	envStatsReferer   = "NBA_STATS_REFERER"
	envStatsTimeout   = "NBA_STATS_TIMEOUT"
	envStatsRetries   = "NBA_STATS_RETRY_ATTEMPTS"

	defaultStatsBaseURL = "https://stats.nba.com/stats"
	// stats.nba.com rejects requests without browser-looking headers.
	defaultStatsUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	defaultStatsReferer   = "https://www.nba.com/"
	defaultStatsTimeout   = 15 * time.Second
	defaultStatsRetries   = 3
)
