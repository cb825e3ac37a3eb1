package config

import "time"

// NBAStatsConfig controls how we talk to the stats.nba.com API.
type NBAStatsConfig struct {
	BaseURL       string
	UserAgent     string
	Referer       string
	Timeout       time.Duration
	RetryAttempts int
}

func loadNBAStats(file *fileNBAStats) NBAStatsConfig {
	cfg := NBAStatsConfig{
		BaseURL:       defaultStatsBaseURL,
		UserAgent:     defaultStatsUserAgent,
		Referer:       defaultStatsReferer,
		Timeout:       defaultStatsTimeout,
		RetryAttempts: defaultStatsRetries,
	}
	if file != nil {
		if file.BaseURL != nil {
			cfg.BaseURL = *file.BaseURL
		}
		if file.UserAgent != nil {
			cfg.UserAgent = *file.UserAgent
		}
		if file.Referer != nil {
			cfg.Referer = *file.Referer
		}
		if file.Timeout != nil {
			if parsed, err := time.ParseDuration(*file.Timeout); err == nil && parsed > 0 {
				cfg.Timeout = parsed
			}
		}
		if file.RetryAttempts != nil && *file.RetryAttempts > 0 {
			cfg.RetryAttempts = *file.RetryAttempts
		}
	}
	cfg.BaseURL = envOrDefault(envStatsBaseURL, cfg.BaseURL)
	cfg.UserAgent = envOrDefault(envStatsUserAgent, cfg.UserAgent)
	cfg.Referer = envOrDefault(envStatsReferer, cfg.Referer)
	cfg.Timeout = durationEnvOrDefault(envStatsTimeout, cfg.Timeout)
	cfg.RetryAttempts = intEnvOrDefault(envStatsRetries, cfg.RetryAttempts)
	return cfg
}
