package cli

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"nba-shotchart/internal/config"
	"nba-shotchart/internal/metrics"
	"nba-shotchart/internal/providers"
	"nba-shotchart/internal/providers/fixture"
	"nba-shotchart/internal/providers/nbastats"
)

const retryInitialInterval = 500 * time.Millisecond

// BuildProvider assembles the configured data provider wrapped with the
// logging and retry decorators.
func BuildProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (providers.DataProvider, error) {
	name := cfg.Provider
	if name == "" {
		name = "nbastats"
	}

	var base providers.DataProvider
	switch name {
	case "nbastats":
		base = nbastats.NewClient(nbastats.Config{
			BaseURL:    cfg.NBAStats.BaseURL,
			UserAgent:  cfg.NBAStats.UserAgent,
			Referer:    cfg.NBAStats.Referer,
			SeasonType: cfg.SeasonType,
			HTTPClient: &http.Client{Timeout: cfg.NBAStats.Timeout},
			Recorder:   recorder,
		})
	case "fixture":
		base = fixture.New()
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", providers.ErrProviderUnavailable, cfg.Provider)
	}

	wrapped := providers.NewLoggingProvider(base, logger, name)
	return providers.NewRetryingProvider(wrapped, logger, cfg.NBAStats.RetryAttempts, retryInitialInterval), nil
}
