package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"nba-shotchart/internal/domain/players"
	"nba-shotchart/internal/domain/shots"
	"nba-shotchart/internal/domain/stats"
	"nba-shotchart/internal/season"
)

const (
	defaultRetryAttempts   = 3
	defaultInitialInterval = 200 * time.Millisecond
)

// retryingProvider wraps a DataProvider with exponential backoff on
// transient failures. Not-found and validation failures pass through.
type retryingProvider struct {
	inner       DataProvider
	logger      *slog.Logger
	maxAttempts int
	interval    time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts
// or initialInterval are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, maxAttempts int, initialInterval time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initialInterval <= 0 {
		initialInterval = defaultInitialInterval
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		interval:    initialInterval,
	}
}

func (r *retryingProvider) FetchPlayers(ctx context.Context) ([]players.Candidate, error) {
	return retry(ctx, r, "players", func() ([]players.Candidate, error) {
		return r.inner.FetchPlayers(ctx)
	})
}

func (r *retryingProvider) FetchCareerStats(ctx context.Context, playerID int) ([]stats.SeasonAggregate, error) {
	return retry(ctx, r, "career stats", func() ([]stats.SeasonAggregate, error) {
		return r.inner.FetchCareerStats(ctx, playerID)
	})
}

func (r *retryingProvider) FetchShots(ctx context.Context, playerID, teamID int, s season.Season) ([]shots.Record, error) {
	return retry(ctx, r, "shots", func() ([]shots.Record, error) {
		return r.inner.FetchShots(ctx, playerID, teamID, s)
	})
}

func retry[T any](ctx context.Context, r *retryingProvider, what string, op func() (T, error)) (T, error) {
	attempt := 0
	policy := backoff.WithContext(newPolicy(r.interval, r.maxAttempts), ctx)

	return backoff.RetryWithData(func() (T, error) {
		attempt++
		result, err := op()
		if err == nil {
			return result, nil
		}
		if !IsRetryable(err) {
			return result, backoff.Permanent(err)
		}
		if attempt < r.maxAttempts {
			logWarn(r.logger, "provider fetch retry", "what", what, "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)
		}
		return result, err
	}, policy)
}

func newPolicy(initial time.Duration, maxAttempts int) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = initial
	// maxAttempts counts calls, so retries = attempts - 1
	return backoff.WithMaxRetries(exp, uint64(maxAttempts-1))
}

func logWarn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
