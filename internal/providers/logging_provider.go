package providers

import (
	"context"
	"log/slog"
	"time"

	"nba-shotchart/internal/domain/players"
	"nba-shotchart/internal/domain/shots"
	"nba-shotchart/internal/domain/stats"
	"nba-shotchart/internal/logging"
	"nba-shotchart/internal/season"
)

// loggingProvider wraps a DataProvider and logs each fetch with its outcome.
type loggingProvider struct {
	inner  DataProvider
	logger *slog.Logger
	name   string
}

// NewLoggingProvider decorates a provider with per-call debug logging.
func NewLoggingProvider(inner DataProvider, logger *slog.Logger, name string) DataProvider {
	return &loggingProvider{inner: inner, logger: logger, name: name}
}

func (p *loggingProvider) FetchPlayers(ctx context.Context) ([]players.Candidate, error) {
	start := time.Now()
	result, err := p.inner.FetchPlayers(ctx)
	p.log("fetch players", start, len(result), err)
	return result, err
}

func (p *loggingProvider) FetchCareerStats(ctx context.Context, playerID int) ([]stats.SeasonAggregate, error) {
	start := time.Now()
	result, err := p.inner.FetchCareerStats(ctx, playerID)
	p.log("fetch career stats", start, len(result), err, logging.FieldPlayerID, playerID)
	return result, err
}

func (p *loggingProvider) FetchShots(ctx context.Context, playerID, teamID int, s season.Season) ([]shots.Record, error) {
	start := time.Now()
	result, err := p.inner.FetchShots(ctx, playerID, teamID, s)
	p.log("fetch shots", start, len(result), err, logging.FieldPlayerID, playerID, logging.FieldSeason, s.String())
	return result, err
}

func (p *loggingProvider) log(msg string, start time.Time, count int, err error, args ...any) {
	if p.logger == nil {
		return
	}
	args = append(args,
		slog.String(logging.FieldProvider, p.name),
		slog.Int(logging.FieldCount, count),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	if err != nil {
		args = append(args, "error", err)
		p.logger.Warn(msg+" failed", args...)
		return
	}
	p.logger.Debug(msg, args...)
}
