// Package nbastats fetches player, career and shot data from stats.nba.com
// and maps the tabular responses to domain models.
package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nba-shotchart/internal/domain/players"
	"nba-shotchart/internal/domain/shots"
	"nba-shotchart/internal/domain/stats"
	"nba-shotchart/internal/metrics"
	"nba-shotchart/internal/providers"
	"nba-shotchart/internal/season"
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	UserAgent  string
	Referer    string
	SeasonType string
	HTTPClient *http.Client
	Recorder   *metrics.Recorder
}

// Client issues stats.nba.com requests and maps responses to domain models.
type Client struct {
	baseURL    string
	userAgent  string
	referer    string
	seasonType string
	httpClient httpDoer
	recorder   *metrics.Recorder
	now        func() time.Time
}

// NewClient constructs a stats.nba.com client with the provided configuration.
func NewClient(cfg Config) *Client {
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	referer := cfg.Referer
	if referer == "" {
		referer = defaultReferer
	}
	seasonType := cfg.SeasonType
	if seasonType == "" {
		seasonType = defaultSeasonType
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  ua,
		referer:    referer,
		seasonType: seasonType,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		recorder:   cfg.Recorder,
		now:        time.Now,
	}
}

// FetchPlayers retrieves the historical player directory.
func (c *Client) FetchPlayers(ctx context.Context) ([]players.Candidate, error) {
	params := url.Values{}
	params.Set("LeagueID", leagueID)
	params.Set("Season", c.currentSeason().String())
	params.Set("IsOnlyCurrentSeason", "0")

	env, err := c.get(ctx, endpointAllPlayers, params)
	if err != nil {
		return nil, err
	}
	return mapCandidates(env)
}

// FetchCareerStats retrieves per-season regular season totals for a player.
func (c *Client) FetchCareerStats(ctx context.Context, playerID int) ([]stats.SeasonAggregate, error) {
	params := url.Values{}
	params.Set("LeagueID", leagueID)
	params.Set("PlayerID", strconv.Itoa(playerID))
	params.Set("PerMode", "Totals")

	env, err := c.get(ctx, endpointCareerStats, params)
	if err != nil {
		return nil, err
	}
	return mapAggregates(env)
}

// FetchShots retrieves shot-by-shot records for one player season. An empty
// row set is a valid response: tracking starts with the 1996-97 season.
func (c *Client) FetchShots(ctx context.Context, playerID, teamID int, s season.Season) ([]shots.Record, error) {
	params := url.Values{}
	params.Set("LeagueID", leagueID)
	params.Set("PlayerID", strconv.Itoa(playerID))
	params.Set("TeamID", strconv.Itoa(teamID))
	params.Set("Season", s.String())
	params.Set("SeasonType", c.seasonType)
	params.Set("ContextMeasure", "FGA")

	env, err := c.get(ctx, endpointShotChart, params)
	if err != nil {
		return nil, err
	}
	return mapShots(env)
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*envelope, error) {
	start := c.now()
	env, err := c.doGet(ctx, endpoint, params)
	if c.recorder != nil {
		c.recorder.RecordCall(endpoint, time.Since(start), err)
	}
	return env, err
}

func (c *Client) doGet(ctx context.Context, endpoint string, params url.Values) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = params.Encode()
	c.decorate(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.UpstreamError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var env envelope
	if decodeErr := json.NewDecoder(resp.Body).Decode(&env); decodeErr != nil {
		return nil, fmt.Errorf("%s: decode %s response: %w", providerName, endpoint, decodeErr)
	}
	return &env, nil
}

// currentSeason derives the directory query season from the clock: a new
// season starts in October.
func (c *Client) currentSeason() season.Season {
	now := c.now()
	start := now.Year()
	if now.Month() < time.October {
		start--
	}
	return season.Season{StartYear: start}
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
