package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nba-shotchart/internal/config"
	"nba-shotchart/internal/metrics"
	"nba-shotchart/internal/providers"
	"nba-shotchart/internal/providers/fixture"
)

func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer, string) {
	t.Helper()
	out := &bytes.Buffer{}
	chartPath := filepath.Join(t.TempDir(), "chart.svg")
	app := &App{
		Config:   config.Config{Output: chartPath},
		Recorder: metrics.NewRecorder(),
		Provider: fixture.New(),
		In:       strings.NewReader(input),
		Out:      out,
	}
	return app, out, chartPath
}

func TestRunWithFlagsWritesChart(t *testing.T) {
	app, out, chartPath := newTestApp(t, "")
	app.PlayerName = "Jane Doe"
	app.Season = "2005-06"

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Selected player: Jane Doe") {
		t.Fatalf("missing selection line:\n%s", output)
	}
	if !strings.Contains(output, "2005-06") || !strings.Contains(output, "2004-05") {
		t.Fatalf("missing seasons list:\n%s", output)
	}
	if !strings.Contains(output, "25.0") {
		t.Fatalf("missing ppg in stat block:\n%s", output)
	}
	if !strings.Contains(output, "Shot chart written to "+chartPath) {
		t.Fatalf("missing chart confirmation:\n%s", output)
	}

	data, err := os.ReadFile(chartPath)
	if err != nil {
		t.Fatalf("chart not written: %v", err)
	}
	svg := string(data)
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "Jane Doe's Shot Chart : 2005-06 Season") {
		t.Fatalf("unexpected chart contents:\n%.200s", svg)
	}
}

func TestRunPromptsAndDisambiguates(t *testing.T) {
	// "J" matches both fixture players; pick the second after a bad index.
	app, out, chartPath := newTestApp(t, "J\n5\n2\n1990-91\n")

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Multiple players found") {
		t.Fatalf("expected disambiguation menu:\n%s", output)
	}
	if !strings.Contains(output, "Selected player: John Smith") {
		t.Fatalf("wrong selection:\n%s", output)
	}
	if !strings.Contains(output, "No shot data for this season") {
		t.Fatalf("expected empty chart note:\n%s", output)
	}
	if _, err := os.Stat(chartPath); err != nil {
		t.Fatalf("chart not written: %v", err)
	}
}

func TestRunUnknownPlayerIsNotFound(t *testing.T) {
	app, _, _ := newTestApp(t, "")
	app.PlayerName = "Nobody Real"
	app.Season = "2005-06"

	err := app.Run(context.Background())
	if _, ok := providers.AsNotFound(err); !ok {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestRunSeasonNotPlayed(t *testing.T) {
	app, _, _ := newTestApp(t, "")
	app.PlayerName = "Jane Doe"
	app.Season = "2015-16"

	err := app.Run(context.Background())
	if _, ok := providers.AsNotFound(err); !ok {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestBuildProviderRejectsUnknownName(t *testing.T) {
	_, err := BuildProvider(config.Config{Provider: "bogus"}, nil, nil)
	if !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestDescribeFailureMapsProviderErrors(t *testing.T) {
	err := describeFailure(&providers.NotFoundError{Resource: "player", Key: "zzz"})
	if err == nil || !strings.Contains(err.Error(), `no player found for "zzz"`) {
		t.Fatalf("not-found message = %v", err)
	}

	err = describeFailure(&providers.ValidationError{Field: "season", Message: "bad format"})
	if err == nil || !strings.Contains(err.Error(), "invalid season") {
		t.Fatalf("validation message = %v", err)
	}

	if describeFailure(nil) != nil {
		t.Fatal("nil should stay nil")
	}
}
