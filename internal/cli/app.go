// Package cli wires the interactive shot chart command: prompts, player
// resolution, report building and SVG output. All blocking I/O stays here;
// the services underneath are plain request/response.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"nba-shotchart/internal/app/report"
	"nba-shotchart/internal/app/resolver"
	"nba-shotchart/internal/config"
	"nba-shotchart/internal/domain/players"
	"nba-shotchart/internal/logging"
	"nba-shotchart/internal/metrics"
	"nba-shotchart/internal/providers"
	"nba-shotchart/internal/render"
)

// App holds one run's collaborators. Streams are injected so the prompt loop
// is scriptable in tests.
type App struct {
	Config   config.Config
	Logger   *slog.Logger
	Recorder *metrics.Recorder
	Provider providers.DataProvider
	In       io.Reader
	Out      io.Writer

	// PlayerName and Season skip the corresponding prompt when set.
	PlayerName string
	Season     string
	Output     string
}

// Run executes one resolve, report and render cycle.
func (a *App) Run(ctx context.Context) error {
	prompter := NewPrompter(a.In, a.Out)

	name := a.PlayerName
	if name == "" {
		var err error
		if name, err = prompter.PlayerName(); err != nil {
			return err
		}
	}

	selected, err := a.resolvePlayer(ctx, prompter, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "\nSelected player: %s\n", selected.FullName)

	reports := report.NewService(a.Provider)
	rows, err := reports.Career(ctx, selected.ID)
	if err != nil {
		return fmt.Errorf("fetch career stats: %w", err)
	}
	printSeasons(a.Out, selected.FullName, report.SeasonsPlayed(rows))

	seasonValue := a.Season
	if seasonValue == "" {
		parsed, promptErr := prompter.Season()
		if promptErr != nil {
			return promptErr
		}
		seasonValue = parsed.String()
	}

	rpt, err := reports.Build(ctx, selected, rows, seasonValue)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.Out, statBlock(rpt))
	if len(rpt.Shots) == 0 {
		fmt.Fprintln(a.Out, "No shot data for this season; the chart shows an empty court.")
	}

	path := a.Output
	if path == "" {
		path = a.Config.Output
	}
	if err := a.writeChart(path, rpt); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Shot chart written to %s\n", path)

	a.Recorder.LogSummary(a.Logger)
	return nil
}

func (a *App) resolvePlayer(ctx context.Context, prompter *Prompter, name string) (players.Candidate, error) {
	candidates, err := resolver.NewService(a.Provider).Resolve(ctx, name)
	if err != nil {
		return players.Candidate{}, err
	}
	logging.Debug(a.Logger, "resolved player query",
		slog.String(logging.FieldPlayer, name),
		slog.Int(logging.FieldCount, len(candidates)),
	)
	return prompter.ChooseCandidate(candidates)
}

func (a *App) writeChart(path string, rpt report.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	render.Chart(f, render.ChartParams{
		Title:     chartTitle(rpt),
		StatLines: chartStatLines(rpt),
		Shots:     rpt.Shots,
	})
	if err := f.Close(); err != nil {
		return fmt.Errorf("write chart file: %w", err)
	}
	return nil
}
