package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"nba-shotchart/internal/config"
	"nba-shotchart/internal/metrics"
	"nba-shotchart/internal/providers"
)

// NewRootCommand builds the shotchart command. Flags pre-answer the prompts;
// anything left unset is asked for interactively.
func NewRootCommand(cfg config.Config, logger *slog.Logger, version string) *cobra.Command {
	var (
		playerName string
		seasonFlag string
		outputPath string
		seasonType string
	)

	cmd := &cobra.Command{
		Use:     "shotchart",
		Short:   "Render an NBA player's shot chart for one season",
		Long:    "Looks a player up on stats.nba.com, prints their season stat line and writes an SVG shot chart.",
		Version: version,
		Example: `  shotchart
  shotchart --player "Michael Jordan" --season 1996-97
  shotchart --player "Jordan" --output mj.svg`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seasonType != "" {
				cfg.SeasonType = seasonType
			}
			recorder := metrics.NewRecorder()
			provider, err := BuildProvider(cfg, logger, recorder)
			if err != nil {
				return err
			}

			app := &App{
				Config:     cfg,
				Logger:     logger,
				Recorder:   recorder,
				Provider:   provider,
				In:         cmd.InOrStdin(),
				Out:        cmd.OutOrStdout(),
				PlayerName: playerName,
				Season:     seasonFlag,
				Output:     outputPath,
			}
			return describeFailure(app.Run(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&playerName, "player", "", "player name, skips the name prompt")
	cmd.Flags().StringVar(&seasonFlag, "season", "", `season such as "1996-97", skips the season prompt`)
	cmd.Flags().StringVar(&outputPath, "output", "", "path of the SVG to write (default from config)")
	cmd.Flags().StringVar(&seasonType, "season-type", "", `season type such as "Regular Season" or "Playoffs"`)
	return cmd
}

// describeFailure turns provider errors into messages fit for a terminal.
func describeFailure(err error) error {
	if err == nil {
		return nil
	}
	if notFound, ok := providers.AsNotFound(err); ok {
		return fmt.Errorf("no %s found for %q", notFound.Resource, notFound.Key)
	}
	if invalid, ok := providers.AsValidation(err); ok {
		return fmt.Errorf("invalid %s: %s", invalid.Field, invalid.Message)
	}
	if rateLimited, ok := providers.AsRateLimitError(err); ok {
		return fmt.Errorf("stats.nba.com is rate limiting requests, try again later: %v", rateLimited)
	}
	return err
}
