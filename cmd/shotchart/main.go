package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"nba-shotchart/internal/cli"
	"nba-shotchart/internal/config"
	"nba-shotchart/internal/logging"
)

const appVersion = "dev"

func main() {
	// a missing .env is fine, environment variables still apply
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "shotchart",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(cfg, logger, appVersion).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
