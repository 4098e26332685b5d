package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/desertthunder/beatly/internal/api"
	"github.com/desertthunder/beatly/internal/auth"
	"github.com/desertthunder/beatly/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var store auth.Store
	var db *sql.DB
	if opened, err := shared.NewDatabase(config.Database.Path); err == nil {
		shared.ConfigureDatabase(opened, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
		store = auth.NewSQLiteStore(opened)
		db = opened
		defer opened.Close()
	} else {
		logger.Warn("database unavailable, session features disabled", "error", err)
	}

	client := api.NewClient(api.Opts{
		BaseURL:       config.Server.BaseURL,
		Tokens:        store,
		Timeout:       time.Duration(config.Server.TimeoutSecs) * time.Second,
		UploadTimeout: time.Duration(config.Server.UploadTimeoutSecs) * time.Second,
	})

	runner := NewRunner(RunnerOpts{
		Config: config,
		Client: client,
		Store:  store,
		DB:     db,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "beatly",
		Usage:    "Browse, upload, and analyze videos on the Beatly platform",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize database and run migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.SetupDatabase,
	}
}
