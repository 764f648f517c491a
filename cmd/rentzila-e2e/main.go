package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/rentzila/e2e/internal/apiclient"
	"github.com/rentzila/e2e/internal/browser"
	internalcli "github.com/rentzila/e2e/internal/cli"
	"github.com/rentzila/e2e/internal/config"
	"github.com/rentzila/e2e/internal/observability"
)

var version = "0.1.0"

// newLogger builds the command logger from LOG_LEVEL
func newLogger() (*slog.Logger, error) {
	level := slog.LevelInfo
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL is invalid: %w", err)
		}
	}
	return observability.InitSlog(level, os.Stderr), nil
}

// InstallCommand returns the install command
func InstallCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Install the playwright driver and chromium",
		Action: func(c *cli.Context) error {
			if err := browser.Install(); err != nil {
				return fmt.Errorf("failed to install browsers: %w", err)
			}
			return nil
		},
	}
}

// BackcallCommand returns the backcall lookup command
func BackcallCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "backcall",
		Usage: "Check that a consultation request reached the backend",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "name left in the form", Required: true},
			&cli.StringFlag{Name: "phone", Usage: "phone left in the form", Required: true},
			&cli.StringFlag{Name: "api-url", Usage: "backend base URL", EnvVars: []string{"RENTZILA_API_URL", "RENTZILA_BASE_URL"}, Value: config.DefaultBaseURL},
			&cli.StringFlag{Name: "admin-email", EnvVars: []string{"ADMIN_EMAIL"}, Required: true},
			&cli.StringFlag{Name: "admin-password", EnvVars: []string{"ADMIN_PASSWORD"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			admin := config.Account{Email: c.String("admin-email"), Password: c.String("admin-password")}
			client := apiclient.New(c.String("api-url"), admin, apiclient.WithLogger(logger))

			err := internalcli.RunBackcall(c.Context, client, c.String("name"), c.String("phone"), c.App.Writer)
			if errors.Is(err, internalcli.ErrBackcallNotFound) {
				return cli.Exit("", 1)
			}
			return err
		},
	}
}

// FixturesCommand returns the fixtures command group
func FixturesCommand() *cli.Command {
	return &cli.Command{
		Name:  "fixtures",
		Usage: "Inspect the scenario fixtures",
		Subcommands: []*cli.Command{
			{
				Name:  "photos",
				Usage: "Write the upload images",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "dir", Usage: "output directory", Value: "test-results/photos"},
				},
				Action: func(c *cli.Context) error {
					return internalcli.RunFixturePhotos(c.String("dir"), c.App.Writer)
				},
			},
			{
				Name:  "categories",
				Usage: "Print the category tree",
				Action: func(c *cli.Context) error {
					return internalcli.RunFixtureCategories(c.App.Writer)
				},
			},
		},
	}
}

// FakeAPICommand returns the fake backend command
func FakeAPICommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "fake-api",
		Usage: "Serve the in-memory backend stand-in",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "listen address", EnvVars: []string{"FAKE_API_ADDR"}},
		},
		Action: func(c *cli.Context) error {
			cfg := config.LoadServerConfig(os.Getenv)
			if c.IsSet("addr") {
				cfg.Addr = c.String("addr")
			}
			return internalcli.RunServe(c.Context, internalcli.NewFakeAPIDependencies(cfg, logger))
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: .env file not found, using environment variables")
	}

	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := &cli.App{
		Name:    "rentzila-e2e",
		Usage:   "Support tooling for the Rentzila end-to-end suite",
		Version: version,
		Commands: []*cli.Command{
			InstallCommand(),
			BackcallCommand(logger),
			FixturesCommand(),
			FakeAPICommand(logger),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
