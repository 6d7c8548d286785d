// Package cli is the command line entry point of the harness.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ui_automation/domain/interfaces"
	"ui_automation/infrastructure/browser"
	"ui_automation/infrastructure/config"
	"ui_automation/infrastructure/storage"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ErrCasesFailed is returned by run when at least one case did not pass
var ErrCasesFailed = errors.New("some test cases did not pass")

// App holds the flags and collaborators shared by every command
type App struct {
	logger *logrus.Logger

	// sessions overrides the browser factory built from flags and env
	sessions interfaces.SessionFactory

	configPath string
	dataPath   string
	sheet      string
	resultsDir string
	backend    string
	verbose    bool
}

// NewApp - creates new App with a logger set up the way every command expects
func NewApp() *App {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return &App{logger: logger}
}

// Command - builds the root command with all subcommands attached
func (a *App) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ui_automation",
		Short:         "Browser UI test harness",
		Long:          `Runs data driven browser login tests and inspects their config, test data and results`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger.SetOutput(cmd.ErrOrStderr())
			if a.verbose {
				a.logger.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", envOr("UI_CONFIG_PATH", config.DefaultConfigPath), "path to the ini config file")
	flags.StringVar(&a.dataPath, "data", envOr("UI_TESTDATA_PATH", storage.DefaultDataPath), "path to the xlsx test data workbook")
	flags.StringVar(&a.sheet, "sheet", storage.DefaultSheet, "worksheet holding the test data")
	flags.StringVar(&a.resultsDir, "results", envOr("UI_RESULTS_DIR", storage.DefaultResultsDir), "directory receiving test results")
	flags.StringVar(&a.backend, "backend", "", "browser backend: selenium or playwright (default from UI_BACKEND)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		a.runCommand(),
		a.configCommand(),
		a.dataCommand(),
		a.reportCommand(),
	)
	return cmd
}

func (a *App) sessionFactory() interfaces.SessionFactory {
	if a.sessions != nil {
		return a.sessions
	}
	opts := browser.OptionsFromEnv()
	if a.backend != "" {
		opts.Backend = a.backend
	}
	return browser.NewFactory(opts, a.logger)
}

func envOr(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Execute - loads .env, runs the root command and returns the process exit code
func Execute() int {
	// .env file is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewApp().Command().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
