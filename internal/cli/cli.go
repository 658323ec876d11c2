package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/burstarena/internal/app"
	"github.com/specialistvlad/burstarena/internal/board"
	"github.com/specialistvlad/burstarena/internal/config"
	"github.com/specialistvlad/burstarena/internal/watchdog"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Values from the -config file apply unless the matching flag is given
// explicitly.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("burstarena", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
BurstArena - A round-robin tournament for three-in-a-row strategies.

Usage:
  burstarena [options] [STRATEGY...]

Arguments:
  STRATEGY
    Names of the strategies to enter. With none, every built-in strategy
    takes part.

Options:
`)
		flagSet.PrintDefaults()
	}

	roundsFlag := flagSet.Int("n", 1, "Number of tournament rounds.")
	shownFlag := flagSet.Int("s", 1, "Number of rounds printed in detail.")
	lengthFlag := flagSet.Int("p", board.DefaultLength, "Board length.")
	budgetFlag := flagSet.Duration("budget", watchdog.DefaultBudget, "Time budget of a single move.")
	workersFlag := flagSet.Int("workers", 1, "Number of games played concurrently.")
	configFlag := flagSet.String("config", "", "Path to an HCL file or a directory of HCL files.")
	noDiagFlag := flagSet.Bool("no-diagnostics", false, "Skip the diagnostics battery.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg := app.Config{
		Rounds:          *roundsFlag,
		ShownRounds:     *shownFlag,
		BoardLength:     *lengthFlag,
		Budget:          *budgetFlag,
		Workers:         *workersFlag,
		Strategies:      flagSet.Args(),
		Diagnostics:     !*noDiagFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		HealthcheckPort: *healthPortFlag,
	}

	if *configFlag != "" {
		file, err := config.Load(context.Background(), *configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		merge(&cfg, file, set)
		slog.Debug("Configuration file merged.", "path", *configFlag)
	}
	slog.Debug("CLI parameter validation complete.")

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", appConfig)
	return appConfig, false, nil
}

// merge copies the values set in file into cfg, except those whose flag
// was given explicitly. Positional strategy names count as explicit.
func merge(cfg *app.Config, file *config.Tournament, set map[string]bool) {
	pickInt := func(flagName string, dst *int, src *int) {
		if src != nil && !set[flagName] {
			*dst = *src
		}
	}
	pickInt("n", &cfg.Rounds, file.Rounds)
	pickInt("s", &cfg.ShownRounds, file.ShownRounds)
	pickInt("p", &cfg.BoardLength, file.BoardLength)
	pickInt("workers", &cfg.Workers, file.Workers)
	if file.Budget != nil && !set["budget"] {
		cfg.Budget = *file.Budget
	}
	if len(cfg.Strategies) == 0 {
		cfg.Strategies = file.Strategies
	}
	cfg.StrategyBlocks = file.StrategyBlocks
}
