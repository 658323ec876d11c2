package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/specialistvlad/burstarena/internal/config"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Rounds      int
	ShownRounds int
	BoardLength int
	Budget      time.Duration
	Workers     int
	// Strategies names the participants. Empty means every registered
	// strategy.
	Strategies  []string
	Diagnostics bool

	// StrategyBlocks holds per-strategy configuration from HCL files.
	StrategyBlocks map[string]*config.Strategy

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

func NewConfig(cfg Config) (*Config, error) {
	var errs []error
	if cfg.Rounds < 0 {
		errs = append(errs, fmt.Errorf("rounds must not be negative, got %d", cfg.Rounds))
	}
	if cfg.ShownRounds < 0 {
		errs = append(errs, fmt.Errorf("shown rounds must not be negative, got %d", cfg.ShownRounds))
	}
	if cfg.BoardLength < 0 {
		errs = append(errs, fmt.Errorf("board length must not be negative, got %d", cfg.BoardLength))
	}
	if cfg.Budget < 0 {
		errs = append(errs, fmt.Errorf("budget must not be negative, got %s", cfg.Budget))
	}
	if cfg.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", cfg.Workers))
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		errs = append(errs, fmt.Errorf("healthcheck port out of range: %d", cfg.HealthcheckPort))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &cfg, nil
}
