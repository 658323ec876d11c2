package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/specialistvlad/burstarena/internal/ctxlog"
	"github.com/specialistvlad/burstarena/internal/diagnostics"
	"github.com/specialistvlad/burstarena/internal/fault"
	"github.com/specialistvlad/burstarena/internal/registry"
	"github.com/specialistvlad/burstarena/internal/report"
	"github.com/specialistvlad/burstarena/internal/tournament"
	"github.com/specialistvlad/burstarena/internal/watchdog"
)

// Run executes the main application logic: strategy discovery, the
// diagnostics battery and the tournament, printing each stage to the
// report output.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	cfg := a.config
	a.logger.Debug("App.Run method started.")

	if cfg.HealthcheckPort > 0 {
		if err := a.startHealthcheckServer(cfg.HealthcheckPort); err != nil {
			return err
		}
		defer a.closeHealthcheckServer()
	}

	if err := a.applyStrategyOptions(); err != nil {
		return err
	}
	strategies, err := a.registry.Discover(ctx, cfg.Strategies...)
	if err != nil {
		return fmt.Errorf("failed to discover strategies: %w", err)
	}
	a.applyDisqualifications(strategies)
	if len(strategies) == 0 {
		a.logger.Warn("No strategies registered, nothing to play.")
		return nil
	}
	a.logger.Info("Strategies discovered.", "count", len(strategies), "names", names(strategies))

	printer := report.NewPrinter(a.outW)
	printer.Participants(strategies)

	if cfg.Diagnostics {
		rep, err := diagnostics.Run(ctx, watchdog.New(cfg.Budget), strategies, diagnostics.Battery())
		if err != nil {
			return fmt.Errorf("diagnostics interrupted: %w", err)
		}
		printer.Diagnostics(rep)
	}

	if cfg.Rounds == 0 {
		a.logger.Debug("No rounds requested, tournament skipped.")
		return nil
	}

	n := int64(len(strategies))
	a.progress.roundsTotal.Store(int64(cfg.Rounds))
	a.progress.gamesTotal.Store(int64(cfg.Rounds) * n * n)

	printer.Heading("Tournament!")
	lastRound := 0
	sched := tournament.New(tournament.Options{
		Budget:  cfg.Budget,
		Workers: cfg.Workers,
		OnGame: func(g tournament.Game) {
			a.progress.gamesPlayed.Add(1)
			if g.Round != lastRound {
				printer.SubRule()
				lastRound = g.Round
			}
			if g.Round <= cfg.ShownRounds {
				printer.Game(g)
			}
		},
		OnRound: func(r tournament.Round) {
			a.progress.roundsDone.Add(1)
			printer.Standings(r, strategies)
		},
	})

	a.logger.Info("🚀 Starting tournament...", "rounds", cfg.Rounds, "workers", cfg.Workers)
	if _, err := sched.Run(ctx, strategies, cfg.Rounds, cfg.BoardLength); err != nil {
		return fmt.Errorf("tournament interrupted: %w", err)
	}
	a.logger.Info("🏁 Tournament finished.")

	a.logger.Debug("App.Run method finished.")
	return nil
}

// applyStrategyOptions decodes the options of every configured strategy
// block into the options struct its module declares.
func (a *App) applyStrategyOptions() error {
	blocks := a.config.StrategyBlocks
	keys := make([]string, 0, len(blocks))
	for name := range blocks {
		keys = append(keys, name)
	}
	sort.Strings(keys)

	for _, name := range keys {
		block := blocks[name]
		reg, ok := a.registry.Lookup(name)
		if !ok {
			return fault.NewConfiguration("strategy block for unknown strategy: %s", name)
		}
		if !block.HasOptions() {
			continue
		}
		if reg.NewOptions == nil {
			return fault.NewConfiguration("strategy %s takes no options", name)
		}
		opts := reg.NewOptions()
		if err := block.Decode(opts); err != nil {
			return err
		}
		if err := a.registry.SetOptions(name, opts); err != nil {
			return err
		}
		a.logger.Debug("Strategy options applied.", "name", name)
	}
	return nil
}

// applyDisqualifications applies the `disqualified` policy of configured
// strategy blocks to the discovered strategies.
func (a *App) applyDisqualifications(strategies []*registry.Strategy) {
	for _, s := range strategies {
		block, ok := a.config.StrategyBlocks[s.Name()]
		if !ok || block.Disqualified == nil {
			continue
		}
		s.SetDisqualified(*block.Disqualified)
		a.logger.Debug("Disqualification set by configuration.", "name", s.Name(), "disqualified", *block.Disqualified)
	}
}

func names(strategies []*registry.Strategy) []string {
	out := make([]string, len(strategies))
	for i, s := range strategies {
		out[i] = s.Name()
	}
	return out
}
