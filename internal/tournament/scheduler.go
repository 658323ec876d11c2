package tournament

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/specialistvlad/burstarena/internal/board"
	"github.com/specialistvlad/burstarena/internal/ctxlog"
	"github.com/specialistvlad/burstarena/internal/game"
	"github.com/specialistvlad/burstarena/internal/registry"
	"github.com/specialistvlad/burstarena/internal/watchdog"
)

// Options configures a Scheduler.
type Options struct {
	// Budget is the per-move watchdog budget. Zero uses the default.
	Budget time.Duration
	// Workers is the number of games played concurrently within a round.
	// It is capped at runtime.GOMAXPROCS(0): budgets are wall-clock, so a
	// game waiting for a CPU behind others would be charged for that wait.
	// A strategy that spins until its deadline still holds a CPU for the
	// whole budget. Values below 2, after the cap, play sequentially.
	Workers int
	// OnGame, when set, is called on the scheduler goroutine after each
	// game is folded into the table, in pair order.
	OnGame func(Game)
	// OnRound, when set, is called on the scheduler goroutine after each
	// completed round.
	OnRound func(Round)
}

// Game is one finished game of a round.
type Game struct {
	Round  int
	First  *registry.Strategy
	Second *registry.Strategy
	Result *game.Result
}

// Round is the state of the tournament after one full round.
type Round struct {
	Number int
	// Table is a snapshot of the cumulative scores after this round.
	Table   *ScoreTable
	Ranking Ranking
	Games   []Game
}

// Scheduler runs round-robin tournaments.
type Scheduler struct {
	opts Options
}

// New creates a Scheduler.
func New(opts Options) *Scheduler {
	return &Scheduler{opts: opts}
}

// workers returns the effective size of the worker pool.
func (s *Scheduler) workers() int {
	return min(s.opts.Workers, runtime.GOMAXPROCS(0))
}

type pairing struct {
	first, second *registry.Strategy
}

// pairsOf lists every ordered pair of strategies, self-pairs included,
// with the row strategy moving first.
func pairsOf(strategies []*registry.Strategy) []pairing {
	out := make([]pairing, 0, len(strategies)*len(strategies))
	for _, a := range strategies {
		for _, b := range strategies {
			out = append(out, pairing{first: a, second: b})
		}
	}
	return out
}

// Run plays rounds rounds over strategies on boards of boardLength cells.
// It returns one Round per completed round. When ctx ends, Run stops
// between games and returns the completed rounds together with the
// context error; games of an unfinished round are not scored.
func (s *Scheduler) Run(ctx context.Context, strategies []*registry.Strategy, rounds, boardLength int) ([]Round, error) {
	logger := ctxlog.FromContext(ctx)
	if rounds < 0 {
		return nil, fmt.Errorf("rounds must not be negative, got %d", rounds)
	}
	if boardLength < 0 {
		return nil, fmt.Errorf("board length must not be negative, got %d", boardLength)
	}

	pairs := pairsOf(strategies)
	table := NewScoreTable()
	out := make([]Round, 0, rounds)
	workers := s.workers()
	logger.Info("Tournament started.", "strategies", len(strategies), "rounds", rounds, "games_per_round", len(pairs), "workers", max(workers, 1))

	for n := 1; n <= rounds; n++ {
		roundCtx := ctxlog.With(ctx, "round", n)
		var (
			games []Game
			err   error
		)
		if workers > 1 {
			games, err = s.playParallel(roundCtx, pairs, n, boardLength, workers)
		} else {
			games, err = s.playSequential(roundCtx, pairs, n, boardLength)
		}
		if err != nil {
			logger.Warn("Tournament interrupted.", "round", n, "error", err)
			return out, err
		}

		for _, g := range games {
			table.Apply(g.First.Index(), g.Second.Index(), g.Result.Outcome)
			if s.opts.OnGame != nil {
				s.opts.OnGame(g)
			}
		}

		r := Round{
			Number:  n,
			Table:   table.Snapshot(),
			Ranking: Rank(table, strategies),
			Games:   games,
		}
		out = append(out, r)
		logger.Debug("Round finished.", "round", n, "ranking", r.Ranking.Names())
		if s.opts.OnRound != nil {
			s.opts.OnRound(r)
		}
	}

	logger.Info("Tournament finished.", "rounds", len(out))
	return out, nil
}

func (s *Scheduler) playSequential(ctx context.Context, pairs []pairing, round, boardLength int) ([]Game, error) {
	engine := game.NewEngine(watchdog.New(s.opts.Budget))
	games := make([]Game, 0, len(pairs))
	for _, p := range pairs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := engine.Play(ctx, p.first, p.second, board.New(boardLength))
		if err != nil {
			return nil, err
		}
		games = append(games, Game{Round: round, First: p.first, Second: p.second, Result: res})
	}
	return games, nil
}

// playParallel spreads the pairs of one round over a pool of workers. Each
// worker owns its engine, and each game writes only its own slot of games,
// so the slice needs no locking.
func (s *Scheduler) playParallel(ctx context.Context, pairs []pairing, round, boardLength, workers int) ([]Game, error) {
	logger := ctxlog.FromContext(ctx)
	games := make([]Game, len(pairs))
	jobs := make(chan int)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := range pairs {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		workerID := w
		g.Go(func() error {
			engine := game.NewEngine(watchdog.New(s.opts.Budget))
			logger.Debug("Worker started.", "workerID", workerID)
			for i := range jobs {
				p := pairs[i]
				res, err := engine.Play(gctx, p.first, p.second, board.New(boardLength))
				if err != nil {
					return err
				}
				games[i] = Game{Round: round, First: p.first, Second: p.second, Result: res}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return games, nil
}
