package game

import (
	"context"

	"github.com/specialistvlad/burstarena/internal/board"
	"github.com/specialistvlad/burstarena/internal/ctxlog"
	"github.com/specialistvlad/burstarena/internal/fault"
	"github.com/specialistvlad/burstarena/internal/registry"
	"github.com/specialistvlad/burstarena/internal/validator"
	"github.com/specialistvlad/burstarena/internal/watchdog"
)

// Result is a finished game.
type Result struct {
	Outcome Outcome
	// History holds every board from the start position to the final one.
	History []board.Board
	// Plies is the number of moves applied.
	Plies int
}

// Final returns the last board of the game.
func (r *Result) Final() board.Board {
	return r.History[len(r.History)-1]
}

// Observer is notified after every applied ply.
type Observer func(ply int, mover *registry.Strategy, b board.Board)

// Engine plays games. It is not safe for concurrent use because its
// executor watches one call at a time; use one Engine per goroutine.
type Engine struct {
	exec     *watchdog.Executor
	observer Observer
}

// NewEngine creates an Engine whose moves run under exec.
func NewEngine(exec *watchdog.Executor) *Engine {
	return &Engine{exec: exec}
}

// Observe installs fn as the engine's ply observer. A nil fn removes it.
func (e *Engine) Observe(fn Observer) {
	e.observer = fn
}

// Play runs one game of first (X) against second (O) from start. Faults end
// the game with a Faulted outcome and a nil error; the error is non-nil only
// when ctx ends before the game does.
func (e *Engine) Play(ctx context.Context, first, second *registry.Strategy, start board.Board) (*Result, error) {
	logger := ctxlog.FromContext(ctx).With("first", first.Name(), "second", second.Name())
	logger.Debug("Game started.", "board_length", start.Len())

	res := &Result{History: []board.Board{start}}
	current := start
	players := [2]*registry.Strategy{first, second}

	for ply := 0; ; ply++ {
		switch status, winner := Evaluate(current); status {
		case Won:
			if winner == board.X {
				res.Outcome = Outcome{Kind: WinnerA}
			} else {
				res.Outcome = Outcome{Kind: WinnerB}
			}
			logger.Debug("Game won.", "winner", winner, "plies", res.Plies)
			return res, nil
		case Draw:
			res.Outcome = Outcome{Kind: Drawn}
			logger.Debug("Game drawn.", "plies", res.Plies)
			return res, nil
		}

		side := First
		if ply%2 == 1 {
			side = Second
		}
		mover := players[side]

		next, err := validator.Checked(ctx, e.exec, mover.Move, current, side.Symbol())
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			f := fault.FromError(err).Attribute(mover.Index())
			res.Outcome = Outcome{Kind: Faulted, Faulty: side, Fault: f}
			logger.Warn("Strategy faulted.", "strategy", mover.Name(), "kind", f.Kind, "error", f.Message, "ply", ply)
			return res, nil
		}

		logger.Debug("Ply applied.", "ply", ply, "strategy", mover.Name(), "board", next.String())
		current = next
		res.History = append(res.History, next)
		res.Plies++
		if e.observer != nil {
			e.observer(ply, mover, next)
		}
	}
}
