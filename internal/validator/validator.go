// Package validator checks that a strategy's output is a legal move.
//
// A move is legal when the returned board has the same length as the input,
// uses only the board alphabet, and differs from the input in exactly one
// position, where an Empty cell became the mover's symbol. Validate is a
// pure function: the same inputs always produce the same decision.
package validator

import (
	"context"

	"github.com/specialistvlad/burstarena/internal/board"
	"github.com/specialistvlad/burstarena/internal/ctxlog"
	"github.com/specialistvlad/burstarena/internal/fault"
	"github.com/specialistvlad/burstarena/internal/watchdog"
)

// Validate returns after when it is a legal move by symbol from before, and
// a Validation fault describing the first broken rule otherwise.
func Validate(before, after board.Board, symbol board.Cell) (board.Board, error) {
	if !symbol.IsSymbol() {
		return "", fault.Invalid("symbol %q is not a player symbol", symbol)
	}
	if after.Len() != before.Len() {
		return "", fault.Invalid("returned board has length %d, want %d: %q", after.Len(), before.Len(), after)
	}

	changed := -1
	changes := 0
	for i := 0; i < after.Len(); i++ {
		if !after.At(i).Valid() {
			return "", fault.Invalid("returned board has invalid cell %q at position %d: %q", after.At(i), i, after)
		}
		if after.At(i) != before.At(i) {
			changes++
			if changed < 0 {
				changed = i
			}
		}
	}

	switch {
	case changes == 0:
		return "", fault.Invalid("returned board is unchanged: %q", after)
	case changes > 1:
		return "", fault.Invalid("returned board changes %d cells, want 1: %q", changes, after)
	case before.At(changed) != board.Empty:
		return "", fault.Invalid("position %d overwritten (%q -> %q): %q", changed, before.At(changed), after.At(changed), after)
	case after.At(changed) != symbol:
		return "", fault.Invalid("position %d set to %q, want %q: %q", changed, after.At(changed), symbol, after)
	}
	return after, nil
}

// Checked invokes move on before through exec and validates its result.
// Every failure comes back as a *fault.Fault (Timeout, Validation or
// Strategy), except cancellation of ctx itself, which is returned as is.
func Checked(ctx context.Context, exec *watchdog.Executor, move board.MoveFunc, before board.Board, symbol board.Cell) (board.Board, error) {
	logger := ctxlog.FromContext(ctx)

	after, err := watchdog.Execute(ctx, exec, func(ctx context.Context) (board.Board, error) {
		return move(ctx, before, symbol)
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		f := fault.FromError(err)
		logger.Debug("Strategy call failed.", "kind", f.Kind, "error", f.Message)
		return "", f
	}

	return Validate(before, after, symbol)
}
