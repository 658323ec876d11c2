// Package tactician provides a strategy with one ply of lookahead: it takes
// a winning cell when there is one, blocks the opponent's winning cell
// otherwise, and else plays the cell with the most room to build a run.
package tactician

import (
	"context"
	"fmt"

	"github.com/specialistvlad/burstarena/internal/board"
	"github.com/specialistvlad/burstarena/internal/registry"
	"github.com/specialistvlad/burstarena/internal/watchdog"
)

// Name is the registered strategy name.
const Name = "tactician"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Move picks a cell for symbol on b.
func Move(ctx context.Context, b board.Board, symbol board.Cell) (board.Board, error) {
	if !symbol.IsSymbol() {
		return "", fmt.Errorf("%q is not a player symbol", symbol)
	}
	empties := b.Empties()
	if len(empties) == 0 {
		return "", board.ErrFull
	}

	for _, c := range []board.Cell{symbol, symbol.Opponent()} {
		for _, i := range empties {
			if err := watchdog.Step(ctx); err != nil {
				return "", err
			}
			if completes(b, i, c) {
				return b.Place(i, symbol)
			}
		}
	}

	best, bestScore := empties[0], -1
	for _, i := range empties {
		if err := watchdog.Step(ctx); err != nil {
			return "", err
		}
		if s := potential(b, i, symbol); s > bestScore {
			best, bestScore = i, s
		}
	}
	return b.Place(best, symbol)
}

// completes reports whether writing c at the Empty cell i forms a run.
func completes(b board.Board, i int, c board.Cell) bool {
	run := 1
	for j := i - 1; j >= 0 && b.At(j) == c; j-- {
		run++
	}
	for j := i + 1; j < b.Len() && b.At(j) == c; j++ {
		run++
	}
	return run >= board.WinLength
}

// potential scores cell i for symbol over every window of WinLength cells
// covering i that the opponent has not entered. Windows already holding
// more of symbol weigh more.
func potential(b board.Board, i int, symbol board.Cell) int {
	score := 0
	for start := i - board.WinLength + 1; start <= i; start++ {
		if start < 0 || start+board.WinLength > b.Len() {
			continue
		}
		own, blocked := 0, false
		for j := start; j < start+board.WinLength; j++ {
			switch b.At(j) {
			case symbol:
				own++
			case board.Empty:
			default:
				blocked = true
			}
		}
		if !blocked {
			score += (own + 1) * (own + 1)
		}
	}
	return score
}

// Register registers the strategy with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterMove(Name, "Wins when it can, blocks when it must", Move)
}
