package diagnostics

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/burstarena/internal/board"
)

// Check exercises one move function. It returns nil when the move function
// behaves, an *AssertionError when it returns a wrongly shaped result, and
// any other error when it fails where a move was expected.
type Check func(ctx context.Context, move board.MoveFunc) error

// Probe is one named check of the battery.
type Probe struct {
	Name        string
	Description string
	Check       Check
}

var symbols = []board.Cell{board.O, board.X}

// Battery returns the standard probes, in the order they are reported.
func Battery() []Probe {
	return []Probe{
		{
			Name:        "empty",
			Description: "Move on an empty board",
			Check:       onEmpty(board.DefaultLength),
		},
		{
			Name:        "full",
			Description: "Move on a full board",
			Check:       rejects(board.Board(strings.Repeat(board.X.String(), board.DefaultLength))),
		},
		{
			Name:        "short",
			Description: "Move on a short board",
			Check:       onEmpty(5),
		},
		{
			Name:        "long",
			Description: "Move on a long board",
			Check:       onEmpty(100),
		},
		{
			Name:        "zero",
			Description: "Move on a zero-length board",
			Check:       rejects(board.New(0)),
		},
		{
			Name:        "almost_full_middle",
			Description: "Move on an almost full board (gap in the middle)",
			Check:       fills("xoxoxoxoxo-xoxoxoxox", board.O, 10, 10),
		},
		{
			Name:        "almost_full_beginning",
			Description: "Move on an almost full board (gap at the beginning)",
			Check:       fills("-xoxoxoxoxoxoxoxoxox", board.O, 10, 10),
		},
		{
			Name:        "almost_full_end",
			Description: "Move on an almost full board (gap at the end)",
			Check:       fills("xoxoxoxoxoxoxoxoxox-", board.O, 10, 10),
		},
		{
			Name:        "two_gaps_end",
			Description: "Move on an almost full board (two gaps at the end)",
			Check:       fills("xooxxooxoxoxoxooxx--", board.X, 10, 9),
		},
	}
}

func call(ctx context.Context, move board.MoveFunc, b board.Board, symbol board.Cell) (board.Board, error) {
	after, err := move(ctx, b, symbol)
	if err != nil {
		return "", fmt.Errorf("move as %s on %q: %w", symbol, b, err)
	}
	return after, nil
}

// onEmpty expects one symbol placed on an empty board of length n, for
// both symbols.
func onEmpty(n int) Check {
	return func(ctx context.Context, move board.MoveFunc) error {
		for _, symbol := range symbols {
			after, err := call(ctx, move, board.New(n), symbol)
			if err != nil {
				return err
			}
			if after.Len() != n {
				return failf("%q: wrong board length %d, want %d", after, after.Len(), n)
			}
			if got := after.Count(board.Empty); got != n-1 {
				return failf("%q: wrong number of %s: %d, want %d", after, board.Empty, got, n-1)
			}
			if got := after.Count(symbol); got != 1 {
				return failf("%q: wrong number of %s: %d, want 1", after, symbol, got)
			}
		}
		return nil
	}
}

// rejects expects the move function to report an error on b, for both
// symbols.
func rejects(b board.Board) Check {
	return func(ctx context.Context, move board.MoveFunc) error {
		for _, symbol := range symbols {
			after, err := move(ctx, b, symbol)
			if err == nil {
				return failf("move as %s on %q returned %q, want an error", symbol, b, after)
			}
		}
		return nil
	}
}

// fills expects one move as symbol on an almost full board to leave the
// given number of each symbol.
func fills(start string, symbol board.Cell, wantX, wantO int) Check {
	b := board.MustParse(start)
	return func(ctx context.Context, move board.MoveFunc) error {
		after, err := call(ctx, move, b, symbol)
		if err != nil {
			return err
		}
		if after.Len() != b.Len() {
			return failf("%q: wrong board length %d, want %d", after, after.Len(), b.Len())
		}
		if got := after.Count(board.X); got != wantX {
			return failf("%q: wrong number of %s: %d, want %d", after, board.X, got, wantX)
		}
		if got := after.Count(board.O); got != wantO {
			return failf("%q: wrong number of %s: %d, want %d", after, board.O, got, wantO)
		}
		return nil
	}
}
