// Package sloth provides a strategy that never finishes a move. It spins,
// reporting progress to the watchdog, until its budget runs out, which makes
// it a fixture for timeout handling. It is disqualified by default.
package sloth

import (
	"context"

	"github.com/specialistvlad/burstarena/internal/board"
	"github.com/specialistvlad/burstarena/internal/registry"
	"github.com/specialistvlad/burstarena/internal/watchdog"
)

// Name is the registered strategy name.
const Name = "sloth"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Move spins until ctx's watchdog budget is spent.
func Move(ctx context.Context, b board.Board, symbol board.Cell) (board.Board, error) {
	for {
		if err := watchdog.Step(ctx); err != nil {
			return "", err
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}
	}
}

// Register registers the strategy with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterStrategy(&registry.RegisteredStrategy{
		Name:         Name,
		Description:  "Thinks forever",
		Build:        func(any) (board.MoveFunc, error) { return Move, nil },
		Disqualified: true,
	})
}
