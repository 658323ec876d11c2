// Package firstfree provides a strategy that always plays the leftmost free
// cell.
package firstfree

import (
	"context"
	"strings"

	"github.com/specialistvlad/burstarena/internal/board"
	"github.com/specialistvlad/burstarena/internal/registry"
)

// Name is the registered strategy name.
const Name = "first_free"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Move places symbol on the leftmost Empty cell.
func Move(ctx context.Context, b board.Board, symbol board.Cell) (board.Board, error) {
	i := strings.IndexByte(b.String(), byte(board.Empty))
	if i < 0 {
		return "", board.ErrFull
	}
	return b.Place(i, symbol)
}

// Register registers the strategy with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterMove(Name, "Plays the leftmost free cell", Move)
}
