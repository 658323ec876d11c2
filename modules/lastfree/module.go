// Package lastfree provides a strategy that always plays the rightmost free
// cell.
package lastfree

import (
	"context"
	"strings"

	"github.com/specialistvlad/burstarena/internal/board"
	"github.com/specialistvlad/burstarena/internal/registry"
)

// Name is the registered strategy name.
const Name = "last_free"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Move places symbol on the rightmost Empty cell.
func Move(ctx context.Context, b board.Board, symbol board.Cell) (board.Board, error) {
	i := strings.LastIndexByte(b.String(), byte(board.Empty))
	if i < 0 {
		return "", board.ErrFull
	}
	return b.Place(i, symbol)
}

// Register registers the strategy with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterMove(Name, "Plays the rightmost free cell", Move)
}
