package registry

import (
	"context"
	"sync/atomic"

	"github.com/specialistvlad/burstarena/internal/board"
)

// Strategy is one tournament participant.
type Strategy struct {
	index        int
	name         string
	description  string
	move         board.MoveFunc
	disqualified atomic.Bool
}

// NewStrategy builds a standalone descriptor. Discover is the usual source
// of strategies; NewStrategy serves callers that assemble participants by
// hand, such as tests and embedding programs.
func NewStrategy(index int, name string, move board.MoveFunc) *Strategy {
	return &Strategy{index: index, name: name, move: move}
}

// Index is the strategy's position in discovery order.
func (s *Strategy) Index() int { return s.index }

// Name is the unique display name.
func (s *Strategy) Name() string { return s.name }

// Description is the one-line summary supplied at registration.
func (s *Strategy) Description() string { return s.description }

// Move computes the strategy's move.
func (s *Strategy) Move(ctx context.Context, b board.Board, symbol board.Cell) (board.Board, error) {
	return s.move(ctx, b, symbol)
}

// Disqualified reports whether the strategy is excluded from ranking.
func (s *Strategy) Disqualified() bool { return s.disqualified.Load() }

// SetDisqualified sets the disqualification flag.
func (s *Strategy) SetDisqualified(v bool) { s.disqualified.Store(v) }

func (s *Strategy) String() string { return s.name }
