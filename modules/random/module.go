// Package random provides a strategy that plays a uniformly random free
// cell. Its `seed` option makes games reproducible:
//
//	strategy "random" {
//	  seed = 42
//	}
package random

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/specialistvlad/burstarena/internal/board"
	"github.com/specialistvlad/burstarena/internal/registry"
)

// Name is the registered strategy name.
const Name = "random"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Options configures the strategy.
type Options struct {
	// Seed seeds the generator. Unset means a time-based seed.
	Seed *uint64 `hcl:"seed,optional"`
}

// Player holds the generator behind the move function. A strategy can be
// called from several tournament workers at once, so access to the
// generator is serialized.
type Player struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPlayer creates a Player seeded with seed.
func NewPlayer(seed uint64) *Player {
	return &Player{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Move places symbol on a random Empty cell.
func (p *Player) Move(ctx context.Context, b board.Board, symbol board.Cell) (board.Board, error) {
	empties := b.Empties()
	if len(empties) == 0 {
		return "", board.ErrFull
	}
	p.mu.Lock()
	i := empties[p.rng.IntN(len(empties))]
	p.mu.Unlock()
	return b.Place(i, symbol)
}

func build(opts any) (board.MoveFunc, error) {
	o, ok := opts.(*Options)
	if !ok {
		return nil, fmt.Errorf("unexpected options type %T", opts)
	}
	seed := uint64(time.Now().UnixNano())
	if o.Seed != nil {
		seed = *o.Seed
	}
	return NewPlayer(seed).Move, nil
}

// Register registers the strategy with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterStrategy(&registry.RegisteredStrategy{
		Name:        Name,
		Description: "Plays a random free cell",
		NewOptions:  func() any { return new(Options) },
		Build:       build,
	})
}
