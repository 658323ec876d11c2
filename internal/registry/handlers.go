package registry

import (
	"fmt"
	"log/slog"

	"github.com/specialistvlad/burstarena/internal/board"
)

// RegisteredStrategy holds the compiled Go parts of a strategy.
type RegisteredStrategy struct {
	Name        string
	Description string
	// NewOptions returns a pointer to a fresh options struct carrying
	// `hcl` tags and its defaults. Nil means the strategy takes no options.
	NewOptions func() any
	// Build constructs the move function. opts is the value produced by
	// NewOptions, possibly decoded from configuration, or nil when the
	// strategy takes no options.
	Build func(opts any) (board.MoveFunc, error)
	// Disqualified is the initial disqualification flag of discovered
	// strategies. Configuration may override it.
	Disqualified bool
}

// RegisterStrategy registers a strategy under its name. Registering an
// empty or duplicate name, or a strategy without Build, is a programmer
// error and panics.
func (r *Registry) RegisterStrategy(s *RegisteredStrategy) {
	if s == nil || s.Name == "" {
		panic("strategy registration requires a name")
	}
	if s.Build == nil {
		panic(fmt.Sprintf("strategy '%s' registered without a Build function", s.Name))
	}
	if _, exists := r.strategies[s.Name]; exists {
		panic(fmt.Sprintf("strategy with name '%s' already registered", s.Name))
	}
	slog.Debug("Registering strategy.", "name", s.Name)
	r.strategies[s.Name] = s
	r.order = append(r.order, s.Name)
}

// RegisterMove is a shorthand for strategies without options.
func (r *Registry) RegisterMove(name, description string, move board.MoveFunc) {
	r.RegisterStrategy(&RegisteredStrategy{
		Name:        name,
		Description: description,
		Build:       func(any) (board.MoveFunc, error) { return move, nil },
	})
}

// SetOptions stores decoded options for a strategy; Discover hands them to
// the strategy's Build function.
func (r *Registry) SetOptions(name string, opts any) error {
	s, ok := r.strategies[name]
	if !ok {
		return fmt.Errorf("cannot set options: strategy '%s' not registered", name)
	}
	if s.NewOptions == nil {
		return fmt.Errorf("strategy '%s' takes no options", name)
	}
	r.options[name] = opts
	return nil
}
