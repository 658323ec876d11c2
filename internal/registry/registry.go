package registry

// Module is the interface that all strategy modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all the registered strategies for a single application
// instance, in registration order.
type Registry struct {
	order      []string
	strategies map[string]*RegisteredStrategy
	options    map[string]any
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		strategies: make(map[string]*RegisteredStrategy),
		options:    make(map[string]any),
	}
}

// Names returns the registered strategy names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Lookup returns the registration for name.
func (r *Registry) Lookup(name string) (*RegisteredStrategy, bool) {
	s, ok := r.strategies[name]
	return s, ok
}
