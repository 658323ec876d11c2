package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/specialistvlad/burstarena/internal/ctxlog"
	"github.com/specialistvlad/burstarena/internal/fault"
)

// Discover resolves the participants of a tournament run. With no requested
// names every registered strategy takes part; otherwise only the requested
// ones do, and a Configuration fault lists every requested name that is not
// registered. Each strategy's index is its position in registration order,
// so indexes stay stable whichever subset is requested.
func (r *Registry) Discover(ctx context.Context, requested ...string) ([]*Strategy, error) {
	logger := ctxlog.FromContext(ctx)

	wanted := make(map[string]bool, len(requested))
	for _, name := range requested {
		wanted[name] = true
	}

	var missing []string
	for name := range wanted {
		if _, ok := r.strategies[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fault.NewConfiguration("strategy not found: %s", strings.Join(missing, ", "))
	}

	var out []*Strategy
	for i, name := range r.order {
		if len(wanted) > 0 && !wanted[name] {
			continue
		}
		reg := r.strategies[name]

		opts, ok := r.options[name]
		if !ok && reg.NewOptions != nil {
			opts = reg.NewOptions()
		}
		move, err := reg.Build(opts)
		if err != nil {
			return nil, fmt.Errorf("failed to build strategy '%s': %w", name, err)
		}

		s := &Strategy{
			index:       i,
			name:        name,
			description: reg.Description,
			move:        move,
		}
		s.SetDisqualified(reg.Disqualified)
		out = append(out, s)
		logger.Debug("Strategy discovered.", "name", name, "index", i)
	}

	logger.Debug("Strategy discovery finished.", "count", len(out))
	return out, nil
}
