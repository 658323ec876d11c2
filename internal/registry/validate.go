package registry

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/specialistvlad/burstarena/internal/ctxlog"
)

// ValidateRegistry checks that every strategy with options produces a
// pointer to a struct, which is what the configuration decoder needs, and
// that stored options have the type the strategy declared.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, name := range r.order {
		s := r.strategies[name]
		if s.NewOptions == nil {
			continue
		}

		sample := s.NewOptions()
		t := reflect.TypeOf(sample)
		if t == nil || t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
			errs = append(errs, fmt.Sprintf("strategy '%s': NewOptions must return a pointer to a struct, got %T", name, sample))
			continue
		}

		if opts, ok := r.options[name]; ok && reflect.TypeOf(opts) != t {
			errs = append(errs, fmt.Sprintf("strategy '%s': options of type %T, want %s", name, opts, t))
		}
		logger.Debug("Strategy options validated.", "name", name, "type", t.String())
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
