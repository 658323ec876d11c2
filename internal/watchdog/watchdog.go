package watchdog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/specialistvlad/burstarena/internal/ctxlog"
	"github.com/specialistvlad/burstarena/internal/fault"
)

// DefaultBudget is the time allotted to one call when no budget is set.
const DefaultBudget = 100 * time.Millisecond

// ErrBusy is returned when Execute is called on an Executor that is already
// watching another call.
var ErrBusy = errors.New("watchdog: executor is already watching a call")

// Call is the unit of work run under the watchdog.
type Call[T any] func(ctx context.Context) (T, error)

// Executor runs calls under a wall-clock budget.
type Executor struct {
	budget   time.Duration
	mu       sync.Mutex
	watching atomic.Bool
}

// New creates an Executor. A budget <= 0 selects DefaultBudget.
func New(budget time.Duration) *Executor {
	if budget <= 0 {
		budget = DefaultBudget
	}
	return &Executor{budget: budget}
}

// Budget returns the time allotted to each call.
func (e *Executor) Budget() time.Duration {
	return e.budget
}

// Watching reports whether a call is currently under watch.
func (e *Executor) Watching() bool {
	return e.watching.Load()
}

// tracker is the per-call state reachable from the call's context.
type tracker struct {
	start  time.Time
	budget time.Duration
	steps  atomic.Int64
}

func (t *tracker) overrun() bool {
	return time.Since(t.start) > t.budget
}

func (t *tracker) timeout() *fault.Fault {
	return fault.NewTimeout(time.Since(t.start), t.steps.Load())
}

type trackerKey struct{}

type outcome[T any] struct {
	value T
	err   error
}

// Execute runs call under e's budget. It returns the call's value and error
// when the call finishes in time, a *fault.Fault of kind Timeout when the
// budget is exceeded, a Strategy fault when the call panics, ctx's error
// when the parent context ends first, and ErrBusy when e is already in use.
func Execute[T any](ctx context.Context, e *Executor, call Call[T]) (T, error) {
	var zero T
	if !e.mu.TryLock() {
		return zero, ErrBusy
	}
	defer e.mu.Unlock()

	logger := ctxlog.FromContext(ctx)

	e.watching.Store(true)
	defer e.watching.Store(false)

	tr := &tracker{start: time.Now(), budget: e.budget}
	callCtx, cancel := context.WithDeadline(ctx, tr.start.Add(e.budget))
	defer cancel()
	callCtx = context.WithValue(callCtx, trackerKey{}, tr)

	done := make(chan outcome[T], 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome[T]{err: fault.Panic(r)}
			}
		}()
		v, err := call(callCtx)
		done <- outcome[T]{value: v, err: err}
	}()

	select {
	case res := <-done:
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
		// The call may have run one long step past the deadline before
		// returning; that is still a timeout.
		if tr.overrun() || isDeadline(res.err) {
			f := tr.timeout()
			logger.Debug("Watched call overran its budget.", "elapsed", f.Elapsed, "steps", f.Steps)
			return zero, f
		}
		return res.value, res.err
	case <-callCtx.Done():
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
		f := tr.timeout()
		logger.Debug("Watched call abandoned at deadline.", "elapsed", f.Elapsed, "steps", f.Steps)
		return zero, f
	}
}

func isDeadline(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || fault.Is(err, fault.Timeout)
}

// Step records one unit of work done by a watched call and returns a
// Timeout fault once the budget is exhausted. Outside a watched call it only
// reports ctx's error.
func Step(ctx context.Context) error {
	tr, ok := ctx.Value(trackerKey{}).(*tracker)
	if !ok {
		return ctx.Err()
	}
	tr.steps.Add(1)
	if tr.overrun() {
		return tr.timeout()
	}
	return nil
}

// Steps returns the number of steps recorded so far by the watched call
// running under ctx.
func Steps(ctx context.Context) int64 {
	tr, ok := ctx.Value(trackerKey{}).(*tracker)
	if !ok {
		return 0
	}
	return tr.steps.Load()
}
