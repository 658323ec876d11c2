package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/burstarena/internal/board"
	"github.com/specialistvlad/burstarena/internal/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(ctx context.Context, b board.Board, symbol board.Cell) (board.Board, error) {
	return b, nil
}

type testOptions struct {
	Depth int `hcl:"depth,optional"`
}

func newTestRegistry() *Registry {
	r := New()
	r.RegisterMove("alpha", "first", noop)
	r.RegisterMove("beta", "second", noop)
	r.RegisterMove("gamma", "third", noop)
	return r
}

func TestDiscover_All(t *testing.T) {
	r := newTestRegistry()

	got, err := r.Discover(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, name := range []string{"alpha", "beta", "gamma"} {
		assert.Equal(t, name, got[i].Name())
		assert.Equal(t, i, got[i].Index())
		assert.False(t, got[i].Disqualified())
	}
	assert.Equal(t, "second", got[1].Description())
}

func TestDiscover_SubsetKeepsRegistrationIndexes(t *testing.T) {
	r := newTestRegistry()

	got, err := r.Discover(context.Background(), "gamma", "alpha")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "alpha", got[0].Name())
	assert.Equal(t, 0, got[0].Index())
	assert.Equal(t, "gamma", got[1].Name())
	assert.Equal(t, 2, got[1].Index())
}

func TestDiscover_MissingNames(t *testing.T) {
	r := newTestRegistry()

	got, err := r.Discover(context.Background(), "alpha", "zeta", "omega")
	assert.Nil(t, got)
	f, ok := fault.As(err)
	require.True(t, ok)
	assert.Equal(t, fault.Configuration, f.Kind)
	assert.Equal(t, "strategy not found: omega, zeta", f.Message)
}

func TestRegisterStrategy_Panics(t *testing.T) {
	r := newTestRegistry()
	assert.Panics(t, func() { r.RegisterMove("alpha", "again", noop) })
	assert.Panics(t, func() { r.RegisterMove("", "nameless", noop) })
	assert.Panics(t, func() { r.RegisterStrategy(&RegisteredStrategy{Name: "nobuild"}) })
}

func TestDisqualifiedFlag(t *testing.T) {
	s := NewStrategy(4, "sloth", noop)
	assert.False(t, s.Disqualified())
	s.SetDisqualified(true)
	assert.True(t, s.Disqualified())
	s.SetDisqualified(false)
	assert.False(t, s.Disqualified())
	assert.Equal(t, "sloth", s.String())
}

func TestOptionsFlowIntoBuild(t *testing.T) {
	r := New()
	var seen []int
	r.RegisterStrategy(&RegisteredStrategy{
		Name:       "deep",
		NewOptions: func() any { return &testOptions{Depth: 1} },
		Build: func(opts any) (board.MoveFunc, error) {
			seen = append(seen, opts.(*testOptions).Depth)
			return noop, nil
		},
	})

	_, err := r.Discover(context.Background())
	require.NoError(t, err)

	require.NoError(t, r.SetOptions("deep", &testOptions{Depth: 7}))
	require.NoError(t, r.ValidateRegistry(context.Background()))
	_, err = r.Discover(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{1, 7}, seen)
}

func TestSetOptions_Errors(t *testing.T) {
	r := newTestRegistry()
	assert.Error(t, r.SetOptions("ghost", &testOptions{}))
	assert.Error(t, r.SetOptions("alpha", &testOptions{}))
}

func TestBuildErrorStopsDiscovery(t *testing.T) {
	r := New()
	want := errors.New("bad seed")
	r.RegisterStrategy(&RegisteredStrategy{
		Name:  "broken",
		Build: func(any) (board.MoveFunc, error) { return nil, want },
	})

	_, err := r.Discover(context.Background())
	assert.ErrorIs(t, err, want)
}

func TestValidateRegistry_RejectsNonStructOptions(t *testing.T) {
	r := New()
	r.RegisterStrategy(&RegisteredStrategy{
		Name:       "odd",
		NewOptions: func() any { return 3 },
		Build:      func(any) (board.MoveFunc, error) { return noop, nil },
	})

	err := r.ValidateRegistry(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pointer to a struct")
}

func TestNames(t *testing.T) {
	r := newTestRegistry()
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, r.Names())
	_, ok := r.Lookup("beta")
	assert.True(t, ok)
	_, ok = r.Lookup("delta")
	assert.False(t, ok)
}

func TestDiscover_InitialDisqualification(t *testing.T) {
	r := New()
	r.RegisterMove("fair", "", noop)
	r.RegisterStrategy(&RegisteredStrategy{
		Name:         "cheat",
		Build:        func(any) (board.MoveFunc, error) { return noop, nil },
		Disqualified: true,
	})

	got, err := r.Discover(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.False(t, got[0].Disqualified())
	assert.True(t, got[1].Disqualified())
}
