package tournament

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/burstarena/internal/board"
	"github.com/specialistvlad/burstarena/internal/fault"
	"github.com/specialistvlad/burstarena/internal/game"
	"github.com/specialistvlad/burstarena/internal/registry"
	"github.com/specialistvlad/burstarena/internal/watchdog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillAt(pick func(empties []int) int) board.MoveFunc {
	return func(ctx context.Context, b board.Board, symbol board.Cell) (board.Board, error) {
		empties := b.Empties()
		if len(empties) == 0 {
			return "", board.ErrFull
		}
		return b.Place(pick(empties), symbol)
	}
}

var (
	firstFree = fillAt(func(e []int) int { return e[0] })
	lastFree  = fillAt(func(e []int) int { return e[len(e)-1] })
)

func sloth(ctx context.Context, b board.Board, symbol board.Cell) (board.Board, error) {
	for {
		if err := watchdog.Step(ctx); err != nil {
			return "", err
		}
	}
}

func pairOfStrategies() []*registry.Strategy {
	return []*registry.Strategy{
		registry.NewStrategy(0, "first_free", firstFree),
		registry.NewStrategy(1, "last_free", lastFree),
	}
}

func TestRun_FirstFreeAgainstLastFree(t *testing.T) {
	strategies := pairOfStrategies()

	rounds, err := New(Options{Budget: 50 * time.Millisecond}).Run(context.Background(), strategies, 1, 20)
	require.NoError(t, err)
	require.Len(t, rounds, 1)

	r := rounds[0]
	want := map[Pair]float64{
		{0, 0}: 1,
		{0, 1}: 1,
		{1, 0}: 1,
		{1, 1}: 1,
	}
	if diff := cmp.Diff(want, r.Table.Entries()); diff != "" {
		t.Errorf("score table mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"first_free", "last_free"}, r.Ranking.Names())
	assert.Equal(t, 2.0, r.Ranking[0].Total)
	assert.Equal(t, 2.0, r.Ranking[1].Total)

	require.Len(t, r.Games, 4)
	kinds := make([]game.OutcomeKind, len(r.Games))
	for i, g := range r.Games {
		kinds[i] = g.Result.Outcome.Kind
	}
	assert.Equal(t, []game.OutcomeKind{game.Drawn, game.WinnerA, game.WinnerA, game.Drawn}, kinds)
	assert.Equal(t, board.Board("xxx---------------oo"), r.Games[1].Result.Final())
	assert.Equal(t, "last_free", r.Games[2].First.Name())
}

func TestRun_TimeoutIsPenalised(t *testing.T) {
	good := registry.NewStrategy(0, "good", firstFree)
	slow := registry.NewStrategy(1, "sloth", sloth)

	rounds, err := New(Options{Budget: 10 * time.Millisecond}).Run(context.Background(), []*registry.Strategy{good, slow}, 1, 20)
	require.NoError(t, err)
	require.Len(t, rounds, 1)

	r := rounds[0]
	assert.Equal(t, 1.0, r.Table.Get(0, 0))
	assert.Equal(t, 2.0, r.Table.Get(0, 1), "the opponent earns a win in both orders")
	assert.Equal(t, -2.0, r.Table.Get(1, 0), "the faulty strategy loses a point per fault")
	assert.Zero(t, r.Table.Get(1, 1), "a fault against itself nets zero")
	assert.Equal(t, []string{"good", "sloth"}, r.Ranking.Names())

	f := r.Games[1].Result.Outcome.Fault
	require.NotNil(t, f)
	assert.Equal(t, fault.Timeout, f.Kind)
	assert.Equal(t, 1, f.Strategy)
}

func TestRun_DrawSplitsPoints(t *testing.T) {
	a := registry.NewStrategy(0, "a", firstFree)
	b := registry.NewStrategy(1, "b", firstFree)

	rounds, err := New(Options{}).Run(context.Background(), []*registry.Strategy{a, b}, 1, 20)
	require.NoError(t, err)

	table := rounds[0].Table
	assert.Equal(t, 1.0, table.Get(0, 1), "two draws of half a point each")
	assert.Equal(t, 1.0, table.Get(1, 0))
}

func TestRun_DisqualifiedStillPlays(t *testing.T) {
	strategies := pairOfStrategies()
	strategies[1].SetDisqualified(true)

	rounds, err := New(Options{}).Run(context.Background(), strategies, 1, 20)
	require.NoError(t, err)

	r := rounds[0]
	assert.Len(t, r.Games, 4)
	assert.Equal(t, 1.0, r.Table.Get(1, 0), "scores of a disqualified strategy are still recorded")
	assert.Equal(t, []string{"first_free"}, r.Ranking.Names())
}

func TestRun_ScoresAccumulate(t *testing.T) {
	rounds, err := New(Options{}).Run(context.Background(), pairOfStrategies(), 3, 20)
	require.NoError(t, err)
	require.Len(t, rounds, 3)

	for i, r := range rounds {
		assert.Equal(t, i+1, r.Number)
		assert.Equal(t, float64(i+1), r.Table.Get(0, 1))
		assert.Equal(t, float64(2*(i+1)), r.Ranking[0].Total)
	}
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	build := func() []*registry.Strategy {
		return []*registry.Strategy{
			registry.NewStrategy(0, "first_free", firstFree),
			registry.NewStrategy(1, "last_free", lastFree),
			registry.NewStrategy(2, "sloth", sloth),
			registry.NewStrategy(3, "also_first", firstFree),
		}
	}
	opts := Options{Budget: 50 * time.Millisecond}

	seq, err := New(opts).Run(context.Background(), build(), 2, 20)
	require.NoError(t, err)

	opts.Workers = 4
	par, err := New(opts).Run(context.Background(), build(), 2, 20)
	require.NoError(t, err)

	require.Len(t, par, len(seq))
	for i := range seq {
		if diff := cmp.Diff(seq[i].Table.Entries(), par[i].Table.Entries()); diff != "" {
			t.Errorf("round %d table mismatch (-seq +par):\n%s", i+1, diff)
		}
		assert.Equal(t, seq[i].Ranking.Names(), par[i].Ranking.Names())
		for j := range seq[i].Games {
			assert.Equal(t, seq[i].Games[j].First.Name(), par[i].Games[j].First.Name())
			assert.Equal(t, seq[i].Games[j].Second.Name(), par[i].Games[j].Second.Name())
		}
	}
}

func TestWorkers_CappedAtGOMAXPROCS(t *testing.T) {
	prev := runtime.GOMAXPROCS(4)
	t.Cleanup(func() { runtime.GOMAXPROCS(prev) })

	assert.Equal(t, 0, New(Options{}).workers())
	assert.Equal(t, 2, New(Options{Workers: 2}).workers())
	assert.Equal(t, 4, New(Options{Workers: 16}).workers())

	runtime.GOMAXPROCS(1)
	assert.Equal(t, 1, New(Options{Workers: 16}).workers())
}

func TestRun_SpinningStrategyOnSingleCPU(t *testing.T) {
	prev := runtime.GOMAXPROCS(1)
	t.Cleanup(func() { runtime.GOMAXPROCS(prev) })

	build := func() []*registry.Strategy {
		return []*registry.Strategy{
			registry.NewStrategy(0, "first_free", firstFree),
			registry.NewStrategy(1, "sloth", sloth),
			registry.NewStrategy(2, "last_free", lastFree),
		}
	}
	opts := Options{Budget: 50 * time.Millisecond}

	seq, err := New(opts).Run(context.Background(), build(), 1, 20)
	require.NoError(t, err)

	opts.Workers = 8
	par, err := New(opts).Run(context.Background(), build(), 1, 20)
	require.NoError(t, err)
	require.Len(t, par, 1)

	if diff := cmp.Diff(seq[0].Table.Entries(), par[0].Table.Entries()); diff != "" {
		t.Errorf("table mismatch (-seq +par):\n%s", diff)
	}
	assert.Equal(t, []string{"first_free", "last_free", "sloth"}, par[0].Ranking.Names())

	for _, g := range par[0].Games {
		o := g.Result.Outcome
		if o.Kind != game.Faulted {
			continue
		}
		faulty := g.First
		if o.Faulty == game.Second {
			faulty = g.Second
		}
		assert.Equal(t, "sloth", faulty.Name(), "only the spinning strategy may time out (%s vs %s)", g.First.Name(), g.Second.Name())
	}
}

func TestRun_OnGameInPairOrder(t *testing.T) {
	var seen []string
	opts := Options{
		Workers: 3,
		OnGame: func(g Game) {
			seen = append(seen, g.First.Name()+"/"+g.Second.Name())
		},
	}

	_, err := New(opts).Run(context.Background(), pairOfStrategies(), 1, 20)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"first_free/first_free",
		"first_free/last_free",
		"last_free/first_free",
		"last_free/last_free",
	}, seen)
}

func TestRun_Cancellation(t *testing.T) {
	t.Run("before start", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		rounds, err := New(Options{}).Run(ctx, pairOfStrategies(), 2, 20)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, rounds)
	})

	t.Run("between rounds", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		opts := Options{OnGame: func(Game) { cancel() }}
		rounds, err := New(opts).Run(ctx, pairOfStrategies(), 3, 20)
		assert.ErrorIs(t, err, context.Canceled)
		require.Len(t, rounds, 1, "the round being folded completes")
		assert.Len(t, rounds[0].Games, 4)
	})

	t.Run("parallel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		rounds, err := New(Options{Workers: 2}).Run(ctx, pairOfStrategies(), 1, 20)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, rounds)
	})
}

func TestRun_InvalidArguments(t *testing.T) {
	_, err := New(Options{}).Run(context.Background(), pairOfStrategies(), -1, 20)
	assert.Error(t, err)

	_, err = New(Options{}).Run(context.Background(), pairOfStrategies(), 1, -5)
	assert.Error(t, err)

	rounds, err := New(Options{}).Run(context.Background(), pairOfStrategies(), 0, 20)
	require.NoError(t, err)
	assert.Empty(t, rounds)
}

func TestRun_OnRound(t *testing.T) {
	var numbers []int
	opts := Options{OnRound: func(r Round) { numbers = append(numbers, r.Number) }}

	rounds, err := New(opts).Run(context.Background(), pairOfStrategies(), 3, 20)
	require.NoError(t, err)
	assert.Len(t, rounds, 3)
	assert.Equal(t, []int{1, 2, 3}, numbers)
}
