// Package testutil holds helpers shared by strategy module tests.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/specialistvlad/burstarena/internal/board"
	"github.com/specialistvlad/burstarena/internal/diagnostics"
	"github.com/specialistvlad/burstarena/internal/registry"
	"github.com/specialistvlad/burstarena/internal/validator"
	"github.com/specialistvlad/burstarena/internal/watchdog"
	"github.com/stretchr/testify/require"
)

// ContractBudget is the watchdog budget used by AssertContract.
const ContractBudget = 200 * time.Millisecond

// AssertContract checks that move passes the whole diagnostics battery and
// plays valid moves on empty boards of several lengths, for both symbols,
// until each board is full.
func AssertContract(t *testing.T, move board.MoveFunc) {
	t.Helper()
	ctx := context.Background()
	exec := watchdog.New(ContractBudget)

	s := registry.NewStrategy(0, "subject", move)
	rep, err := diagnostics.Run(ctx, exec, []*registry.Strategy{s}, diagnostics.Battery())
	require.NoError(t, err)
	for _, rec := range rep.Records {
		t.Errorf("probe %s: %s: %s", rep.Probes[rec.Probe].Name, rec.Kind, rec.Message)
	}

	for _, n := range []int{1, 5, 20, 100} {
		for _, symbol := range []board.Cell{board.X, board.O} {
			t.Run(fmt.Sprintf("fill %d with %s", n, symbol), func(t *testing.T) {
				b := board.New(n)
				for !b.IsFull() {
					next, err := validator.Checked(ctx, exec, move, b, symbol)
					require.NoError(t, err, "move on %q", b)
					b = next
				}
				_, err := move(ctx, b, symbol)
				require.Error(t, err, "a full board must be rejected")
			})
		}
	}
}
