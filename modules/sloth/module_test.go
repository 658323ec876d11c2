package sloth

import (
	"context"
	"testing"
	"time"

	"github.com/specialistvlad/burstarena/internal/board"
	"github.com/specialistvlad/burstarena/internal/fault"
	"github.com/specialistvlad/burstarena/internal/registry"
	"github.com/specialistvlad/burstarena/internal/validator"
	"github.com/specialistvlad/burstarena/internal/watchdog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove_TimesOut(t *testing.T) {
	_, err := validator.Checked(context.Background(), watchdog.New(10*time.Millisecond), Move, board.New(5), board.X)
	require.Error(t, err)
	assert.True(t, fault.Is(err, fault.Timeout))

	f, _ := fault.As(err)
	assert.Positive(t, f.Steps)
}

func TestMove_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Move(ctx, board.New(5), board.X)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegister_DisqualifiedByDefault(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)
	strategies, err := r.Discover(context.Background())
	require.NoError(t, err)
	require.Len(t, strategies, 1)
	assert.True(t, strategies[0].Disqualified())
}
