package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arena.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParse_Defaults(t *testing.T) {
	cfg, exit, err := Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, 1, cfg.Rounds)
	assert.Equal(t, 1, cfg.ShownRounds)
	assert.Equal(t, 20, cfg.BoardLength)
	assert.Equal(t, 100*time.Millisecond, cfg.Budget)
	assert.Equal(t, 1, cfg.Workers)
	assert.True(t, cfg.Diagnostics)
	assert.Empty(t, cfg.Strategies)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParse_Flags(t *testing.T) {
	args := []string{
		"-n", "5", "-s", "2", "-p", "30", "-budget", "50ms", "-workers", "4",
		"-no-diagnostics", "-log-level", "DEBUG", "-log-format", "json",
		"first_free", "random",
	}
	cfg, exit, err := Parse(args, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, 5, cfg.Rounds)
	assert.Equal(t, 2, cfg.ShownRounds)
	assert.Equal(t, 30, cfg.BoardLength)
	assert.Equal(t, 50*time.Millisecond, cfg.Budget)
	assert.Equal(t, 4, cfg.Workers)
	assert.False(t, cfg.Diagnostics)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, []string{"first_free", "random"}, cfg.Strategies)
}

func TestParse_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
tournament {
  rounds       = 3
  board_length = 12
  budget       = "250ms"
  strategies   = ["tactician"]
}

strategy "random" {
  seed = 1
}
`)

	t.Run("file values apply", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-config", path}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Rounds)
		assert.Equal(t, 12, cfg.BoardLength)
		assert.Equal(t, 250*time.Millisecond, cfg.Budget)
		assert.Equal(t, []string{"tactician"}, cfg.Strategies)
		assert.Equal(t, 1, cfg.ShownRounds, "unset file values keep flag defaults")
		assert.Contains(t, cfg.StrategyBlocks, "random")
	})

	t.Run("explicit flags win", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-config", path, "-n", "1", "-budget", "10ms", "first_free"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.Rounds)
		assert.Equal(t, 12, cfg.BoardLength)
		assert.Equal(t, 10*time.Millisecond, cfg.Budget)
		assert.Equal(t, []string{"first_free"}, cfg.Strategies)
	})
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, exit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown flag", args: []string{"-bogus"}, wantErr: "flag provided but not defined"},
		{name: "bad log format", args: []string{"-log-format", "xml"}, wantErr: "invalid log-format"},
		{name: "bad log level", args: []string{"-log-level", "loud"}, wantErr: "invalid log-level"},
		{name: "negative rounds", args: []string{"-n", "-1"}, wantErr: "rounds must not be negative"},
		{name: "missing config", args: []string{"-config", "/nonexistent/arena.hcl"}, wantErr: "error accessing path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.args, &bytes.Buffer{})
			require.Error(t, err)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tt.wantErr)
		})
	}
}
