package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IlikeChooros/go-rollout/pkg/rollout"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	limits := cfg.Limits()
	assert.Equal(t, rollout.DefaultDifficulty, limits.Difficulty)
	assert.Equal(t, rollout.DefaultThreads, limits.NThreads)
	assert.Equal(t, rollout.PerspectiveSideToMove, limits.Perspective)
	assert.Equal(t, zerolog.WarnLevel, cfg.Level())
}

func TestDecode(t *testing.T) {
	doc := `
difficulty = 250
threads = 4
arena_threads = 3
seed = 7
perspective = "player-a"
human_first = true
show_values = true
log_level = "debug"
`
	cfg, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.Difficulty)
	assert.Equal(t, 4, cfg.Threads)
	assert.Equal(t, 3, cfg.ArenaThreads)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, rollout.PerspectivePlayerA, cfg.Perspective)
	assert.True(t, cfg.HumanFirst)
	assert.True(t, cfg.ShowValues)
	assert.Empty(t, cfg.Heatmap)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())

	limits := cfg.Limits()
	assert.Equal(t, 250, limits.Difficulty)
	assert.Equal(t, int64(7), limits.Seed)
}

func TestDecodePartialKeepsDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`threads = 2`))
	require.NoError(t, err)
	assert.Equal(t, rollout.DefaultDifficulty, cfg.Difficulty)
	assert.Equal(t, 2, cfg.Threads)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader(`difficult = 10`))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = Decode(strings.NewReader(`perspective = "player-b"`))
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(`difficulty = "hard"`))
	assert.Error(t, err)
}

func TestValidateReportsEverything(t *testing.T) {
	cfg := Default()
	cfg.Difficulty = 0
	cfg.Threads = -1
	cfg.ArenaThreads = 0
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 4)
	assert.Equal(t, zerolog.WarnLevel, cfg.Level())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rollout.toml")
	require.NoError(t, os.WriteFile(path, []byte("difficulty = 42\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Difficulty)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}
