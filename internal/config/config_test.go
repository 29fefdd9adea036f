package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), fileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults fill missing keys", func(t *testing.T) {
		// Given: a config file that only sets the mode
		path := writeConfig(t, "mode: cvc\n")

		// When: loading it
		conf, err := Load(path)

		// Then: every other key has its default
		require.NoError(t, err)
		assert.Equal(t, entity.ComputerVsComputer, conf.GameMode())
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, Depths{Easy: 3, Medium: 5, Hard: 9}, conf.Depths)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())

		_, ok := conf.PresetDifficulty()
		assert.False(t, ok)
	})

	t.Run("Full file", func(t *testing.T) {
		path := writeConfig(t, `
log-level: debug
mode: pvp
difficulty: medium
depths:
  easy: 1
  medium: 4
  hard: 7
computer:
  random: true
  seed: 42
redis:
  enabled: true
  host: cache
  port: "6380"
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, entity.PlayerVsPlayer, conf.GameMode())
		assert.Equal(t, Depths{Easy: 1, Medium: 4, Hard: 7}, conf.Depths)
		assert.Equal(t, Computer{Random: true, Seed: 42}, conf.Computer)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())

		difficulty, ok := conf.PresetDifficulty()
		assert.True(t, ok)
		assert.Equal(t, entity.Medium, difficulty)
	})

	t.Run("Unknown mode", func(t *testing.T) {
		_, err := Load(writeConfig(t, "mode: online\n"))

		require.ErrorIs(t, err, apperror.ErrUnknownMode)
	})

	t.Run("Unknown difficulty", func(t *testing.T) {
		_, err := Load(writeConfig(t, "difficulty: nightmare\n"))

		require.ErrorIs(t, err, apperror.ErrUnknownDifficulty)
	})

	t.Run("Depth out of range", func(t *testing.T) {
		_, err := Load(writeConfig(t, "depths:\n  hard: 12\n"))

		require.ErrorIs(t, err, ErrInvalidDepth)
	})

	t.Run("Environment only", func(t *testing.T) {
		t.Setenv("GAME_MODE", "cvc")
		t.Setenv("DEPTH_EASY", "2")

		conf, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, entity.ComputerVsComputer, conf.GameMode())
		assert.Equal(t, 2, conf.Depths.Easy)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.Error(t, err)
	})
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, fileName)
	require.NoError(t, os.WriteFile(path, []byte("mode: pvc\n"), 0o600))

	assert.Equal(t, path, Locate(dir))
}

func TestDepths_For(t *testing.T) {
	depths := Depths{Easy: 3, Medium: 5, Hard: 9}

	for difficulty, expected := range map[entity.Difficulty]int{
		entity.Easy:   3,
		entity.Medium: 5,
		entity.Hard:   9,
	} {
		depth, err := depths.For(difficulty)
		require.NoError(t, err)
		assert.Equal(t, expected, depth)
	}

	_, err := depths.For("extreme")
	require.ErrorIs(t, err, apperror.ErrUnknownDifficulty)
}
