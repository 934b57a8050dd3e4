package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   error
	}{
		{"zero timer", func(c *Config) { c.Infection.Timer = 0 }, ErrInvalidTimer},
		{"negative decay", func(c *Config) { c.Infection.DecayRate = -1 }, ErrInvalidDecay},
		{"negative offspring", func(c *Config) { c.Infection.Offspring = -1 }, ErrInvalidOffspring},
		{"zero offspring with waves", func(c *Config) { c.Infection.Offspring = 0 }, ErrInvalidOffspring},
		{"zero hostile speed", func(c *Config) { c.Hostile.Speed = 0 }, ErrInvalidSpeed},
		{"negative turn rate", func(c *Config) { c.Hostile.TurnRate = -0.5 }, ErrNegativeValue},
		{"negative delay", func(c *Config) { c.Wave.InterWaveDelay = -1 }, ErrNegativeValue},
		{"unknown broad phase", func(c *Config) { c.Collision.BroadPhase = "octree" }, ErrUnknownBroadPhase},
		{"grid without cell size", func(c *Config) {
			c.Collision.BroadPhase = BroadPhaseGrid
			c.Collision.CellSize = 0
		}, ErrNegativeValue},
		{"unknown policy", func(c *Config) { c.Targeting.AllyPolicy = "furthest" }, ErrUnknownPolicy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	t.Run("zero offspring without waves", func(t *testing.T) {
		cfg := Default()
		cfg.Infection.Offspring = 0
		cfg.Wave.Enabled = false
		assert.NoError(t, cfg.Validate())
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("OverridesDefaults", func(t *testing.T) {
		path := filepath.Join(dir, "config.yaml")
		data := []byte(`
hostile:
  speed: 35
infection:
  timer: 7
  offspring: 2
wave:
  arena_center: {x: 10, y: -5}
collision:
  broad_phase: grid
  cell_size: 32
targeting:
  ally_policy: nearest
`)
		require.NoError(t, os.WriteFile(path, data, 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 35.0, cfg.Hostile.Speed)
		assert.Equal(t, 7.0, cfg.Infection.Timer)
		assert.Equal(t, 2, cfg.Infection.Offspring)
		assert.Equal(t, 10.0, cfg.Wave.ArenaCenter.X)
		assert.Equal(t, -5.0, cfg.Wave.ArenaCenter.Y)
		assert.Equal(t, BroadPhaseGrid, cfg.Collision.BroadPhase)
		assert.Equal(t, PolicyNearest, cfg.Targeting.AllyPolicy)
		// untouched keys keep their defaults
		assert.Equal(t, Default().Hostile.TurnRate, cfg.Hostile.TurnRate)
		assert.Equal(t, Default().Infection.DecayRate, cfg.Infection.DecayRate)
	})

	t.Run("EmptyFile", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("UnknownKey", func(t *testing.T) {
		path := filepath.Join(dir, "typo.yaml")
		require.NoError(t, os.WriteFile(path, []byte("hostile:\n  sped: 3\n"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("InvalidValue", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("infection:\n  timer: 0\n"), 0o644))
		_, err := Load(path)
		assert.True(t, errors.Is(err, ErrInvalidTimer))
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.yaml"))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}
