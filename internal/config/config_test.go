package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blackjack.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
ui {
  log_level       = "debug"
  log_file        = "bj.log"
  theme           = "dark"
  hide_hole_card  = false
  deal_delay_ms   = 250
  min_stand_total = 12
}

game {
  seed = 42
}

simulate {
  rounds    = 500
  workers   = 2
  hit_below = 16
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.UI.LogLevel)
	assert.Equal(t, "bj.log", cfg.UI.LogFile)
	assert.Equal(t, "dark", cfg.UI.Theme)
	require.NotNil(t, cfg.UI.HideHoleCard)
	assert.False(t, *cfg.UI.HideHoleCard)
	assert.Equal(t, 250, cfg.UI.DealDelayMs)
	assert.Equal(t, 12, cfg.UI.MinStandTotal)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, 500, cfg.Simulate.Rounds)
	assert.Equal(t, 2, cfg.Simulate.Workers)
	assert.Equal(t, 16, cfg.Simulate.HitBelow)
}

func TestLoadPartialConfigFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
ui {
  theme = "light"
}

game {}

simulate {
  rounds = 100
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, "warn", cfg.UI.LogLevel)
	assert.Equal(t, 600, cfg.UI.DealDelayMs)
	require.NotNil(t, cfg.UI.HideHoleCard)
	assert.True(t, *cfg.UI.HideHoleCard)
	assert.Equal(t, 100, cfg.Simulate.Rounds)
	assert.Equal(t, 4, cfg.Simulate.Workers)
	assert.Equal(t, 17, cfg.Simulate.HitBelow)
}

func TestLoadInvalidHCL(t *testing.T) {
	path := writeConfig(t, `ui { theme = `)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }, true},
		{"negative delay", func(c *Config) { c.UI.DealDelayMs = -1 }, true},
		{"stand gate too high", func(c *Config) { c.UI.MinStandTotal = 22 }, true},
		{"zero rounds", func(c *Config) { c.Simulate.Rounds = 0 }, true},
		{"zero workers", func(c *Config) { c.Simulate.Workers = 0 }, true},
		{"hit threshold too low", func(c *Config) { c.Simulate.HitBelow = 1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
