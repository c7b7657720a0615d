package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete blackjack configuration
type Config struct {
	UI       UISettings       `hcl:"ui,block"`
	Game     GameSettings     `hcl:"game,block"`
	Simulate SimulateSettings `hcl:"simulate,block"`
}

// UISettings contains presentation-layer settings. These shape how the
// game is rendered and gated in the terminal; none of them are engine
// rules.
type UISettings struct {
	LogLevel     string `hcl:"log_level,optional"`
	LogFile      string `hcl:"log_file,optional"`
	Theme        string `hcl:"theme,optional"`
	HideHoleCard *bool  `hcl:"hide_hole_card,optional"`
	DealDelayMs  int    `hcl:"deal_delay_ms,optional"`
	// MinStandTotal disallows standing below this total. A house-rule
	// artifact of the original table UI, enforced purely in presentation;
	// 0 disables it.
	MinStandTotal int `hcl:"min_stand_total,optional"`
}

// GameSettings contains engine seeding configuration
type GameSettings struct {
	// Seed for the session RNG; 0 derives a seed from the clock.
	Seed int64 `hcl:"seed,optional"`
}

// SimulateSettings contains defaults for the simulate command
type SimulateSettings struct {
	Rounds   int `hcl:"rounds,optional"`
	Workers  int `hcl:"workers,optional"`
	HitBelow int `hcl:"hit_below,optional"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	hide := true
	return &Config{
		UI: UISettings{
			LogLevel:      "warn",
			LogFile:       "blackjack.log",
			Theme:         "auto",
			HideHoleCard:  &hide,
			DealDelayMs:   600,
			MinStandTotal: 0,
		},
		Game: GameSettings{
			Seed: 0,
		},
		Simulate: SimulateSettings{
			Rounds:   10000,
			Workers:  4,
			HitBelow: 17,
		},
	}
}

// Load loads configuration from an HCL file, falling back to defaults
// when the file does not exist
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.UI.LogLevel == "" {
		cfg.UI.LogLevel = defaults.UI.LogLevel
	}
	if cfg.UI.LogFile == "" {
		cfg.UI.LogFile = defaults.UI.LogFile
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.UI.HideHoleCard == nil {
		cfg.UI.HideHoleCard = defaults.UI.HideHoleCard
	}
	if cfg.UI.DealDelayMs == 0 {
		cfg.UI.DealDelayMs = defaults.UI.DealDelayMs
	}
	if cfg.Simulate.Rounds == 0 {
		cfg.Simulate.Rounds = defaults.Simulate.Rounds
	}
	if cfg.Simulate.Workers == 0 {
		cfg.Simulate.Workers = defaults.Simulate.Workers
	}
	if cfg.Simulate.HitBelow == 0 {
		cfg.Simulate.HitBelow = defaults.Simulate.HitBelow
	}
}

// Validate checks configuration values for consistency
func (c *Config) Validate() error {
	switch c.UI.Theme {
	case "auto", "dark", "light":
	default:
		return fmt.Errorf("invalid theme %q (must be auto, dark or light)", c.UI.Theme)
	}
	if c.UI.DealDelayMs < 0 {
		return fmt.Errorf("deal_delay_ms must not be negative")
	}
	if c.UI.MinStandTotal < 0 || c.UI.MinStandTotal > 21 {
		return fmt.Errorf("min_stand_total must be between 0 and 21")
	}
	if c.Simulate.Rounds < 1 {
		return fmt.Errorf("simulate rounds must be at least 1")
	}
	if c.Simulate.Workers < 1 {
		return fmt.Errorf("simulate workers must be at least 1")
	}
	if c.Simulate.HitBelow < 2 || c.Simulate.HitBelow > 21 {
		return fmt.Errorf("hit_below must be between 2 and 21")
	}
	return nil
}
