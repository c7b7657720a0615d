package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/tui"
)

// PlayCmd runs the interactive terminal table
type PlayCmd struct {
	Seed *int64 `kong:"help='Deterministic RNG seed for the session (optional)'"`
}

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The terminal belongs to the TUI, so session logs go to a file.
	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	level, err := log.ParseLevel(cfg.UI.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})

	seed := resolveSeed(c.Seed, cfg.Game.Seed)
	logger.Info("starting session", "seed", seed)

	game := blackjack.NewGame(randutil.New(seed))
	model := tui.New(game, logger, tui.NewStyles(cfg.UI.Theme), tui.Options{
		HideHoleCard:  *cfg.UI.HideHoleCard,
		MinStandTotal: cfg.UI.MinStandTotal,
		DealDelay:     time.Duration(cfg.UI.DealDelayMs) * time.Millisecond,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveSeed picks flag over config over the clock
func resolveSeed(flag *int64, configured int64) int64 {
	if flag != nil {
		return *flag
	}
	if configured != 0 {
		return configured
	}
	return time.Now().UnixNano()
}
