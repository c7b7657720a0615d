package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/simulator"
)

var summaryTitleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

// SimulateCmd plays rounds automatically and reports outcome frequencies
type SimulateCmd struct {
	Rounds   int    `kong:"help='Number of rounds to play (overrides config)'"`
	Workers  int    `kong:"help='Number of concurrent games (overrides config)'"`
	HitBelow int    `kong:"help='Player hits while hand value is below this total (overrides config)'"`
	Seed     *int64 `kong:"help='Base RNG seed for reproducible runs (optional)'"`
	Debug    bool   `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := log.InfoLevel
	if c.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})

	rounds := cfg.Simulate.Rounds
	if c.Rounds > 0 {
		rounds = c.Rounds
	}
	workers := cfg.Simulate.Workers
	if c.Workers > 0 {
		workers = c.Workers
	}
	hitBelow := cfg.Simulate.HitBelow
	if c.HitBelow > 0 {
		hitBelow = c.HitBelow
	}
	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("simulating", "rounds", rounds, "workers", workers, "hit_below", hitBelow, "seed", seed)

	start := time.Now()
	results, err := simulator.New(simulator.Config{
		Rounds:   rounds,
		Workers:  workers,
		HitBelow: hitBelow,
		Seed:     seed,
		Logger:   logger,
	}).Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	logger.Info("simulation complete", "elapsed", time.Since(start))

	fmt.Println(summaryTitleStyle.Render(" Simulation results "))
	fmt.Println()
	fmt.Println(results.Summary())
	return nil
}
