package simulator

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/randutil"
)

// Config holds configuration for running simulations
type Config struct {
	// Rounds is the total number of rounds to play across all workers.
	Rounds int
	// Workers is the number of concurrent games.
	Workers int
	// HitBelow is the player policy: keep hitting while the hand value is
	// below this total.
	HitBelow int
	// Seed is the base seed; each worker derives its own from it.
	Seed   int64
	Logger *log.Logger
}

// Results aggregates outcome counts over all simulated rounds
type Results struct {
	Rounds           int
	PlayerWins       int
	DealerWins       int
	Pushes           int
	PlayerBlackjacks int
	PlayerBusts      int
}

// Simulator plays rounds of blackjack with a fixed player policy to
// estimate outcome frequencies
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.HitBelow < 2 {
		config.HitBelow = 17
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Run executes the simulation and returns aggregated results. Rounds are
// sharded across workers; each worker owns a game seeded from the base
// seed plus its index, so a run is reproducible for a given seed and
// worker count.
func (s *Simulator) Run(ctx context.Context) (*Results, error) {
	if s.config.Rounds < 1 {
		return nil, fmt.Errorf("rounds must be at least 1, got %d", s.config.Rounds)
	}

	workers := s.config.Workers
	if workers > s.config.Rounds {
		workers = s.config.Rounds
	}

	s.config.Logger.Debug("starting simulation",
		"rounds", s.config.Rounds, "workers", workers,
		"hit_below", s.config.HitBelow, "seed", s.config.Seed)

	shards := make([]Results, workers)
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		rounds := s.config.Rounds / workers
		if w < s.config.Rounds%workers {
			rounds++
		}
		seed := s.config.Seed + int64(w)
		shard := &shards[w]

		g.Go(func() error {
			return s.playShard(ctx, shard, rounds, seed)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &Results{}
	for _, shard := range shards {
		total.Rounds += shard.Rounds
		total.PlayerWins += shard.PlayerWins
		total.DealerWins += shard.DealerWins
		total.Pushes += shard.Pushes
		total.PlayerBlackjacks += shard.PlayerBlackjacks
		total.PlayerBusts += shard.PlayerBusts
	}
	return total, nil
}

func (s *Simulator) playShard(ctx context.Context, results *Results, rounds int, seed int64) error {
	game := blackjack.NewGame(randutil.New(seed))

	for i := 0; i < rounds; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		game.NewRound()
		if game.Player().IsBlackjack() {
			results.PlayerBlackjacks++
		}

		for game.InRound() && game.Player().Value() < s.config.HitBelow {
			game.Hit()
		}
		if game.InRound() {
			game.Stand()
		}

		results.Rounds++
		switch game.Outcome() {
		case blackjack.OutcomePlayer:
			results.PlayerWins++
		case blackjack.OutcomeDealer:
			results.DealerWins++
			if game.Player().IsBust() {
				results.PlayerBusts++
			}
		case blackjack.OutcomePush:
			results.Pushes++
		}
	}
	return nil
}

// Summary returns a human-readable breakdown of the results
func (r *Results) Summary() string {
	pct := func(n int) float64 {
		if r.Rounds == 0 {
			return 0
		}
		return float64(n) / float64(r.Rounds) * 100
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Rounds played:     %d\n", r.Rounds)
	fmt.Fprintf(&b, "Player wins:       %d (%.1f%%)\n", r.PlayerWins, pct(r.PlayerWins))
	fmt.Fprintf(&b, "Dealer wins:       %d (%.1f%%)\n", r.DealerWins, pct(r.DealerWins))
	fmt.Fprintf(&b, "Pushes:            %d (%.1f%%)\n", r.Pushes, pct(r.Pushes))
	fmt.Fprintf(&b, "Player blackjacks: %d (%.1f%%)\n", r.PlayerBlackjacks, pct(r.PlayerBlackjacks))
	fmt.Fprintf(&b, "Player busts:      %d (%.1f%%)", r.PlayerBusts, pct(r.PlayerBusts))
	return b.String()
}
