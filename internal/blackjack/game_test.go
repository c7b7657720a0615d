package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/randutil"
)

// setHands installs fixed hands for outcome tests, bypassing the deal
func setHands(g *Game, player, dealer string) {
	g.player = Hand{cards: MustParseCards(player)}
	g.dealer = Hand{cards: MustParseCards(dealer)}
}

// stackDeck replaces the deck contents so draws are deterministic. Draws
// come from the end of the sequence.
func stackDeck(g *Game, cards string) {
	g.deck.cards = MustParseCards(cards)
}

func TestNewRoundDeals(t *testing.T) {
	g := NewGame(randutil.New(1))
	g.NewRound()

	assert.True(t, g.InRound())
	assert.Equal(t, OutcomeNone, g.Outcome())
	assert.Equal(t, 2, g.Player().Count())
	assert.Equal(t, 2, g.Dealer().Count())
	assert.Equal(t, 48, g.Remaining())
}

func TestNewRoundDealOrder(t *testing.T) {
	g := NewGame(randutil.New(1))
	// Top of the deck is the end of the sequence, so the deal order
	// player, dealer, player, dealer receives K, Q, J, T.
	stackDeck(g, "2c3c4c5c6c7c8c9cTcJcQcKc")

	g.NewRound()

	assert.Equal(t, MustParseCards("KcJc"), g.Player().Cards())
	assert.Equal(t, MustParseCards("QcTc"), g.Dealer().Cards())
	assert.Equal(t, 8, g.Remaining())
}

func TestNewRoundReplacesLowDeck(t *testing.T) {
	g := NewGame(randutil.New(2))

	// 8 cards left: below the floor, so a fresh 52 is dealt from.
	stackDeck(g, "2c3c4c5c6c7c8c9c")
	g.NewRound()
	assert.Equal(t, 48, g.Remaining())

	// 40 cards left: the existing deck is reused.
	g = NewGame(randutil.New(2))
	for i := 0; i < 12; i++ {
		g.deck.Draw()
	}
	require.Equal(t, 40, g.Remaining())
	g.NewRound()
	assert.Equal(t, 36, g.Remaining())
}

func TestHitDrawsOneCard(t *testing.T) {
	g := NewGame(randutil.New(3))
	g.NewRound()

	before := g.Player().Count()
	remaining := g.Remaining()
	g.Hit()

	assert.Equal(t, before+1, g.Player().Count())
	assert.Equal(t, remaining-1, g.Remaining())
}

func TestHitBustEndsRound(t *testing.T) {
	g := NewGame(randutil.New(4))
	g.NewRound()
	setHands(g, "KcQc", "5h6h")
	stackDeck(g, "Jd")

	g.Hit()

	assert.False(t, g.InRound())
	assert.Equal(t, OutcomeDealer, g.Outcome())
	// The dealer does not play out a busted round.
	assert.Equal(t, 2, g.Dealer().Count())
}

func TestStandDealerDrawsToSeventeen(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := NewGame(randutil.New(seed))
		g.NewRound()
		g.Stand()

		assert.False(t, g.InRound())
		assert.NotEqual(t, OutcomeNone, g.Outcome())
		dealer := g.Dealer()
		if !dealer.IsBust() {
			assert.GreaterOrEqual(t, dealer.Value(), 17, "dealer stopped early: %s", dealer)
		}
		// The dealer's hand minus its last draw must have been under 17.
		if dealer.Count() > 2 {
			withoutLast := Hand{cards: dealer.Cards()[:dealer.Count()-1]}
			assert.Less(t, withoutLast.Value(), 17, "dealer overdrew: %s", dealer)
		}
	}
}

func TestStandOnSoftSeventeen(t *testing.T) {
	g := NewGame(randutil.New(5))
	g.NewRound()
	setHands(g, "Th8s", "As6h") // dealer soft 17
	remaining := g.Remaining()

	g.Stand()

	// Value-based policy only: soft 17 stands like hard 17.
	assert.Equal(t, 2, g.Dealer().Count())
	assert.Equal(t, remaining, g.Remaining())
	assert.Equal(t, OutcomePlayer, g.Outcome())
}

func TestCompareOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		player  string
		dealer  string
		outcome Outcome
	}{
		{"higher total wins", "Th9s", "9h9c", OutcomePlayer},
		{"equal totals push", "Th9s", "Th9c", OutcomePush},
		{"lower total loses", "Th9s", "ThKc", OutcomeDealer},
		{"dealer bust", "Th9s", "KcQc2c", OutcomePlayer},
		{"player bust", "KcQc2c", "Th9s", OutcomeDealer},
		{"both at twenty one", "AsKh", "7h7d7c", OutcomePush},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame(randutil.New(1))
			setHands(g, tt.player, tt.dealer)
			assert.Equal(t, tt.outcome, g.compare())
		})
	}
}

// Swapping the hands must flip player/dealer results and preserve pushes.
func TestCompareAntisymmetric(t *testing.T) {
	pairs := [][2]string{
		{"Th9s", "9h9c"},
		{"Th9s", "Th9c"},
		{"Th9s", "ThKc"},
		{"AsKh", "Th9c"},
		{"KcQc2c", "Th9s"},
		{"5h6c", "AsAh"},
	}

	flip := map[Outcome]Outcome{
		OutcomePlayer: OutcomeDealer,
		OutcomeDealer: OutcomePlayer,
		OutcomePush:   OutcomePush,
	}

	for _, pair := range pairs {
		g := NewGame(randutil.New(1))
		setHands(g, pair[0], pair[1])
		forward := g.compare()

		setHands(g, pair[1], pair[0])
		backward := g.compare()

		assert.Equal(t, flip[forward], backward, "hands %v", pair)
	}
}

func TestCommandsOutsideRoundAreNoOps(t *testing.T) {
	g := NewGame(randutil.New(6))

	remaining := g.Remaining()
	g.Hit()
	g.Stand()

	assert.False(t, g.InRound())
	assert.Equal(t, OutcomeNone, g.Outcome())
	assert.Equal(t, 0, g.Player().Count())
	assert.Equal(t, 0, g.Dealer().Count())
	assert.Equal(t, remaining, g.Remaining())

	// Same once a round has been resolved.
	g.NewRound()
	setHands(g, "Th9s", "ThKc")
	g.Stand()
	require.False(t, g.InRound())

	outcome := g.Outcome()
	player := g.Player().Cards()
	remaining = g.Remaining()
	g.Hit()
	g.Stand()

	assert.Equal(t, outcome, g.Outcome())
	assert.Equal(t, player, g.Player().Cards())
	assert.Equal(t, remaining, g.Remaining())
}

func TestReset(t *testing.T) {
	g := NewGame(randutil.New(7))
	g.NewRound()
	g.Hit()
	g.Reset()

	assert.False(t, g.InRound())
	assert.Equal(t, OutcomeNone, g.Outcome())
	assert.Equal(t, 0, g.Player().Count())
	assert.Equal(t, 0, g.Dealer().Count())
	assert.Equal(t, 52, g.Remaining())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "none", OutcomeNone.String())
	assert.Equal(t, "player", OutcomePlayer.String())
	assert.Equal(t, "dealer", OutcomeDealer.String())
	assert.Equal(t, "push", OutcomePush.String())
}

func TestSessionIsReproducible(t *testing.T) {
	g1 := NewGame(randutil.New(99))
	g2 := NewGame(randutil.New(99))

	for i := 0; i < 10; i++ {
		g1.NewRound()
		g2.NewRound()
		require.Equal(t, g1.Player().Cards(), g2.Player().Cards())
		require.Equal(t, g1.Dealer().Cards(), g2.Dealer().Cards())
		g1.Stand()
		g2.Stand()
		require.Equal(t, g1.Outcome(), g2.Outcome())
	}
}
