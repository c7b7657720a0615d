package blackjack

import rand "math/rand/v2"

// Outcome identifies the winner of a resolved round
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlayer
	OutcomeDealer
	OutcomePush
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomePlayer:
		return "player"
	case OutcomeDealer:
		return "dealer"
	case OutcomePush:
		return "push"
	default:
		return "none"
	}
}

// minDeckForRound is the fewest cards a round may start with. Below this
// the deck is replaced wholesale so the initial deal plus dealer auto-play
// cannot exhaust it mid-round.
const minDeckForRound = 10

// dealerStand is the total at which the dealer stops drawing. Soft and
// hard totals are treated alike.
const dealerStand = 17

// Game is the round state machine. It owns the deck and both hands and is
// their sole mutator; the presentation layer drives it through NewRound,
// Hit and Stand and reads state back through the query methods.
//
// All commands run synchronously to completion and are silent no-ops when
// their preconditions fail. The Game is not safe for concurrent use; it is
// designed to be driven from a single event loop.
type Game struct {
	deck    *Deck
	player  Hand
	dealer  Hand
	inRound bool
	outcome Outcome
	rng     *rand.Rand
}

// NewGame creates a game with a freshly shuffled deck. The RNG seeds every
// deck the game ever creates, so a seeded RNG gives a fully reproducible
// session.
func NewGame(rng *rand.Rand) *Game {
	return &Game{
		deck: NewDeck(rng),
		rng:  rng,
	}
}

// Reset reinitializes the session: new deck, empty hands, not in a round
func (g *Game) Reset() {
	g.deck = NewDeck(g.rng)
	g.player.reset()
	g.dealer.reset()
	g.inRound = false
	g.outcome = OutcomeNone
}

// NewRound clears both hands and deals the opening cards alternating
// player, dealer, player, dealer. The existing deck is reused unless fewer
// than minDeckForRound cards remain, in which case it is replaced with a
// fresh shuffled 52.
func (g *Game) NewRound() {
	g.player.reset()
	g.dealer.reset()
	if g.deck.Remaining() < minDeckForRound {
		g.deck = NewDeck(g.rng)
	}
	g.player.add(g.deck.Draw())
	g.dealer.add(g.deck.Draw())
	g.player.add(g.deck.Draw())
	g.dealer.add(g.deck.Draw())
	g.inRound = true
	g.outcome = OutcomeNone
}

// Hit draws one card for the player. Busting ends the round immediately
// with the dealer winning; the dealer does not play. No-op outside a round.
func (g *Game) Hit() {
	if !g.inRound {
		return
	}
	g.player.add(g.deck.Draw())
	if g.player.IsBust() {
		g.outcome = OutcomeDealer
		g.inRound = false
	}
}

// Stand ends the player's turn. The dealer draws until reaching
// dealerStand or more, then the round resolves by comparing totals.
// No-op outside a round.
func (g *Game) Stand() {
	if !g.inRound {
		return
	}
	for g.dealer.Value() < dealerStand {
		g.dealer.add(g.deck.Draw())
	}
	g.inRound = false
	g.outcome = g.compare()
}

// compare resolves the round from the final hands alone. A busted player
// loses even though Hit ends those rounds before Stand can run. Naturals
// carry no bonus; a two-card 21 compares like any other 21.
func (g *Game) compare() Outcome {
	if g.player.IsBust() {
		return OutcomeDealer
	}
	if g.dealer.IsBust() {
		return OutcomePlayer
	}
	pv, dv := g.player.Value(), g.dealer.Value()
	switch {
	case pv > dv:
		return OutcomePlayer
	case dv > pv:
		return OutcomeDealer
	default:
		return OutcomePush
	}
}

// Shuffle re-randomizes the order of the remaining deck
func (g *Game) Shuffle() {
	g.deck.Shuffle()
}

// Remaining returns the number of undrawn cards
func (g *Game) Remaining() int {
	return g.deck.Remaining()
}

// Player returns a read copy of the player's hand
func (g *Game) Player() *Hand {
	h := g.player.clone()
	return &h
}

// Dealer returns a read copy of the dealer's hand
func (g *Game) Dealer() *Hand {
	h := g.dealer.clone()
	return &h
}

// InRound returns true while a round is being played
func (g *Game) InRound() bool {
	return g.inRound
}

// Outcome returns the result of the last resolved round, or OutcomeNone
// while a round is in progress
func (g *Game) Outcome() Outcome {
	return g.outcome
}
