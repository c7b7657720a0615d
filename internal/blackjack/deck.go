package blackjack

import rand "math/rand/v2"

// Deck represents an ordered sequence of cards that deals from the end.
// The random source is injected so games and tests can be reproduced from
// a seed.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a full shuffled 52-card deck using the provided RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: fullDeck(),
		rng:   rng,
	}
	d.Shuffle()
	return d
}

func fullDeck() []Card {
	cards := make([]Card, 0, 52)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// Shuffle re-randomizes the order of the remaining cards in place.
// Membership is unchanged: cards already dealt stay dealt.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card. An empty deck is first replaced
// with a brand-new shuffled 52, so drawing never fails.
func (d *Deck) Draw() Card {
	if len(d.cards) == 0 {
		d.replace()
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card
}

// replace swaps in a fresh full deck, discarding whatever remained.
// Previously dealt cards are not returned.
func (d *Deck) replace() {
	d.cards = fullDeck()
	d.Shuffle()
}

// Remaining returns the number of undrawn cards
func (d *Deck) Remaining() int {
	return len(d.cards)
}
