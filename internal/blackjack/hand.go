package blackjack

import "strings"

// Hand is an ordered collection of cards dealt to one party. Hands are
// owned and mutated by the Game; external callers read through Cards(),
// which copies.
type Hand struct {
	cards []Card
}

// NewHand builds a hand from existing cards. The game deals into its own
// hands; this constructor is for callers that need valuation over an
// arbitrary card set, such as partial-reveal displays and tests.
func NewHand(cards ...Card) *Hand {
	h := &Hand{cards: make([]Card, len(cards))}
	copy(h.cards, cards)
	return h
}

func (h *Hand) add(c Card) {
	h.cards = append(h.cards, c)
}

func (h *Hand) reset() {
	h.cards = h.cards[:0]
}

// Cards returns a copy of the hand's cards in deal order
func (h *Hand) Cards() []Card {
	cards := make([]Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// Count returns the number of cards in the hand
func (h *Hand) Count() int {
	return len(h.cards)
}

// Value returns the best total under the soft-ace rule. Every Ace starts
// counted as 1, then Aces are upgraded to 11 (+10 each) while the total
// stays at or below 21. Aces are fungible, so only the number of upgrades
// matters and the greedy pass finds the maximum non-busting total.
func (h *Hand) Value() int {
	total, aces := 0, 0
	for _, c := range h.cards {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for ; aces > 0 && total+10 <= 21; aces-- {
		total += 10
	}
	return total
}

// IsBlackjack reports a natural: exactly two cards totalling 21
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Value() == 21
}

// IsBust reports a total over 21
func (h *Hand) IsBust() bool {
	return h.Value() > 21
}

// String returns the hand as space-separated cards (e.g., "A♠ K♥")
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// clone returns an independent copy for read-only callers
func (h *Hand) clone() Hand {
	return Hand{cards: h.Cards()}
}
