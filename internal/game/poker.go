package game

import "errors"

// PokerBet is the fixed wager for one five-card draw hand.
const PokerBet int64 = 25

var ErrAlreadyDrawn = errors.New("already_drawn")

// PokerHand is one in-flight draw poker round: five dealt cards and at most
// one draw phase. A second deal means an entirely new hand.
type PokerHand struct {
	cards [5]Card
	drawn bool
}

// DealHand deals five cards from a freshly shuffled deck.
func DealHand(src DrawSource) *PokerHand {
	deck := NewShuffledDeck(src)
	h := &PokerHand{}
	for i := range h.cards {
		h.cards[i] = deck.Deal()
	}
	return h
}

func (h *PokerHand) Cards() [5]Card { return h.cards }

func (h *PokerHand) Drawn() bool { return h.drawn }

// Draw replaces every non-held card with one drawn from a fresh shuffled
// deck, skipping any card already present in the hand so the five cards stay
// unique. Held cards keep their positions. Only one draw is allowed.
func (h *PokerHand) Draw(src DrawSource, holds [5]bool) error {
	if h.drawn {
		return ErrAlreadyDrawn
	}
	deck := NewShuffledDeck(src)
	for i := range h.cards {
		if holds[i] {
			continue
		}
		for deck.Remaining() > 0 {
			c := deck.Deal()
			if !h.contains(c) {
				h.cards[i] = c
				break
			}
		}
	}
	h.drawn = true
	return nil
}

func (h *PokerHand) contains(c Card) bool {
	for _, hc := range h.cards {
		if hc == c {
			return true
		}
	}
	return false
}

// Evaluate classifies the current five cards.
func (h *PokerHand) Evaluate() HandResult {
	return EvaluateHand(h.cards)
}
