package game

import "testing"

func TestDealHandUniqueCards(t *testing.T) {
	src := NewSeededDrawSource(7)
	for i := 0; i < 50; i++ {
		h := DealHand(src)
		seen := map[Card]bool{}
		for _, c := range h.Cards() {
			if seen[c] {
				t.Fatalf("duplicate card %s in dealt hand", c)
			}
			seen[c] = true
		}
	}
}

func TestDrawKeepsHeldCards(t *testing.T) {
	src := NewSeededDrawSource(11)
	h := DealHand(src)
	before := h.Cards()

	if err := h.Draw(src, [5]bool{true, false, true, false, true}); err != nil {
		t.Fatalf("draw: %v", err)
	}
	after := h.Cards()
	for _, i := range []int{0, 2, 4} {
		if after[i] != before[i] {
			t.Fatalf("held card %d changed: %s -> %s", i, before[i], after[i])
		}
	}
}

func TestDrawProducesUniqueHand(t *testing.T) {
	src := NewSeededDrawSource(13)
	for i := 0; i < 50; i++ {
		h := DealHand(src)
		if err := h.Draw(src, [5]bool{}); err != nil {
			t.Fatalf("draw: %v", err)
		}
		seen := map[Card]bool{}
		for _, c := range h.Cards() {
			if seen[c] {
				t.Fatalf("duplicate card %s after draw", c)
			}
			seen[c] = true
		}
	}
}

func TestDrawAllHeldKeepsHand(t *testing.T) {
	src := NewSeededDrawSource(17)
	h := DealHand(src)
	before := h.Cards()
	if err := h.Draw(src, [5]bool{true, true, true, true, true}); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if h.Cards() != before {
		t.Fatalf("hand changed with all cards held")
	}
}

func TestSecondDrawRejected(t *testing.T) {
	src := NewSeededDrawSource(19)
	h := DealHand(src)
	if err := h.Draw(src, [5]bool{}); err != nil {
		t.Fatalf("first draw: %v", err)
	}
	if err := h.Draw(src, [5]bool{}); err != ErrAlreadyDrawn {
		t.Fatalf("second draw err = %v, want ErrAlreadyDrawn", err)
	}
}

func TestShuffledDeckIsPermutation(t *testing.T) {
	d := NewShuffledDeck(NewSeededDrawSource(23))
	if d.Remaining() != 52 {
		t.Fatalf("deck size = %d, want 52", d.Remaining())
	}
	seen := map[Card]bool{}
	for d.Remaining() > 0 {
		c := d.Deal()
		if seen[c] {
			t.Fatalf("duplicate card %s in deck", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Fatalf("unique cards = %d, want 52", len(seen))
	}
}
