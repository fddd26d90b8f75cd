package game

import "testing"

func TestNewMemoryBoardPairsUp(t *testing.T) {
	b := NewMemoryBoard(NewSeededDrawSource(3))
	if b.Size() != 16 {
		t.Fatalf("board size = %d, want 16", b.Size())
	}
	counts := map[Symbol]int{}
	for _, c := range b.cells {
		counts[c.symbol]++
	}
	if len(counts) != 8 {
		t.Fatalf("symbol kinds = %d, want 8", len(counts))
	}
	for s, n := range counts {
		if n != 2 {
			t.Fatalf("symbol %q appears %d times, want 2", s, n)
		}
	}
}

// With the identity shuffle the board stays laid out in adjacent pairs, so
// the whole game is deterministic.
func TestMemoryPerfectGame(t *testing.T) {
	b := NewMemoryBoard(identitySource{})
	for i := 0; i < 16; i += 2 {
		first, err := b.Flip(i)
		if err != nil {
			t.Fatalf("flip %d: %v", i, err)
		}
		if first.PairResolved {
			t.Fatalf("flip %d resolved a pair on the first card", i)
		}
		second, err := b.Flip(i + 1)
		if err != nil {
			t.Fatalf("flip %d: %v", i+1, err)
		}
		if !second.PairMatched {
			t.Fatalf("flip %d did not match its neighbor", i+1)
		}
	}
	if !b.Completed() {
		t.Fatal("board not completed after matching all pairs")
	}
	if b.Moves() != 8 {
		t.Fatalf("moves = %d, want 8", b.Moves())
	}
}

func TestMemoryMismatchRevertsOnNextFlip(t *testing.T) {
	b := NewMemoryBoard(identitySource{})
	// cells 0,1 share a symbol; 0,2 do not
	if _, err := b.Flip(0); err != nil {
		t.Fatalf("flip 0: %v", err)
	}
	res, err := b.Flip(2)
	if err != nil {
		t.Fatalf("flip 2: %v", err)
	}
	if res.PairMatched {
		t.Fatal("mismatched pair reported as matched")
	}
	if res.Moves != 1 {
		t.Fatalf("moves = %d, want 1", res.Moves)
	}
	if got := len(b.Revealed()); got != 2 {
		t.Fatalf("revealed cells = %d, want 2", got)
	}
	// next flip reverts the mismatch first
	if _, err := b.Flip(0); err != nil {
		t.Fatalf("reflip 0: %v", err)
	}
	if got := len(b.Revealed()); got != 1 {
		t.Fatalf("revealed cells after revert = %d, want 1", got)
	}
}

func TestMemoryFlipErrors(t *testing.T) {
	b := NewMemoryBoard(identitySource{})
	if _, err := b.Flip(-1); err != ErrInvalidCell {
		t.Fatalf("flip(-1) err = %v, want ErrInvalidCell", err)
	}
	if _, err := b.Flip(16); err != ErrInvalidCell {
		t.Fatalf("flip(16) err = %v, want ErrInvalidCell", err)
	}
	if _, err := b.Flip(0); err != nil {
		t.Fatalf("flip 0: %v", err)
	}
	if _, err := b.Flip(0); err != ErrCellRevealed {
		t.Fatalf("double flip err = %v, want ErrCellRevealed", err)
	}
	if _, err := b.Flip(1); err != nil {
		t.Fatalf("flip 1: %v", err)
	}
	// 0 and 1 are matched now
	if _, err := b.Flip(1); err != ErrCellRevealed {
		t.Fatalf("flip of matched cell err = %v, want ErrCellRevealed", err)
	}
}

func TestMemoryPayout(t *testing.T) {
	tests := []struct {
		wager int64
		moves int
		want  int64
	}{
		{20, 8, 20},  // 60 - 40 floors at the wager
		{20, 4, 40},  // 60 - 20
		{20, 0, 60},  // full triple
		{20, 50, 20}, // deep into the floor
	}
	for _, tt := range tests {
		if got := MemoryPayout(tt.wager, tt.moves); got != tt.want {
			t.Fatalf("MemoryPayout(%d, %d) = %d, want %d", tt.wager, tt.moves, got, tt.want)
		}
	}
}
