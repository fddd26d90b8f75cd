package ledger

import (
	"context"
	"testing"

	"redluck-casino/internal/store"
)

func TestStatsEmptyLedger(t *testing.T) {
	eng, _ := newTestEngine()
	st, err := eng.Stats(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st != (Stats{}) {
		t.Fatalf("stats = %+v, want all zeros", st)
	}
}

func TestStatsFold(t *testing.T) {
	ctx := context.Background()
	eng, _ := newTestEngine()

	round, err := eng.PlaceBet(ctx, "u1", store.GameSlots, 10)
	if err != nil {
		t.Fatalf("place bet: %v", err)
	}
	if _, err := round.SettleWin(ctx, 20); err != nil {
		t.Fatalf("settle win: %v", err)
	}

	st, err := eng.Stats(ctx, "u1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	want := Stats{BetCount: 1, WinCount: 1, TotalBetAmount: 10, TotalWinAmount: 20, NetProfit: 10}
	if st != want {
		t.Fatalf("stats = %+v, want %+v", st, want)
	}
}

func TestStatsCountsEveryEntryOnce(t *testing.T) {
	ctx := context.Background()
	eng, _ := newTestEngine()

	for i := 0; i < 4; i++ {
		round, err := eng.PlaceBet(ctx, "u1", store.GamePoker, 25)
		if err != nil {
			t.Fatalf("place bet: %v", err)
		}
		if i%2 == 0 {
			if _, err := round.SettleWin(ctx, 50); err != nil {
				t.Fatalf("settle win: %v", err)
			}
		} else if err := round.SettleNoWin(); err != nil {
			t.Fatalf("settle no-win: %v", err)
		}
	}

	st, err := eng.Stats(ctx, "u1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	want := Stats{BetCount: 4, WinCount: 2, TotalBetAmount: 100, TotalWinAmount: 100, NetProfit: 0}
	if st != want {
		t.Fatalf("stats = %+v, want %+v", st, want)
	}
}
