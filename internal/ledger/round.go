package ledger

import (
	"context"
	"fmt"

	"redluck-casino/internal/store"
)

type State int

const (
	StatePending State = iota
	StateSettledWin
	StateSettledNoWin
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateSettledWin:
		return "settled_win"
	case StateSettledNoWin:
		return "settled_no_win"
	}
	return "unknown"
}

// Round is one accepted wager. It is created only by a successful PlaceBet
// (a rejected wager never produces a round) and settles exactly once, so a
// round writes one bet entry and at most one win entry.
type Round struct {
	engine *Engine

	UserID   string
	Game     store.GameType
	Wager    int64
	BetEntry *store.LedgerEntry
	WinEntry *store.LedgerEntry

	state State
}

func (r *Round) State() State { return r.state }

// SettleWin credits amount and appends the win entry. amount is the wager
// times the evaluator's multiplier (or the memory payout formula).
func (r *Round) SettleWin(ctx context.Context, amount int64) (*store.LedgerEntry, error) {
	if r.state != StatePending {
		return nil, ErrRoundClosed
	}
	entry, err := r.engine.store.Credit(ctx, r.UserID, r.Game, amount)
	if err != nil {
		return nil, fmt.Errorf("credit win: %w", err)
	}
	r.WinEntry = entry
	r.state = StateSettledWin
	return entry, nil
}

// SettleNoWin closes the round without a win entry.
func (r *Round) SettleNoWin() error {
	if r.state != StatePending {
		return ErrRoundClosed
	}
	r.state = StateSettledNoWin
	return nil
}
