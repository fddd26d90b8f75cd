package ledger

import (
	"context"
	"errors"
	"fmt"

	"redluck-casino/internal/game"
	"redluck-casino/internal/store"
)

// Store is the transaction log collaborator: atomic debit/credit that append
// the matching ledger row in the same transaction, plus entry queries.
type Store interface {
	GetBalance(ctx context.Context, userID string) (int64, error)
	Debit(ctx context.Context, userID string, g store.GameType, amount int64) (*store.LedgerEntry, error)
	Credit(ctx context.Context, userID string, g store.GameType, amount int64) (*store.LedgerEntry, error)
	ListEntries(ctx context.Context, userID string, limit int) ([]store.LedgerEntry, error)
}

var (
	ErrInsufficientBalance = store.ErrInsufficientBalance
	ErrInvalidWager        = errors.New("invalid_wager")
	ErrRoundClosed         = errors.New("round_closed")
)

const defaultHistoryLimit = 50

// Engine owns every balance movement. A wager is accepted only through
// PlaceBet and a win credited only through the round it returns, so the
// spendable balance is always the cumulative sum of ledger entries.
type Engine struct {
	store Store
}

func New(st Store) *Engine {
	return &Engine{store: st}
}

// PlaceBet validates the wager, atomically debits it and appends the bet
// entry. A wager the balance cannot cover is rejected with
// ErrInsufficientBalance and nothing is written.
func (e *Engine) PlaceBet(ctx context.Context, userID string, g store.GameType, amount int64) (*Round, error) {
	if err := validateWager(g, amount); err != nil {
		return nil, err
	}
	entry, err := e.store.Debit(ctx, userID, g, amount)
	if err != nil {
		if errors.Is(err, store.ErrInsufficientBalance) {
			return nil, ErrInsufficientBalance
		}
		return nil, fmt.Errorf("debit wager: %w", err)
	}
	return &Round{
		engine:   e,
		UserID:   userID,
		Game:     g,
		Wager:    amount,
		BetEntry: entry,
		state:    StatePending,
	}, nil
}

func validateWager(g store.GameType, amount int64) error {
	switch g {
	case store.GameSlots:
		if !game.ValidSlotsBet(amount) {
			return ErrInvalidWager
		}
	case store.GameMemory:
		if amount != game.MemoryBet {
			return ErrInvalidWager
		}
	case store.GamePoker:
		if amount != game.PokerBet {
			return ErrInvalidWager
		}
	default:
		return ErrInvalidWager
	}
	return nil
}

func (e *Engine) Balance(ctx context.Context, userID string) (int64, error) {
	return e.store.GetBalance(ctx, userID)
}

// History returns the user's ledger entries newest first.
func (e *Engine) History(ctx context.Context, userID string, limit int) ([]store.LedgerEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return e.store.ListEntries(ctx, userID, limit)
}
