package store

import "time"

type GameType string

const (
	GameSlots  GameType = "slots"
	GameMemory GameType = "memory"
	GamePoker  GameType = "poker"
)

func (g GameType) Valid() bool {
	switch g {
	case GameSlots, GameMemory, GamePoker:
		return true
	}
	return false
}

type EntryKind string

const (
	KindBet EntryKind = "bet"
	KindWin EntryKind = "win"
)

// LedgerEntry is one immutable balance movement. Rows are append-only;
// BalanceBefore/BalanceAfter are captured at write time inside the same
// transaction that mutates the account.
type LedgerEntry struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	GameType      GameType  `json:"game_type"`
	Kind          EntryKind `json:"kind"`
	Amount        int64     `json:"amount"`
	BalanceBefore int64     `json:"balance_before"`
	BalanceAfter  int64     `json:"balance_after"`
	CreatedAt     time.Time `json:"created_at"`
}

type Account struct {
	UserID    string
	Balance   int64
	UpdatedAt time.Time
}
