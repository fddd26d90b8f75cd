package public

import (
	"time"

	"redluck-casino/internal/ledger"
)

type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

type HistoryItem struct {
	ID            string    `json:"id"`
	GameType      string    `json:"game_type"`
	Kind          string    `json:"kind"`
	Amount        int64     `json:"amount"`
	BalanceBefore int64     `json:"balance_before"`
	BalanceAfter  int64     `json:"balance_after"`
	CreatedAt     time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}

type StatsResponse struct {
	Stats ledger.Stats `json:"stats"`
}
