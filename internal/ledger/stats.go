package ledger

import (
	"context"

	"redluck-casino/internal/store"
)

type Stats struct {
	BetCount       int64 `json:"bet_count"`
	WinCount       int64 `json:"win_count"`
	TotalBetAmount int64 `json:"total_bet_amount"`
	TotalWinAmount int64 `json:"total_win_amount"`
	NetProfit      int64 `json:"net_profit"`
}

// Stats folds the user's full ledger into totals. An empty ledger yields all
// zeros; fetch order does not matter to the fold.
func (e *Engine) Stats(ctx context.Context, userID string) (Stats, error) {
	entries, err := e.store.ListEntries(ctx, userID, 0)
	if err != nil {
		return Stats{}, err
	}
	var st Stats
	for _, entry := range entries {
		switch entry.Kind {
		case store.KindBet:
			st.BetCount++
			st.TotalBetAmount += entry.Amount
		case store.KindWin:
			st.WinCount++
			st.TotalWinAmount += entry.Amount
		}
	}
	st.NetProfit = st.TotalWinAmount - st.TotalBetAmount
	return st, nil
}
