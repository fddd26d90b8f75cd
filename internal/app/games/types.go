package games

import "redluck-casino/internal/game"

type SpinResponse struct {
	Reels      []game.Symbol `json:"reels"`
	Outcome    string        `json:"outcome"`
	Multiplier int64         `json:"multiplier"`
	WinAmount  int64         `json:"win_amount"`
	Balance    int64         `json:"balance"`
}

type DealResponse struct {
	RoundID string   `json:"round_id"`
	Cards   []string `json:"cards"`
	Wager   int64    `json:"wager"`
	Balance int64    `json:"balance"`
}

type DrawResponse struct {
	Cards      []string `json:"cards"`
	Outcome    string   `json:"outcome"`
	Multiplier int64    `json:"multiplier"`
	WinAmount  int64    `json:"win_amount"`
	Balance    int64    `json:"balance"`
}

type MemoryStartResponse struct {
	Cells   int   `json:"cells"`
	Wager   int64 `json:"wager"`
	Balance int64 `json:"balance"`
}

type MemoryFlipResponse struct {
	Index        int         `json:"index"`
	Symbol       game.Symbol `json:"symbol"`
	PairResolved bool        `json:"pair_resolved"`
	PairMatched  bool        `json:"pair_matched"`
	Moves        int         `json:"moves"`
	Completed    bool        `json:"completed"`
	WinAmount    int64       `json:"win_amount,omitempty"`
	Balance      int64       `json:"balance"`
}
