package public

import (
	"context"

	"redluck-casino/internal/ledger"
)

const historyMaxRows = 200

type Service struct {
	ledger *ledger.Engine
}

func NewService(eng *ledger.Engine) *Service {
	return &Service{ledger: eng}
}

func (s *Service) Balance(ctx context.Context, userID string) (*BalanceResponse, error) {
	bal, err := s.ledger.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &BalanceResponse{Balance: bal}, nil
}

func (s *Service) History(ctx context.Context, userID string, limit int) (*HistoryResponse, error) {
	if limit > historyMaxRows {
		limit = historyMaxRows
	}
	entries, err := s.ledger.History(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	items := make([]HistoryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, HistoryItem{
			ID:            e.ID,
			GameType:      string(e.GameType),
			Kind:          string(e.Kind),
			Amount:        e.Amount,
			BalanceBefore: e.BalanceBefore,
			BalanceAfter:  e.BalanceAfter,
			CreatedAt:     e.CreatedAt,
		})
	}
	return &HistoryResponse{Items: items}, nil
}

func (s *Service) Stats(ctx context.Context, userID string) (*StatsResponse, error) {
	st, err := s.ledger.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &StatsResponse{Stats: st}, nil
}
