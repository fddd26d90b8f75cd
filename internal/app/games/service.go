package games

import (
	"context"
	"sync"

	"redluck-casino/internal/game"
	"redluck-casino/internal/ledger"
	"redluck-casino/internal/store"

	"github.com/rs/zerolog/log"
)

// Service runs the per-user game rounds. Round state is transient: a round
// exists from wager placement until it settles, and placing the next wager
// on the same game abandons whatever round was still open. All balance
// movement goes through the ledger engine.
type Service struct {
	ledger *ledger.Engine
	src    game.DrawSource

	mu     sync.Mutex
	locks  map[string]*sync.Mutex
	poker  map[string]*pokerRound
	memory map[string]*memoryRound
}

type pokerRound struct {
	round *ledger.Round
	hand  *game.PokerHand
}

type memoryRound struct {
	round *ledger.Round
	board *game.MemoryBoard
}

func NewService(eng *ledger.Engine, src game.DrawSource) *Service {
	return &Service{
		ledger: eng,
		src:    src,
		locks:  make(map[string]*sync.Mutex),
		poker:  make(map[string]*pokerRound),
		memory: make(map[string]*memoryRound),
	}
}

// userLock serializes wagers and round interactions per user. Two concurrent
// wagers by one user must not both pass admission against a stale balance;
// different users never contend.
func (s *Service) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// Spin runs a full slots round: bet, draw three reels, settle.
func (s *Service) Spin(ctx context.Context, userID string, bet int64) (*SpinResponse, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	round, err := s.ledger.PlaceBet(ctx, userID, store.GameSlots, bet)
	if err != nil {
		return nil, err
	}
	reels := game.DrawReels(s.src)
	res := game.EvaluateReels(reels)
	balance := round.BetEntry.BalanceAfter
	var winAmount int64
	if res.Multiplier > 0 {
		winAmount = bet * res.Multiplier
		entry, err := round.SettleWin(ctx, winAmount)
		if err != nil {
			return nil, err
		}
		balance = entry.BalanceAfter
	} else if err := round.SettleNoWin(); err != nil {
		return nil, err
	}
	log.Debug().Str("user_id", userID).Str("outcome", res.Name).Int64("win", winAmount).Msg("slots spin settled")
	return &SpinResponse{
		Reels:      reels[:],
		Outcome:    res.Name,
		Multiplier: res.Multiplier,
		WinAmount:  winAmount,
		Balance:    balance,
	}, nil
}

// PokerDeal places the fixed poker wager and deals five cards. Any hand left
// undrawn from a previous deal is abandoned without a win entry.
func (s *Service) PokerDeal(ctx context.Context, userID string) (*DealResponse, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	round, err := s.ledger.PlaceBet(ctx, userID, store.GamePoker, game.PokerBet)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	if prev, ok := s.poker[userID]; ok {
		_ = prev.round.SettleNoWin()
	}
	hand := game.DealHand(s.src)
	s.poker[userID] = &pokerRound{round: round, hand: hand}
	s.mu.Unlock()

	return &DealResponse{
		RoundID: round.BetEntry.ID,
		Cards:   cardStrings(hand.Cards()),
		Wager:   game.PokerBet,
		Balance: round.BetEntry.BalanceAfter,
	}, nil
}

// PokerDraw replaces the non-held cards, evaluates the hand and settles.
// holds are card positions 0..4.
func (s *Service) PokerDraw(ctx context.Context, userID string, holds []int) (*DrawResponse, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	var held [5]bool
	for _, h := range holds {
		if h < 0 || h > 4 {
			return nil, ErrInvalidHold
		}
		held[h] = true
	}

	s.mu.Lock()
	pr, ok := s.poker[userID]
	s.mu.Unlock()
	if !ok {
		return nil, ErrNoActiveRound
	}
	if err := pr.hand.Draw(s.src, held); err != nil {
		return nil, err
	}
	res := pr.hand.Evaluate()
	balance := pr.round.BetEntry.BalanceAfter
	var winAmount int64
	if res.Multiplier > 0 {
		winAmount = pr.round.Wager * res.Multiplier
		entry, err := pr.round.SettleWin(ctx, winAmount)
		if err != nil {
			return nil, err
		}
		balance = entry.BalanceAfter
	} else if err := pr.round.SettleNoWin(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	delete(s.poker, userID)
	s.mu.Unlock()
	log.Debug().Str("user_id", userID).Str("outcome", res.Name).Int64("win", winAmount).Msg("poker hand settled")
	return &DrawResponse{
		Cards:      cardStrings(pr.hand.Cards()),
		Outcome:    res.Name,
		Multiplier: res.Multiplier,
		WinAmount:  winAmount,
		Balance:    balance,
	}, nil
}

// MemoryStart places the fixed memory wager and lays out a fresh board. An
// unfinished previous board is abandoned without a win entry.
func (s *Service) MemoryStart(ctx context.Context, userID string) (*MemoryStartResponse, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	round, err := s.ledger.PlaceBet(ctx, userID, store.GameMemory, game.MemoryBet)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	if prev, ok := s.memory[userID]; ok {
		_ = prev.round.SettleNoWin()
	}
	board := game.NewMemoryBoard(s.src)
	s.memory[userID] = &memoryRound{round: round, board: board}
	s.mu.Unlock()

	return &MemoryStartResponse{
		Cells:   board.Size(),
		Wager:   game.MemoryBet,
		Balance: round.BetEntry.BalanceAfter,
	}, nil
}

// MemoryFlip reveals one cell; completing the eighth pair settles the win.
func (s *Service) MemoryFlip(ctx context.Context, userID string, index int) (*MemoryFlipResponse, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	s.mu.Lock()
	mr, ok := s.memory[userID]
	s.mu.Unlock()
	if !ok {
		return nil, ErrNoActiveRound
	}
	flip, err := mr.board.Flip(index)
	if err != nil {
		return nil, err
	}
	resp := &MemoryFlipResponse{
		Index:        flip.Index,
		Symbol:       flip.Symbol,
		PairResolved: flip.PairResolved,
		PairMatched:  flip.PairMatched,
		Moves:        flip.Moves,
		Completed:    flip.Completed,
		Balance:      mr.round.BetEntry.BalanceAfter,
	}
	if flip.Completed {
		winAmount := game.MemoryPayout(mr.round.Wager, flip.Moves)
		entry, err := mr.round.SettleWin(ctx, winAmount)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		delete(s.memory, userID)
		s.mu.Unlock()
		resp.WinAmount = winAmount
		resp.Balance = entry.BalanceAfter
		log.Debug().Str("user_id", userID).Int("moves", flip.Moves).Int64("win", winAmount).Msg("memory board completed")
	}
	return resp, nil
}

func cardStrings(cards [5]game.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.String())
	}
	return out
}
