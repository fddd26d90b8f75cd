package store

import (
	"context"
	"sync"
	"time"
)

// MemStore keeps accounts and the transaction log in memory, guarded by a
// single mutex so check-then-debit is atomic. It backs unit tests and mirrors
// the Postgres store's contract exactly, including the first-use grant.
type MemStore struct {
	mu      sync.Mutex
	initial int64

	balances map[string]int64
	entries  map[string][]LedgerEntry

	// FailAppends forces entry inserts to fail, for exercising rollback paths.
	FailAppends bool
}

func NewMem(initialBalance int64) *MemStore {
	return &MemStore{
		initial:  initialBalance,
		balances: make(map[string]int64),
		entries:  make(map[string][]LedgerEntry),
	}
}

var errAppendFailed = &appendError{}

type appendError struct{}

func (*appendError) Error() string { return "append_failed" }

func (m *MemStore) balanceLocked(userID string) int64 {
	if _, ok := m.balances[userID]; !ok {
		m.balances[userID] = m.initial
	}
	return m.balances[userID]
}

func (m *MemStore) GetBalance(_ context.Context, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balanceLocked(userID), nil
}

func (m *MemStore) Debit(_ context.Context, userID string, game GameType, amount int64) (*LedgerEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bal := m.balanceLocked(userID)
	if bal < amount {
		return nil, ErrInsufficientBalance
	}
	if m.FailAppends {
		return nil, errAppendFailed
	}
	e := LedgerEntry{
		ID:            NewID(),
		UserID:        userID,
		GameType:      game,
		Kind:          KindBet,
		Amount:        amount,
		BalanceBefore: bal,
		BalanceAfter:  bal - amount,
		CreatedAt:     time.Now().UTC(),
	}
	m.balances[userID] = e.BalanceAfter
	m.entries[userID] = append(m.entries[userID], e)
	return &e, nil
}

func (m *MemStore) Credit(_ context.Context, userID string, game GameType, amount int64) (*LedgerEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bal := m.balanceLocked(userID)
	if m.FailAppends {
		return nil, errAppendFailed
	}
	e := LedgerEntry{
		ID:            NewID(),
		UserID:        userID,
		GameType:      game,
		Kind:          KindWin,
		Amount:        amount,
		BalanceBefore: bal,
		BalanceAfter:  bal + amount,
		CreatedAt:     time.Now().UTC(),
	}
	m.balances[userID] = e.BalanceAfter
	m.entries[userID] = append(m.entries[userID], e)
	return &e, nil
}

func (m *MemStore) ListEntries(_ context.Context, userID string, limit int) ([]LedgerEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.entries[userID]
	out := make([]LedgerEntry, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		out = append(out, all[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
