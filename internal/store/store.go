package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	ErrNotFound            = errors.New("not_found")
	ErrInsufficientBalance = errors.New("insufficient_balance")
)

// Store wraps DB access. Every balance mutation commits in the same
// transaction as its ledger row, so the account can never drift from the
// entry history.
type Store struct {
	DB      *sql.DB
	initial int64
}

// New opens a Postgres-backed store. initialBalance is the first-use grant
// credited to an account the first time a user is seen.
func New(dsn string, initialBalance int64) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	return &Store{DB: db, initial: initialBalance}, nil
}

func (s *Store) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.DB.PingContext(ctx)
}

func (s *Store) ensureAccount(ctx context.Context, q interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
}, userID string) error {
	_, err := q.ExecContext(ctx, `INSERT INTO accounts (user_id, balance) VALUES ($1,$2) ON CONFLICT (user_id) DO NOTHING`, userID, s.initial)
	return err
}

// GetBalance returns the user's spendable balance, granting the initial
// balance on first use.
func (s *Store) GetBalance(ctx context.Context, userID string) (int64, error) {
	if err := s.ensureAccount(ctx, s.DB, userID); err != nil {
		return 0, err
	}
	row := s.DB.QueryRowContext(ctx, `SELECT balance FROM accounts WHERE user_id = $1`, userID)
	var bal int64
	if err := row.Scan(&bal); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return bal, nil
}

// Debit atomically checks the balance, subtracts amount and appends the bet
// entry. Returns ErrInsufficientBalance without mutating anything when the
// account cannot cover the amount. The row lock on accounts serializes
// concurrent wagers for the same user.
func (s *Store) Debit(ctx context.Context, userID string, game GameType, amount int64) (*LedgerEntry, error) {
	if amount < 0 {
		return nil, errors.New("amount must be positive")
	}
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.ensureAccount(ctx, tx, userID); err != nil {
		return nil, err
	}
	var bal int64
	row := tx.QueryRowContext(ctx, `SELECT balance FROM accounts WHERE user_id = $1 FOR UPDATE`, userID)
	if err := row.Scan(&bal); err != nil {
		return nil, err
	}
	if bal < amount {
		return nil, ErrInsufficientBalance
	}
	newBal := bal - amount
	if _, err := tx.ExecContext(ctx, `UPDATE accounts SET balance = $1, updated_at = now() WHERE user_id = $2`, newBal, userID); err != nil {
		return nil, err
	}
	entry, err := insertEntry(ctx, tx, userID, game, KindBet, amount, bal, newBal)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return entry, nil
}

// Credit unconditionally adds amount and appends the win entry.
func (s *Store) Credit(ctx context.Context, userID string, game GameType, amount int64) (*LedgerEntry, error) {
	if amount < 0 {
		return nil, errors.New("amount must be positive")
	}
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.ensureAccount(ctx, tx, userID); err != nil {
		return nil, err
	}
	var bal int64
	row := tx.QueryRowContext(ctx, `SELECT balance FROM accounts WHERE user_id = $1 FOR UPDATE`, userID)
	if err := row.Scan(&bal); err != nil {
		return nil, err
	}
	newBal := bal + amount
	if _, err := tx.ExecContext(ctx, `UPDATE accounts SET balance = $1, updated_at = now() WHERE user_id = $2`, newBal, userID); err != nil {
		return nil, err
	}
	entry, err := insertEntry(ctx, tx, userID, game, KindWin, amount, bal, newBal)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return entry, nil
}

func insertEntry(ctx context.Context, tx *sql.Tx, userID string, game GameType, kind EntryKind, amount, before, after int64) (*LedgerEntry, error) {
	e := &LedgerEntry{
		ID:            NewID(),
		UserID:        userID,
		GameType:      game,
		Kind:          kind,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  after,
	}
	row := tx.QueryRowContext(ctx, `
		INSERT INTO transactions (id, user_id, game_type, kind, amount, balance_before, balance_after)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at
	`, e.ID, e.UserID, e.GameType, e.Kind, e.Amount, e.BalanceBefore, e.BalanceAfter)
	if err := row.Scan(&e.CreatedAt); err != nil {
		return nil, err
	}
	return e, nil
}

// ListEntries returns the user's ledger entries newest first. ULIDs sort by
// creation time, so the id is the tie-breaker for same-timestamp rows.
// limit <= 0 returns the full ledger.
func (s *Store) ListEntries(ctx context.Context, userID string, limit int) ([]LedgerEntry, error) {
	q := `SELECT id, user_id, game_type, kind, amount, balance_before, balance_after, created_at
		FROM transactions WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	args := []any{userID}
	if limit > 0 {
		args = append(args, limit)
		q += ` LIMIT $2`
	}
	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []LedgerEntry{}
	for rows.Next() {
		var e LedgerEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.GameType, &e.Kind, &e.Amount, &e.BalanceBefore, &e.BalanceAfter, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
