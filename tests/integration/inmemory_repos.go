package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"casino-wagering-engine/internal/core/domain"
	"casino-wagering-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]*domain.Wallet
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[uuid.UUID]*domain.Wallet)}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *w
	r.wallets[w.ID] = &cp
	return nil
}

func (r *inMemoryWalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) GetByPlayerID(ctx context.Context, playerID uuid.UUID, currency string) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.wallets {
		if w.PlayerID == playerID && w.Currency == currency {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error) {
	return r.GetByID(ctx, id)
}

// UpdateBalance emulates the version-guarded UPDATE: a stale expected
// version yields pgx.ErrNoRows, exactly like zero rows affected.
func (r *inMemoryWalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, newBalance int64, expectedVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return pgx.ErrNoRows
	}
	if w.Version != expectedVersion {
		return pgx.ErrNoRows
	}
	w.Balance = newBalance
	w.Version++
	return nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu           sync.RWMutex
	transactions map[uuid.UUID]*domain.Transaction
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{transactions: make(map[uuid.UUID]*domain.Transaction)}
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.transactions[t.ID] = &cp
	return nil
}

func (r *inMemoryTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.transactions[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryTransactionRepo) List(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Transaction
	for _, t := range r.transactions {
		if t.WalletID != params.WalletID {
			continue
		}
		if params.Status != nil && t.Status != *params.Status {
			continue
		}
		if params.Type != nil && t.Type != *params.Type {
			continue
		}
		if params.From != nil && t.CreatedAt.Unix() < *params.From {
			continue
		}
		if params.To != nil && t.CreatedAt.Unix() > *params.To {
			continue
		}
		result = append(result, *t)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	total := int64(len(result))

	// Simple pagination
	start := (params.Page - 1) * params.PageSize
	if start >= len(result) {
		return []domain.Transaction{}, total, nil
	}
	end := start + params.PageSize
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], total, nil
}

func (r *inMemoryTransactionRepo) GetStats(ctx context.Context, walletID uuid.UUID, periodStart *int64) (*ports.TransactionStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := &ports.TransactionStats{}
	for _, t := range r.transactions {
		if t.WalletID != walletID {
			continue
		}
		if periodStart != nil && t.CreatedAt.Unix() < *periodStart {
			continue
		}
		stats.TotalTransactions++
		switch t.Status {
		case domain.TransactionStatusCommitted:
			stats.Committed++
		case domain.TransactionStatusFailed:
			stats.Failed++
		}
		if t.Status == domain.TransactionStatusCommitted {
			switch t.Type {
			case domain.TransactionTypeStake:
				stats.TotalStaked += -t.Amount
			case domain.TransactionTypePayout:
				stats.TotalPaidOut += t.Amount
			}
		}
	}
	stats.NetResult = stats.TotalPaidOut - stats.TotalStaked
	return stats, nil
}

// --- In-Memory Seed Repo ---

type inMemorySeedRepo struct {
	mu    sync.Mutex
	pairs map[uuid.UUID]*domain.SeedPair
}

func newInMemorySeedRepo() *inMemorySeedRepo {
	return &inMemorySeedRepo{pairs: make(map[uuid.UUID]*domain.SeedPair)}
}

func (r *inMemorySeedRepo) Create(ctx context.Context, p *domain.SeedPair) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.pairs[p.ID] = &cp
	return nil
}

func (r *inMemorySeedRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SeedPair, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pairs[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *inMemorySeedRepo) IncrementNonce(ctx context.Context, id uuid.UUID) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pairs[id]
	if !ok || p.Revealed {
		return 0, pgx.ErrNoRows
	}
	p.Nonce++
	return p.Nonce, nil
}

func (r *inMemorySeedRepo) Reveal(ctx context.Context, id uuid.UUID) (*domain.SeedPair, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pairs[id]
	if !ok {
		return nil, nil
	}
	if !p.Revealed {
		p.Revealed = true
		now := time.Now().UTC()
		p.RevealedAt = &now
	}
	cp := *p
	return &cp, nil
}

// --- In-Memory Bet Repo ---

type inMemoryBetRepo struct {
	mu   sync.RWMutex
	bets map[uuid.UUID]*domain.ResolvedBet
}

func newInMemoryBetRepo() *inMemoryBetRepo {
	return &inMemoryBetRepo{bets: make(map[uuid.UUID]*domain.ResolvedBet)}
}

func (r *inMemoryBetRepo) Create(ctx context.Context, b *domain.ResolvedBet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.bets[b.ID] = &cp
	return nil
}

func (r *inMemoryBetRepo) Update(ctx context.Context, b *domain.ResolvedBet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bets[b.ID]; !ok {
		return fmt.Errorf("bet not found")
	}
	cp := *b
	r.bets[b.ID] = &cp
	return nil
}

func (r *inMemoryBetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ResolvedBet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bets[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *inMemoryBetRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, page, pageSize int) ([]domain.ResolvedBet, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.ResolvedBet
	for _, b := range r.bets {
		if b.WalletID == walletID {
			result = append(result, *b)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	total := int64(len(result))

	start := (page - 1) * pageSize
	if start >= len(result) {
		return []domain.ResolvedBet{}, total, nil
	}
	end := start + pageSize
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], total, nil
}

// --- In-Memory Idempotency Repo ---

type inMemoryIdempotencyRepo struct {
	mu   sync.RWMutex
	logs map[string]*domain.IdempotencyLog
}

func newInMemoryIdempotencyRepo() *inMemoryIdempotencyRepo {
	return &inMemoryIdempotencyRepo{logs: make(map[string]*domain.IdempotencyLog)}
}

func (r *inMemoryIdempotencyRepo) Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs[log.Key] = log
	return nil
}

func (r *inMemoryIdempotencyRepo) Get(ctx context.Context, key string) (*domain.IdempotencyLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.logs[key]
	if !ok {
		return nil, nil
	}
	return l, nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
