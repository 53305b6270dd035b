package ports

import (
	"context"

	"casino-wagering-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	GetByPlayerID(ctx context.Context, playerID uuid.UUID, currency string) (*domain.Wallet, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error)
	// UpdateBalance bumps the version; it fails if expectedVersion no
	// longer matches the stored row.
	UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, newBalance int64, expectedVersion int64) error
}

// TransactionRepository defines persistence operations for ledger entries.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	// Reporting queries
	List(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
	GetStats(ctx context.Context, walletID uuid.UUID, periodStart *int64) (*TransactionStats, error)
}

// TransactionListParams holds filter + pagination for listing transactions.
type TransactionListParams struct {
	WalletID uuid.UUID
	Status   *domain.TransactionStatus
	Type     *domain.TransactionType
	From     *int64 // Unix timestamp
	To       *int64 // Unix timestamp
	Page     int
	PageSize int
}

// TransactionStats holds aggregated wallet statistics.
type TransactionStats struct {
	TotalTransactions int64
	Committed         int64
	Failed            int64
	TotalStaked       int64 // Sum of committed stake amounts (positive)
	TotalPaidOut      int64 // Sum of committed payout amounts
	NetResult         int64 // TotalPaidOut - TotalStaked
}

// SeedRepository defines persistence operations for fairness seed pairs.
type SeedRepository interface {
	Create(ctx context.Context, pair *domain.SeedPair) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SeedPair, error)
	// IncrementNonce atomically bumps and returns the nonce for an
	// active pair. A retired or missing pair yields pgx.ErrNoRows,
	// which the service layer maps to the proper seed error.
	IncrementNonce(ctx context.Context, id uuid.UUID) (uint64, error)
	// Reveal marks the pair retired. Idempotent.
	Reveal(ctx context.Context, id uuid.UUID) (*domain.SeedPair, error)
}

// BetRepository defines persistence operations for resolved bets.
type BetRepository interface {
	Create(ctx context.Context, bet *domain.ResolvedBet) error
	Update(ctx context.Context, bet *domain.ResolvedBet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ResolvedBet, error)
	ListByWallet(ctx context.Context, walletID uuid.UUID, page, pageSize int) ([]domain.ResolvedBet, int64, error)
}

// IdempotencyRepository defines persistence for idempotency logs (DB backup).
type IdempotencyRepository interface {
	Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error
	Get(ctx context.Context, key string) (*domain.IdempotencyLog, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
