package ports

import (
	"context"
	"time"

	"casino-wagering-engine/internal/core/domain"

	"github.com/google/uuid"
)

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(playerID uuid.UUID, walletID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	PlayerID uuid.UUID
	WalletID uuid.UUID
}

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// JackpotStore is the shared progressive jackpot pool. Every slot stake
// feeds a configured share into the pool atomically.
type JackpotStore interface {
	Contribute(ctx context.Context, amount int64) (int64, error) // Returns new pool total
	Current(ctx context.Context) (int64, error)
	// Reset drains the pool and returns the drained amount.
	Reset(ctx context.Context) (int64, error)
}

// BonusSpinStore tracks free-spin credits per wallet.
type BonusSpinStore interface {
	Add(ctx context.Context, walletID uuid.UUID, spins int) (int, error) // Returns new total
	// Consume takes one spin if available; ok is false when none remain.
	Consume(ctx context.Context, walletID uuid.UUID) (ok bool, remaining int, err error)
	Remaining(ctx context.Context, walletID uuid.UUID) (int, error)
}

// --- Service Ports (Business Logic) ---

// FairnessService implements the commit-reveal randomness contract.
type FairnessService interface {
	// Commit creates a seed pair and returns it with only the hash
	// populated for the caller; the server seed stays private.
	Commit(ctx context.Context, playerID uuid.UUID, clientSeed string) (*domain.SeedPair, error)
	NextNonce(ctx context.Context, seedPairID uuid.UUID) (uint64, error)
	// Reveal retires the pair and discloses the server seed. Idempotent.
	// A pair belonging to another player is treated as unknown.
	Reveal(ctx context.Context, playerID, seedPairID uuid.UUID) (*domain.SeedPair, error)
	Get(ctx context.Context, playerID, seedPairID uuid.UUID) (*domain.SeedPair, error)
	// ServerSeedFor returns the secret seed of an active pair for
	// internal outcome derivation. Never exposed over the API.
	ServerSeedFor(ctx context.Context, playerID, seedPairID uuid.UUID) (*domain.SeedPair, error)
}

// LedgerService is the atomic money-movement layer. Debit and credit on
// one wallet are serialized; credits are idempotent per key.
type LedgerService interface {
	Debit(ctx context.Context, walletID uuid.UUID, amount int64, reason string, betID *uuid.UUID) (*domain.Transaction, error)
	Credit(ctx context.Context, walletID uuid.UUID, amount int64, reason string, betID *uuid.UUID, idempotencyKey string) (*domain.Transaction, error)
	// Adjust records a zero-or-signed adjustment entry (e.g. a free
	// spin consuming no stake).
	Adjust(ctx context.Context, walletID uuid.UUID, amount int64, reason string, betID *uuid.UUID) (*domain.Transaction, error)
	BalanceOf(ctx context.Context, walletID uuid.UUID) (int64, error)
}

// OutcomeResolver derives game outcomes from seed material. Implemented
// by the pure RNG layer; injected so the engine's failure path is
// exercisable in tests.
type OutcomeResolver interface {
	SlotGrid(serverSeed, clientSeed string, nonce uint64) (domain.SlotGrid, error)
	RoulettePocket(serverSeed, clientSeed string, nonce uint64) (int, error)
	// JackpotRoll draws the progressive jackpot trigger for a slot spin:
	// a uniform index in [0, odds), where 0 means the pool is won.
	JackpotRoll(serverSeed, clientSeed string, nonce uint64, odds int) (int, error)
}

// WagerService orchestrates the full bet lifecycle.
type WagerService interface {
	PlaceBet(ctx context.Context, req domain.BetRequest) (*domain.ResolvedBet, error)
	GetBet(ctx context.Context, betID uuid.UUID) (*domain.ResolvedBet, error)
	ListBets(ctx context.Context, walletID uuid.UUID, page, pageSize int) ([]domain.ResolvedBet, int64, error)
}

// ReportingService defines wallet/history reporting.
type ReportingService interface {
	ListTransactions(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
	GetWalletStats(ctx context.Context, walletID uuid.UUID, period string) (*TransactionStats, error)
	GetWalletBalance(ctx context.Context, walletID uuid.UUID) (int64, string, error) // balance, currency, error
}
