package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"casino-wagering-engine/internal/core/domain"
	"casino-wagering-engine/internal/core/ports"
	"casino-wagering-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const idempotencyTTL = 24 * time.Hour

// LedgerServiceImpl implements ports.LedgerService. Every balance
// mutation locks the wallet row, appends exactly one transaction record
// and bumps the wallet version inside one database transaction.
type LedgerServiceImpl struct {
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	idempRepo  ports.IdempotencyRepository
	idempCache ports.IdempotencyCache
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	idempRepo ports.IdempotencyRepository,
	idempCache ports.IdempotencyCache,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		idempRepo:  idempRepo,
		idempCache: idempCache,
		transactor: transactor,
		log:        log,
	}
}

// Debit reserves a stake. It fails before any mutation if the wallet
// cannot cover the amount.
func (s *LedgerServiceImpl) Debit(ctx context.Context, walletID uuid.UUID, amount int64, reason string, betID *uuid.UUID) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidBet("stake must be positive")
	}

	txn, err := s.mutate(ctx, walletID, -amount, domain.TransactionTypeStake, reason, betID)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("wallet_id", walletID.String()).
		Int64("amount", amount).
		Str("reason", reason).
		Msg("stake debited")

	return txn, nil
}

// Credit settles a payout. Zero payouts still append a record so every
// resolved bet has a complete audit trail. Retried credits with the same
// idempotency key return the original transaction without moving money.
func (s *LedgerServiceImpl) Credit(ctx context.Context, walletID uuid.UUID, amount int64, reason string, betID *uuid.UUID, idempotencyKey string) (*domain.Transaction, error) {
	if amount < 0 {
		return nil, apperror.ErrInvalidBet("payout cannot be negative")
	}

	// Layer 1: Redis idempotency check
	cached, err := s.idempCache.Get(ctx, idempotencyKey)
	if err != nil {
		s.log.Warn().Err(err).Str("key", idempotencyKey).Msg("redis idempotency check failed, falling through to DB")
	}
	if cached != nil {
		return s.unmarshalCachedTransaction(cached)
	}

	// Layer 2: DB idempotency check
	idempLog, err := s.idempRepo.Get(ctx, idempotencyKey)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("db idempotency check: %w", err))
	}
	if idempLog != nil {
		return s.unmarshalCachedTransaction(idempLog.ResponseJSON)
	}

	txn, respJSON, err := s.mutateWithIdempotency(ctx, walletID, amount, domain.TransactionTypePayout, reason, betID, idempotencyKey)
	if err != nil {
		return nil, err
	}

	// Post-process: cache in Redis (best-effort)
	if err := s.idempCache.Set(ctx, idempotencyKey, respJSON, idempotencyTTL); err != nil {
		s.log.Warn().Err(err).Str("key", idempotencyKey).Msg("failed to cache idempotency in redis")
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("wallet_id", walletID.String()).
		Int64("amount", amount).
		Str("reason", reason).
		Msg("payout credited")

	return txn, nil
}

// Adjust appends a signed adjustment record (e.g. a free spin consuming
// no stake). A negative adjustment must still leave the balance >= 0.
func (s *LedgerServiceImpl) Adjust(ctx context.Context, walletID uuid.UUID, amount int64, reason string, betID *uuid.UUID) (*domain.Transaction, error) {
	txn, err := s.mutate(ctx, walletID, amount, domain.TransactionTypeAdjustment, reason, betID)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("wallet_id", walletID.String()).
		Int64("amount", amount).
		Str("reason", reason).
		Msg("adjustment recorded")

	return txn, nil
}

// BalanceOf returns the current committed balance.
func (s *LedgerServiceImpl) BalanceOf(ctx context.Context, walletID uuid.UUID) (int64, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return 0, apperror.ErrStorage(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return 0, apperror.ErrWalletNotFound()
	}
	return wallet.Balance, nil
}

// mutate runs one lock-mutate-append cycle without an idempotency log.
func (s *LedgerServiceImpl) mutate(ctx context.Context, walletID uuid.UUID, amount int64, txType domain.TransactionType, reason string, betID *uuid.UUID) (*domain.Transaction, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	txn, _, err := s.applyMutation(ctx, dbTx, walletID, amount, txType, reason, betID)
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("commit tx: %w", err))
	}
	return txn, nil
}

// mutateWithIdempotency additionally writes the idempotency log inside
// the same database transaction, so a replay can never double-apply.
func (s *LedgerServiceImpl) mutateWithIdempotency(ctx context.Context, walletID uuid.UUID, amount int64, txType domain.TransactionType, reason string, betID *uuid.UUID, idempotencyKey string) (*domain.Transaction, []byte, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, nil, apperror.ErrStorage(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	txn, respJSON, err := s.applyMutation(ctx, dbTx, walletID, amount, txType, reason, betID)
	if err != nil {
		return nil, nil, err
	}

	idempLogEntry := &domain.IdempotencyLog{
		Key:           idempotencyKey,
		TransactionID: txn.ID,
		ResponseJSON:  respJSON,
		CreatedAt:     txn.CreatedAt,
	}
	if err := s.idempRepo.Create(ctx, dbTx, idempLogEntry); err != nil {
		return nil, nil, apperror.ErrStorage(fmt.Errorf("save idempotency log: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, nil, apperror.ErrStorage(fmt.Errorf("commit tx: %w", err))
	}
	return txn, respJSON, nil
}

// applyMutation locks the wallet, checks funds, writes the new balance
// with a version guard and appends the ledger record.
func (s *LedgerServiceImpl) applyMutation(ctx context.Context, dbTx pgx.Tx, walletID uuid.UUID, amount int64, txType domain.TransactionType, reason string, betID *uuid.UUID) (*domain.Transaction, []byte, error) {
	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, walletID)
	if err != nil {
		return nil, nil, apperror.ErrStorage(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, nil, apperror.ErrWalletNotFound()
	}

	newBalance := wallet.Balance + amount
	if newBalance < 0 {
		return nil, nil, apperror.ErrInsufficientFunds()
	}

	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:            uuid.New(),
		WalletID:      wallet.ID,
		Type:          txType,
		Status:        domain.TransactionStatusCommitted,
		Amount:        amount,
		BalanceBefore: wallet.Balance,
		BalanceAfter:  newBalance,
		BetID:         betID,
		Reason:        reason,
		CreatedAt:     now,
	}

	if err := s.walletRepo.UpdateBalance(ctx, dbTx, wallet.ID, newBalance, wallet.Version); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperror.ErrConcurrentModification()
		}
		return nil, nil, apperror.ErrStorage(fmt.Errorf("update balance: %w", err))
	}

	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, nil, apperror.ErrStorage(fmt.Errorf("create transaction: %w", err))
	}

	respJSON, err := json.Marshal(txn)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("marshal transaction: %w", err))
	}
	return txn, respJSON, nil
}

// unmarshalCachedTransaction deserializes a cached transaction.
func (s *LedgerServiceImpl) unmarshalCachedTransaction(data []byte) (*domain.Transaction, error) {
	txn := &domain.Transaction{}
	if err := json.Unmarshal(data, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached tx: %w", err))
	}
	return txn, nil
}
