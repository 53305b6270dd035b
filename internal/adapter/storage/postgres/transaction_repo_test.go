package postgres

import (
	"context"
	"testing"
	"time"

	"casino-wagering-engine/internal/core/domain"
	"casino-wagering-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransaction(walletID uuid.UUID) *domain.Transaction {
	betID := uuid.New()
	return &domain.Transaction{
		ID:            uuid.New(),
		WalletID:      walletID,
		Type:          domain.TransactionTypeStake,
		Status:        domain.TransactionStatusCommitted,
		Amount:        -3000,
		BalanceBefore: 100000,
		BalanceAfter:  97000,
		BetID:         &betID,
		Reason:        "slot spin stake",
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
}

func transactionColumns() []string {
	return []string{"id", "wallet_id", "type", "status", "amount", "balance_before", "balance_after", "bet_id", "reason", "created_at"}
}

func transactionRow(t *domain.Transaction) *pgxmock.Rows {
	return pgxmock.NewRows(transactionColumns()).AddRow(
		t.ID, t.WalletID, t.Type, t.Status,
		t.Amount, t.BalanceBefore, t.BalanceAfter,
		t.BetID, t.Reason, t.CreatedAt,
	)
}

func TestTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(txn.ID, txn.WalletID, txn.Type, txn.Status,
			txn.Amount, txn.BalanceBefore, txn.BalanceAfter,
			txn.BetID, txn.Reason, txn.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, txn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE id").
		WithArgs(txn.ID).
		WillReturnRows(transactionRow(txn))

	result, err := repo.GetByID(context.Background(), txn.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, txn.Amount, result.Amount)
	assert.True(t, result.Balanced())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	walletID := uuid.New()
	txn := newTestTransaction(walletID)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(walletID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT .+ FROM transactions .+ ORDER BY created_at DESC").
		WithArgs(walletID, 20, 0).
		WillReturnRows(transactionRow(txn))

	txns, total, err := repo.List(context.Background(), ports.TransactionListParams{
		WalletID: walletID,
		Page:     1,
		PageSize: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, txns, 1)
	assert.Equal(t, txn.ID, txns[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_List_WithTypeFilter(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	walletID := uuid.New()
	txType := domain.TransactionTypePayout

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(walletID, txType).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery("SELECT .+ FROM transactions .+ ORDER BY created_at DESC").
		WithArgs(walletID, txType, 20, 0).
		WillReturnRows(pgxmock.NewRows(transactionColumns()))

	txns, total, err := repo.List(context.Background(), ports.TransactionListParams{
		WalletID: walletID,
		Type:     &txType,
		Page:     1,
		PageSize: 20,
	})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, txns)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetStats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	walletID := uuid.New()

	mock.ExpectQuery("SELECT").
		WithArgs(walletID).
		WillReturnRows(pgxmock.NewRows(
			[]string{"total", "committed", "failed", "staked", "paid_out"},
		).AddRow(int64(10), int64(9), int64(1), int64(9000), int64(8400)))

	stats, err := repo.GetStats(context.Background(), walletID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalTransactions)
	assert.Equal(t, int64(9000), stats.TotalStaked)
	assert.Equal(t, int64(8400), stats.TotalPaidOut)
	assert.Equal(t, int64(-600), stats.NetResult)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetStats_WithPeriod(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	walletID := uuid.New()
	periodStart := time.Now().AddDate(0, 0, -7).Unix()

	mock.ExpectQuery("SELECT").
		WithArgs(walletID, periodStart).
		WillReturnRows(pgxmock.NewRows(
			[]string{"total", "committed", "failed", "staked", "paid_out"},
		).AddRow(int64(0), int64(0), int64(0), int64(0), int64(0)))

	stats, err := repo.GetStats(context.Background(), walletID, &periodStart)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalTransactions)
	assert.NoError(t, mock.ExpectationsWereMet())
}
