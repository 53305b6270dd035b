package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the kind of money movement.
type TransactionType string

const (
	TransactionTypeStake      TransactionType = "STAKE"
	TransactionTypePayout     TransactionType = "PAYOUT"
	TransactionTypeAdjustment TransactionType = "ADJUSTMENT"
)

// TransactionStatus represents the final state of a ledger entry.
type TransactionStatus string

const (
	TransactionStatusCommitted TransactionStatus = "COMMITTED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

// Transaction represents an immutable ledger entry for money movement.
// Every balance mutation appends exactly one record; records are never
// updated or deleted.
type Transaction struct {
	ID            uuid.UUID         `json:"id"`
	WalletID      uuid.UUID         `json:"wallet_id"`
	Type          TransactionType   `json:"type"`
	Status        TransactionStatus `json:"status"`
	Amount        int64             `json:"amount"` // Signed: negative for stakes, >= 0 for payouts
	BalanceBefore int64             `json:"balance_before"`
	BalanceAfter  int64             `json:"balance_after"`
	BetID         *uuid.UUID        `json:"bet_id,omitempty"` // Linked bet, if any
	Reason        string            `json:"reason"`
	CreatedAt     time.Time         `json:"created_at"`
}

// Balanced returns true if the record's arithmetic holds. The ledger
// refuses to append a record that fails this check.
func (t *Transaction) Balanced() bool {
	return t.BalanceAfter == t.BalanceBefore+t.Amount
}
