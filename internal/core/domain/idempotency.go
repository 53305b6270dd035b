package domain

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyLog represents a cached ledger result to prevent
// double-processing a retried credit or refund.
type IdempotencyLog struct {
	Key           string    `json:"key"`
	TransactionID uuid.UUID `json:"transaction_id"`
	ResponseJSON  []byte    `json:"response_json"` // Cached response to return
	CreatedAt     time.Time `json:"created_at"`
}

// BuildCreditIdempotencyKey keys a payout credit by its bet so a retried
// credit after a storage timeout cannot double-pay.
func BuildCreditIdempotencyKey(betID uuid.UUID) string {
	return "credit:" + betID.String()
}

// BuildRefundIdempotencyKey keys the compensating refund for a failed bet.
func BuildRefundIdempotencyKey(betID uuid.UUID) string {
	return "refund:" + betID.String()
}
