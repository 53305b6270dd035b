package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wallet represents a player's currency wallet. Balance is held in minor
// units (cents) and mutated only through ledger operations. The version
// column guards against lost updates under concurrent bets.
type Wallet struct {
	ID        uuid.UUID `json:"id"`
	PlayerID  uuid.UUID `json:"player_id"`
	Currency  string    `json:"currency"`
	Balance   int64     `json:"balance"` // In smallest unit (e.g., cents)
	Version   int64     `json:"-"`       // Optimistic concurrency token
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanAfford returns true if the wallet can cover the given stake.
func (w *Wallet) CanAfford(amount int64) bool {
	return w.Balance >= amount
}
