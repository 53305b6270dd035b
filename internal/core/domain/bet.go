package domain

import (
	"time"

	"github.com/google/uuid"
)

// GameType identifies which evaluator resolves a bet.
type GameType string

const (
	GameTypeSlot     GameType = "SLOT"
	GameTypeRoulette GameType = "ROULETTE"
)

// BetState is the lifecycle state of a wager.
type BetState string

const (
	BetStateCreated         BetState = "CREATED"
	BetStateStakeReserved   BetState = "STAKE_RESERVED"
	BetStateOutcomeResolved BetState = "OUTCOME_RESOLVED"
	BetStatePayoutSettled   BetState = "PAYOUT_SETTLED"
	BetStateCompleted       BetState = "COMPLETED"
	BetStateRejected        BetState = "REJECTED" // Before any money moved
	BetStateFailed          BetState = "FAILED"   // After stake reserved; refunded
)

// IsTerminal returns true if the bet is in a final state.
func (s BetState) IsTerminal() bool {
	return s == BetStateCompleted || s == BetStateRejected || s == BetStateFailed
}

// SlotBetParams carries the slot-specific part of a bet request.
type SlotBetParams struct {
	StakePerLine     int64 `json:"stake_per_line"`
	ActiveLines      int   `json:"active_lines"`
	ActiveMultiplier int64 `json:"active_multiplier"` // Session multiplier, >= 1
}

// TotalStake returns the full amount reserved for the spin.
func (p *SlotBetParams) TotalStake() int64 {
	return p.StakePerLine * int64(p.ActiveLines)
}

// BetRequest is a caller-owned wager request, consumed by value. Exactly
// one of Slot or Roulette is set, matching Game. PlayerID is the
// authenticated caller; the seed pair must belong to it.
type BetRequest struct {
	PlayerID   uuid.UUID           `json:"player_id"`
	WalletID   uuid.UUID           `json:"wallet_id"`
	SeedPairID uuid.UUID           `json:"seed_pair_id"`
	Game       GameType            `json:"game"`
	Slot       *SlotBetParams      `json:"slot,omitempty"`
	Roulette   []RouletteSelection `json:"roulette,omitempty"`
}

// TotalStake sums the stake across all selections.
func (r *BetRequest) TotalStake() int64 {
	switch r.Game {
	case GameTypeSlot:
		if r.Slot == nil {
			return 0
		}
		return r.Slot.TotalStake()
	case GameTypeRoulette:
		var total int64
		for i := range r.Roulette {
			total += r.Roulette[i].Stake
		}
		return total
	}
	return 0
}

// ResolvedBet is the immutable record of one engine invocation.
type ResolvedBet struct {
	ID                uuid.UUID        `json:"id"`
	WalletID          uuid.UUID        `json:"wallet_id"`
	Game              GameType         `json:"game"`
	State             BetState         `json:"state"`
	TotalStake        int64            `json:"total_stake"`
	TotalPayout       int64            `json:"total_payout"`
	Slot              *SlotOutcome     `json:"slot,omitempty"`
	Roulette          *RouletteOutcome `json:"roulette,omitempty"`
	Proof             FairnessProof    `json:"fairness_proof"`
	StakeTxID         *uuid.UUID       `json:"stake_tx_id,omitempty"`
	PayoutTxID        *uuid.UUID       `json:"payout_tx_id,omitempty"`
	BonusSpinsAwarded int              `json:"bonus_spins_awarded"`
	CreatedAt         time.Time        `json:"created_at"`
	SettledAt         *time.Time       `json:"settled_at,omitempty"`
}
