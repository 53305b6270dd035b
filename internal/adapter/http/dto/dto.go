package dto

import (
	"fmt"

	"casino-wagering-engine/internal/core/domain"
)

// CommitSeedRequest is the request body for committing a seed pair.
// An empty client seed gets a server-generated default.
type CommitSeedRequest struct {
	ClientSeed string `json:"client_seed" binding:"omitempty,max=64,safe_id"`
}

// SeedPairResponse is the public view of a seed pair. The server seed
// field is populated only after reveal.
type SeedPairResponse struct {
	ID             string  `json:"seed_pair_id"`
	ServerSeedHash string  `json:"server_seed_hash"`
	ClientSeed     string  `json:"client_seed"`
	Nonce          uint64  `json:"nonce"`
	Revealed       bool    `json:"revealed"`
	ServerSeed     string  `json:"server_seed,omitempty"`
	CreatedAt      string  `json:"created_at"`
	RevealedAt     *string `json:"revealed_at,omitempty"`
}

// SlotBetRequest carries the slot-specific bet parameters.
type SlotBetRequest struct {
	StakePerLine     int64 `json:"stake_per_line" binding:"required,gt=0"`
	ActiveLines      int   `json:"active_lines" binding:"required,min=1,max=7"`
	ActiveMultiplier int64 `json:"active_multiplier" binding:"omitempty,min=1"`
}

// RouletteSelectionRequest carries one roulette selection. Which extra
// field is required depends on the kind: STRAIGHT takes "number",
// DOZEN/COLUMN take "index" (1-3), SPLIT/STREET/CORNER/LINE take the
// explicit "covered" set, and the even-money kinds take nothing.
type RouletteSelectionRequest struct {
	Kind    string `json:"kind" binding:"required"`
	Number  *int   `json:"number,omitempty"`
	Index   *int   `json:"index,omitempty"`
	Covered []int  `json:"covered,omitempty"`
	Stake   int64  `json:"stake" binding:"required,gt=0"`
}

// PlaceBetRequest is the request body for placing a bet.
type PlaceBetRequest struct {
	SeedPairID string                     `json:"seed_pair_id" binding:"required,uuid"`
	Game       string                     `json:"game" binding:"required,oneof=SLOT ROULETTE"`
	Slot       *SlotBetRequest            `json:"slot,omitempty"`
	Roulette   []RouletteSelectionRequest `json:"roulette,omitempty"`
}

// ToDomain maps a selection request onto a domain selection with its
// covered set resolved.
func (r RouletteSelectionRequest) ToDomain() (domain.RouletteSelection, error) {
	kind := domain.BetKind(r.Kind)
	switch kind {
	case domain.BetKindStraight:
		if r.Number == nil {
			return domain.RouletteSelection{}, fmt.Errorf("straight bet requires a number")
		}
		return domain.NewStraightBet(*r.Number, r.Stake), nil
	case domain.BetKindRed:
		return domain.NewColorBet(domain.ColorRed, r.Stake), nil
	case domain.BetKindBlack:
		return domain.NewColorBet(domain.ColorBlack, r.Stake), nil
	case domain.BetKindEven:
		return domain.NewParityBet(true, r.Stake), nil
	case domain.BetKindOdd:
		return domain.NewParityBet(false, r.Stake), nil
	case domain.BetKindLow:
		return domain.NewRangeBet(false, r.Stake), nil
	case domain.BetKindHigh:
		return domain.NewRangeBet(true, r.Stake), nil
	case domain.BetKindDozen:
		if r.Index == nil {
			return domain.RouletteSelection{}, fmt.Errorf("dozen bet requires an index")
		}
		return domain.NewDozenBet(*r.Index, r.Stake), nil
	case domain.BetKindColumn:
		if r.Index == nil {
			return domain.RouletteSelection{}, fmt.Errorf("column bet requires an index")
		}
		return domain.NewColumnBet(*r.Index, r.Stake), nil
	case domain.BetKindSplit, domain.BetKindStreet, domain.BetKindCorner, domain.BetKindLine:
		if len(r.Covered) == 0 {
			return domain.RouletteSelection{}, fmt.Errorf("%s bet requires a covered set", r.Kind)
		}
		return domain.RouletteSelection{Kind: kind, Covered: r.Covered, Stake: r.Stake}, nil
	default:
		return domain.RouletteSelection{}, fmt.Errorf("unknown bet kind %q", r.Kind)
	}
}

// BetResponse is the response body for a placed or fetched bet.
type BetResponse struct {
	BetID             string                  `json:"bet_id"`
	Game              string                  `json:"game"`
	State             string                  `json:"state"`
	TotalStake        int64                   `json:"total_stake"`
	TotalPayout       int64                   `json:"total_payout"`
	BonusSpinsAwarded int                     `json:"bonus_spins_awarded"`
	NewBalance        *int64                  `json:"new_balance,omitempty"`
	Slot              *domain.SlotOutcome     `json:"slot,omitempty"`
	Roulette          *domain.RouletteOutcome `json:"roulette,omitempty"`
	FairnessProof     domain.FairnessProof    `json:"fairness_proof"`
	CreatedAt         string                  `json:"created_at"`
	SettledAt         *string                 `json:"settled_at,omitempty"`
}

// BetListResponse wraps a paginated bet history.
type BetListResponse struct {
	Items      []BetResponse `json:"items"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}

// WalletBalanceResponse is the response for balance query.
type WalletBalanceResponse struct {
	Balance  int64  `json:"balance"`
	Currency string `json:"currency"`
}

// WalletStatsResponse is the response for wallet statistics.
type WalletStatsResponse struct {
	TotalTransactions int64 `json:"total_transactions"`
	Committed         int64 `json:"committed"`
	Failed            int64 `json:"failed"`
	TotalStaked       int64 `json:"total_staked"`
	TotalPaidOut      int64 `json:"total_paid_out"`
	NetResult         int64 `json:"net_result"`
}

// TransactionResponse is the response body for one ledger entry.
type TransactionResponse struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	Amount        int64  `json:"amount"`
	BalanceBefore int64  `json:"balance_before"`
	BalanceAfter  int64  `json:"balance_after"`
	BetID         string `json:"bet_id,omitempty"`
	Reason        string `json:"reason"`
	CreatedAt     string `json:"created_at"`
}

// TransactionListResponse wraps paginated transaction list.
type TransactionListResponse struct {
	Items      []TransactionResponse `json:"items"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalPages int                   `json:"total_pages"`
}

// JackpotResponse is the read-only view of the progressive pool.
type JackpotResponse struct {
	Pool int64 `json:"pool"`
}
