package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"casino-wagering-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BetRepo implements ports.BetRepository. Game outcomes and fairness
// proofs are stored as JSONB documents since their shape differs per
// game, while the money columns stay relational for reporting.
type BetRepo struct {
	pool Pool
}

// NewBetRepo creates a new BetRepo.
func NewBetRepo(pool Pool) *BetRepo {
	return &BetRepo{pool: pool}
}

// Create inserts a new bet record.
func (r *BetRepo) Create(ctx context.Context, b *domain.ResolvedBet) error {
	slotJSON, rouletteJSON, proofJSON, err := marshalBetDocs(b)
	if err != nil {
		return err
	}

	query := `INSERT INTO bets (id, wallet_id, game, state, total_stake, total_payout,
		slot_outcome, roulette_outcome, proof, stake_tx_id, payout_tx_id, bonus_spins_awarded, created_at, settled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err = r.pool.Exec(ctx, query,
		b.ID, b.WalletID, b.Game, b.State, b.TotalStake, b.TotalPayout,
		slotJSON, rouletteJSON, proofJSON,
		b.StakeTxID, b.PayoutTxID, b.BonusSpinsAwarded, b.CreatedAt, b.SettledAt,
	)
	if err != nil {
		return fmt.Errorf("insert bet: %w", err)
	}
	return nil
}

// Update rewrites the mutable fields of a bet as it advances through its
// lifecycle.
func (r *BetRepo) Update(ctx context.Context, b *domain.ResolvedBet) error {
	slotJSON, rouletteJSON, proofJSON, err := marshalBetDocs(b)
	if err != nil {
		return err
	}

	query := `UPDATE bets SET state = $1, total_payout = $2, slot_outcome = $3, roulette_outcome = $4,
		proof = $5, payout_tx_id = $6, bonus_spins_awarded = $7, settled_at = $8 WHERE id = $9`

	tag, err := r.pool.Exec(ctx, query,
		b.State, b.TotalPayout, slotJSON, rouletteJSON,
		proofJSON, b.PayoutTxID, b.BonusSpinsAwarded, b.SettledAt, b.ID,
	)
	if err != nil {
		return fmt.Errorf("update bet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("bet not found: %s", b.ID)
	}
	return nil
}

// GetByID fetches a bet by UUID.
func (r *BetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ResolvedBet, error) {
	query := `SELECT id, wallet_id, game, state, total_stake, total_payout,
		slot_outcome, roulette_outcome, proof, stake_tx_id, payout_tx_id, bonus_spins_awarded, created_at, settled_at
		FROM bets WHERE id = $1`

	b, err := scanBet(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ListByWallet fetches a wallet's bets, newest first, with pagination.
func (r *BetRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, page, pageSize int) ([]domain.ResolvedBet, int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM bets WHERE wallet_id = $1`, walletID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count bets: %w", err)
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, wallet_id, game, state, total_stake, total_payout,
		slot_outcome, roulette_outcome, proof, stake_tx_id, payout_tx_id, bonus_spins_awarded, created_at, settled_at
		FROM bets WHERE wallet_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, walletID, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list bets: %w", err)
	}
	defer rows.Close()

	var bets []domain.ResolvedBet
	for rows.Next() {
		b, err := scanBet(rows)
		if err != nil {
			return nil, 0, err
		}
		bets = append(bets, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate bet rows: %w", err)
	}
	return bets, total, nil
}

func marshalBetDocs(b *domain.ResolvedBet) ([]byte, []byte, []byte, error) {
	var slotJSON, rouletteJSON []byte
	var err error
	if b.Slot != nil {
		if slotJSON, err = json.Marshal(b.Slot); err != nil {
			return nil, nil, nil, fmt.Errorf("marshal slot outcome: %w", err)
		}
	}
	if b.Roulette != nil {
		if rouletteJSON, err = json.Marshal(b.Roulette); err != nil {
			return nil, nil, nil, fmt.Errorf("marshal roulette outcome: %w", err)
		}
	}
	proofJSON, err := json.Marshal(b.Proof)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal fairness proof: %w", err)
	}
	return slotJSON, rouletteJSON, proofJSON, nil
}

func scanBet(row pgx.Row) (*domain.ResolvedBet, error) {
	b := &domain.ResolvedBet{}
	var slotJSON, rouletteJSON, proofJSON []byte

	err := row.Scan(
		&b.ID, &b.WalletID, &b.Game, &b.State, &b.TotalStake, &b.TotalPayout,
		&slotJSON, &rouletteJSON, &proofJSON,
		&b.StakeTxID, &b.PayoutTxID, &b.BonusSpinsAwarded, &b.CreatedAt, &b.SettledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan bet: %w", err)
	}

	if len(slotJSON) > 0 {
		b.Slot = &domain.SlotOutcome{}
		if err := json.Unmarshal(slotJSON, b.Slot); err != nil {
			return nil, fmt.Errorf("unmarshal slot outcome: %w", err)
		}
	}
	if len(rouletteJSON) > 0 {
		b.Roulette = &domain.RouletteOutcome{}
		if err := json.Unmarshal(rouletteJSON, b.Roulette); err != nil {
			return nil, fmt.Errorf("unmarshal roulette outcome: %w", err)
		}
	}
	if len(proofJSON) > 0 {
		if err := json.Unmarshal(proofJSON, &b.Proof); err != nil {
			return nil, fmt.Errorf("unmarshal fairness proof: %w", err)
		}
	}
	return b, nil
}
