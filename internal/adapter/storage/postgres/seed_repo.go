package postgres

import (
	"context"
	"errors"
	"fmt"

	"casino-wagering-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SeedRepo implements ports.SeedRepository.
type SeedRepo struct {
	pool Pool
}

// NewSeedRepo creates a new SeedRepo.
func NewSeedRepo(pool Pool) *SeedRepo {
	return &SeedRepo{pool: pool}
}

// Create inserts a new seed pair.
func (r *SeedRepo) Create(ctx context.Context, p *domain.SeedPair) error {
	query := `INSERT INTO seed_pairs (id, player_id, server_seed, server_seed_hash, client_seed, nonce, revealed, created_at, revealed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.PlayerID, p.ServerSeed, p.ServerSeedHash,
		p.ClientSeed, p.Nonce, p.Revealed, p.CreatedAt, p.RevealedAt,
	)
	if err != nil {
		return fmt.Errorf("insert seed pair: %w", err)
	}
	return nil
}

// GetByID fetches a seed pair by UUID.
func (r *SeedRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SeedPair, error) {
	query := `SELECT id, player_id, server_seed, server_seed_hash, client_seed, nonce, revealed, created_at, revealed_at
		FROM seed_pairs WHERE id = $1`

	return r.scanSeedPair(r.pool.QueryRow(ctx, query, id))
}

// IncrementNonce atomically bumps the nonce of an active pair and returns
// the new value. The single UPDATE keeps the sequence gap-free under
// concurrent bets. Retired or missing pairs update zero rows and surface
// as pgx.ErrNoRows.
func (r *SeedRepo) IncrementNonce(ctx context.Context, id uuid.UUID) (uint64, error) {
	query := `UPDATE seed_pairs SET nonce = nonce + 1 WHERE id = $1 AND NOT revealed RETURNING nonce`

	var nonce uint64
	err := r.pool.QueryRow(ctx, query, id).Scan(&nonce)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, pgx.ErrNoRows
		}
		return 0, fmt.Errorf("increment nonce: %w", err)
	}
	return nonce, nil
}

// Reveal retires the pair and returns it with the server seed exposed.
// Re-revealing an already retired pair returns the same row unchanged.
func (r *SeedRepo) Reveal(ctx context.Context, id uuid.UUID) (*domain.SeedPair, error) {
	query := `UPDATE seed_pairs SET revealed = TRUE, revealed_at = COALESCE(revealed_at, NOW())
		WHERE id = $1
		RETURNING id, player_id, server_seed, server_seed_hash, client_seed, nonce, revealed, created_at, revealed_at`

	return r.scanSeedPair(r.pool.QueryRow(ctx, query, id))
}

func (r *SeedRepo) scanSeedPair(row pgx.Row) (*domain.SeedPair, error) {
	p := &domain.SeedPair{}
	err := row.Scan(
		&p.ID, &p.PlayerID, &p.ServerSeed, &p.ServerSeedHash,
		&p.ClientSeed, &p.Nonce, &p.Revealed, &p.CreatedAt, &p.RevealedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan seed pair: %w", err)
	}
	return p, nil
}
