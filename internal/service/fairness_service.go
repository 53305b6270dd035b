package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
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

const serverSeedBytes = 32

// FairnessServiceImpl implements ports.FairnessService with the
// commit-reveal pattern: the hash of the server seed is published before
// any bet, the seed itself only after the pair is retired.
type FairnessServiceImpl struct {
	seedRepo ports.SeedRepository
	log      zerolog.Logger
}

// NewFairnessService creates a new FairnessServiceImpl.
func NewFairnessService(seedRepo ports.SeedRepository, log zerolog.Logger) *FairnessServiceImpl {
	return &FairnessServiceImpl{seedRepo: seedRepo, log: log}
}

// Commit generates a fresh server seed, stores the pair with nonce 0 and
// returns it with the secret blanked out.
func (s *FairnessServiceImpl) Commit(ctx context.Context, playerID uuid.UUID, clientSeed string) (*domain.SeedPair, error) {
	if !domain.ValidClientSeed(clientSeed) {
		return nil, apperror.ErrInvalidClientSeed()
	}

	raw := make([]byte, serverSeedBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate server seed: %w", err))
	}
	serverSeed := hex.EncodeToString(raw)

	pair := &domain.SeedPair{
		ID:             uuid.New(),
		PlayerID:       playerID,
		ServerSeed:     serverSeed,
		ServerSeedHash: HashServerSeed(serverSeed),
		ClientSeed:     clientSeed,
		Nonce:          0,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.seedRepo.Create(ctx, pair); err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("create seed pair: %w", err))
	}

	s.log.Info().
		Str("seed_pair_id", pair.ID.String()).
		Str("player_id", playerID.String()).
		Str("server_seed_hash", pair.ServerSeedHash).
		Msg("seed pair committed")

	committed := *pair
	committed.ServerSeed = ""
	return &committed, nil
}

// NextNonce atomically bumps the pair's bet counter.
func (s *FairnessServiceImpl) NextNonce(ctx context.Context, seedPairID uuid.UUID) (uint64, error) {
	nonce, err := s.seedRepo.IncrementNonce(ctx, seedPairID)
	if err == nil {
		return nonce, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, apperror.ErrStorage(fmt.Errorf("increment nonce: %w", err))
	}
	// No active row matched: distinguish retired from unknown.
	pair, gerr := s.seedRepo.GetByID(ctx, seedPairID)
	if gerr != nil {
		return 0, apperror.ErrStorage(fmt.Errorf("resolve nonce failure: %w", gerr))
	}
	if pair == nil {
		return 0, apperror.ErrUnknownSeed()
	}
	return 0, apperror.ErrSeedRetired()
}

// Reveal retires the pair and discloses the server seed. Idempotent: a
// second reveal returns the same seed. Ownership is checked before the
// pair is retired so a foreign caller cannot burn someone else's seed.
func (s *FairnessServiceImpl) Reveal(ctx context.Context, playerID, seedPairID uuid.UUID) (*domain.SeedPair, error) {
	existing, err := s.seedRepo.GetByID(ctx, seedPairID)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("get seed pair: %w", err))
	}
	// A foreign pair is indistinguishable from a missing one.
	if existing == nil || existing.PlayerID != playerID {
		return nil, apperror.ErrUnknownSeed()
	}

	pair, err := s.seedRepo.Reveal(ctx, seedPairID)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("reveal seed pair: %w", err))
	}
	if pair == nil {
		return nil, apperror.ErrUnknownSeed()
	}

	s.log.Info().
		Str("seed_pair_id", pair.ID.String()).
		Uint64("final_nonce", pair.Nonce).
		Msg("seed pair revealed and retired")

	return pair, nil
}

// Get returns the pair's public view: the server seed stays blank until
// the pair is retired, and only the owning player may look it up.
func (s *FairnessServiceImpl) Get(ctx context.Context, playerID, seedPairID uuid.UUID) (*domain.SeedPair, error) {
	pair, err := s.seedRepo.GetByID(ctx, seedPairID)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("get seed pair: %w", err))
	}
	if pair == nil || pair.PlayerID != playerID {
		return nil, apperror.ErrUnknownSeed()
	}
	if !pair.Revealed {
		public := *pair
		public.ServerSeed = ""
		return &public, nil
	}
	return pair, nil
}

// ServerSeedFor returns an active pair including its secret seed for
// internal outcome derivation. A retired pair must not drive new bets,
// and a pair committed by another player is rejected as unknown.
func (s *FairnessServiceImpl) ServerSeedFor(ctx context.Context, playerID, seedPairID uuid.UUID) (*domain.SeedPair, error) {
	pair, err := s.seedRepo.GetByID(ctx, seedPairID)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("get seed pair: %w", err))
	}
	if pair == nil || pair.PlayerID != playerID {
		return nil, apperror.ErrUnknownSeed()
	}
	if pair.Revealed {
		return nil, apperror.ErrSeedRetired()
	}
	return pair, nil
}

// HashServerSeed computes the public SHA-256 commitment of a server seed.
func HashServerSeed(serverSeed string) string {
	sum := sha256.Sum256([]byte(serverSeed))
	return hex.EncodeToString(sum[:])
}

// VerifySeed checks that a revealed server seed reproduces its published
// commitment. Pure; usable by an external auditor.
func VerifySeed(serverSeed, serverSeedHash string) bool {
	computed := HashServerSeed(serverSeed)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(serverSeedHash)) == 1
}
