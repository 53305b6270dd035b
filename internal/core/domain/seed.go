package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxClientSeedLen bounds player-supplied seed material.
const MaxClientSeedLen = 64

// SeedPair is a commit-reveal randomness pair. The server seed hash is
// published before any bet uses the pair; the server seed itself is
// disclosed only after the pair is retired, so every past outcome can be
// recomputed by the player but no future outcome can be predicted.
type SeedPair struct {
	ID             uuid.UUID  `json:"id"`
	PlayerID       uuid.UUID  `json:"player_id"`
	ServerSeed     string     `json:"-"` // Hex-encoded secret, exposed only via reveal
	ServerSeedHash string     `json:"server_seed_hash"`
	ClientSeed     string     `json:"client_seed"`
	Nonce          uint64     `json:"nonce"` // Increments once per resolved bet
	Revealed       bool       `json:"revealed"`
	CreatedAt      time.Time  `json:"created_at"`
	RevealedAt     *time.Time `json:"revealed_at,omitempty"`
}

// IsActive returns true while the pair may still drive new bets.
func (s *SeedPair) IsActive() bool {
	return !s.Revealed
}

// ValidClientSeed reports whether a player-supplied seed is acceptable.
func ValidClientSeed(seed string) bool {
	return len(seed) > 0 && len(seed) <= MaxClientSeedLen
}

// FairnessProof is the audit record attached to every resolved bet.
// ServerSeed stays empty until the pair is retired.
type FairnessProof struct {
	SeedPairID     uuid.UUID `json:"seed_pair_id"`
	ServerSeedHash string    `json:"server_seed_hash"`
	ClientSeed     string    `json:"client_seed"`
	Nonce          uint64    `json:"nonce"`
	ServerSeed     string    `json:"server_seed,omitempty"`
}
