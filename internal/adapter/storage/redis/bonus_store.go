package redis

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// BonusSpinStore implements ports.BonusSpinStore with one Redis counter
// per wallet.
type BonusSpinStore struct {
	client *goredis.Client
	prefix string
}

// NewBonusSpinStore creates a new Redis-backed bonus spin store.
func NewBonusSpinStore(client *goredis.Client) *BonusSpinStore {
	return &BonusSpinStore{
		client: client,
		prefix: "bonus_spins:",
	}
}

func (s *BonusSpinStore) keyFor(walletID uuid.UUID) string {
	return s.prefix + walletID.String()
}

// Add credits spins to the wallet's counter and returns the new total.
func (s *BonusSpinStore) Add(ctx context.Context, walletID uuid.UUID, spins int) (int, error) {
	total, err := s.client.IncrBy(ctx, s.keyFor(walletID), int64(spins)).Result()
	if err != nil {
		return 0, fmt.Errorf("redis bonus add: %w", err)
	}
	return int(total), nil
}

// Consume takes one spin if available. The DECR result going negative
// means the counter was already empty; the INCR puts it back so the
// counter never underflows.
func (s *BonusSpinStore) Consume(ctx context.Context, walletID uuid.UUID) (bool, int, error) {
	key := s.keyFor(walletID)
	remaining, err := s.client.Decr(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("redis bonus consume: %w", err)
	}
	if remaining < 0 {
		if err := s.client.Incr(ctx, key).Err(); err != nil {
			return false, 0, fmt.Errorf("redis bonus restore: %w", err)
		}
		return false, 0, nil
	}
	return true, int(remaining), nil
}

// Remaining returns the wallet's unconsumed spin count.
func (s *BonusSpinStore) Remaining(ctx context.Context, walletID uuid.UUID) (int, error) {
	count, err := s.client.Get(ctx, s.keyFor(walletID)).Int()
	if err != nil {
		if err == goredis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("redis bonus remaining: %w", err)
	}
	return count, nil
}
