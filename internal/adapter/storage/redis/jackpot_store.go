package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// JackpotStore implements ports.JackpotStore on a single Redis counter.
// INCRBY keeps contributions atomic across engine instances.
type JackpotStore struct {
	client *goredis.Client
	key    string
}

// NewJackpotStore creates a new Redis-backed jackpot pool.
func NewJackpotStore(client *goredis.Client) *JackpotStore {
	return &JackpotStore{
		client: client,
		key:    "jackpot:pool",
	}
}

// Contribute adds an amount to the pool and returns the new total.
func (s *JackpotStore) Contribute(ctx context.Context, amount int64) (int64, error) {
	total, err := s.client.IncrBy(ctx, s.key, amount).Result()
	if err != nil {
		return 0, fmt.Errorf("redis jackpot contribute: %w", err)
	}
	return total, nil
}

// Current returns the current pool total.
func (s *JackpotStore) Current(ctx context.Context) (int64, error) {
	total, err := s.client.Get(ctx, s.key).Int64()
	if err != nil {
		if err == goredis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("redis jackpot get: %w", err)
	}
	return total, nil
}

// Reset drains the pool atomically and returns the drained amount.
func (s *JackpotStore) Reset(ctx context.Context) (int64, error) {
	val, err := s.client.GetDel(ctx, s.key).Int64()
	if err != nil {
		if err == goredis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("redis jackpot reset: %w", err)
	}
	return val, nil
}
