package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBonusSpinStore_AddAndConsume(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewBonusSpinStore(client)
	ctx := context.Background()
	walletID := uuid.New()

	total, err := store.Add(ctx, walletID, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, total)

	ok, remaining, err := store.Consume(ctx, walletID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 9, remaining)
}

func TestBonusSpinStore_Consume_Empty(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewBonusSpinStore(client)
	ctx := context.Background()
	walletID := uuid.New()

	ok, remaining, err := store.Consume(ctx, walletID)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, remaining)

	// Underflow must not leave a negative counter behind.
	count, err := store.Remaining(ctx, walletID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestBonusSpinStore_Consume_ExhaustsExactly(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewBonusSpinStore(client)
	ctx := context.Background()
	walletID := uuid.New()

	_, err := store.Add(ctx, walletID, 2)
	require.NoError(t, err)

	for i := 1; i >= 0; i-- {
		ok, remaining, err := store.Consume(ctx, walletID)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, i, remaining)
	}

	ok, _, err := store.Consume(ctx, walletID)
	require.NoError(t, err)
	assert.False(t, ok, "third spin should not exist")
}

func TestBonusSpinStore_IsolatedPerWallet(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewBonusSpinStore(client)
	ctx := context.Background()
	walletA := uuid.New()
	walletB := uuid.New()

	_, err := store.Add(ctx, walletA, 5)
	require.NoError(t, err)

	countB, err := store.Remaining(ctx, walletB)
	require.NoError(t, err)
	assert.Zero(t, countB, "spins must not leak between wallets")
}
