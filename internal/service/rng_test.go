package service

import (
	"fmt"
	"testing"

	"casino-wagering-engine/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testServerSeed = "9b74c9897bac770ffc029102a200c5de63659f38d6d0ec3097b7a6e6d9f28f8a"
	testClientSeed = "lucky-client-seed"
)

func TestResolve_Deterministic(t *testing.T) {
	for nonce := uint64(0); nonce < 10; nonce++ {
		a, err := Resolve(testServerSeed, testClientSeed, nonce, 37)
		require.NoError(t, err)
		b, err := Resolve(testServerSeed, testClientSeed, nonce, 37)
		require.NoError(t, err)
		assert.Equal(t, a, b, "nonce %d must replay identically", nonce)
	}
}

func TestResolve_InRange(t *testing.T) {
	for _, space := range []int{1, 2, 37, len(domain.ReelStrip), 1000} {
		for nonce := uint64(0); nonce < 200; nonce++ {
			idx, err := Resolve(testServerSeed, testClientSeed, nonce, space)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, space)
		}
	}
}

func TestResolve_DifferentInputsDiffer(t *testing.T) {
	// Over many nonces the sequences for two client seeds must diverge.
	same := 0
	const n = 100
	for nonce := uint64(0); nonce < n; nonce++ {
		a, err := Resolve(testServerSeed, "seed-a", nonce, 37)
		require.NoError(t, err)
		b, err := Resolve(testServerSeed, "seed-b", nonce, 37)
		require.NoError(t, err)
		if a == b {
			same++
		}
	}
	assert.Less(t, same, n/2, "distinct client seeds should not track each other")
}

func TestNewDrawStream_RejectsEmptySeeds(t *testing.T) {
	_, err := NewDrawStream("", testClientSeed, 0)
	assert.Error(t, err)

	_, err = NewDrawStream(testServerSeed, "", 0)
	assert.Error(t, err)
}

func TestDrawStream_Next_PanicsOnInvalidSpace(t *testing.T) {
	stream, err := NewDrawStream(testServerSeed, testClientSeed, 0)
	require.NoError(t, err)

	assert.Panics(t, func() { stream.Next(0) })
	assert.Panics(t, func() { stream.Next(-5) })
}

func TestResolve_Uniformity_ChiSquare(t *testing.T) {
	// 100k roulette draws with varying nonce; empirical frequencies must
	// pass a chi-square goodness-of-fit test against uniform.
	const (
		draws = 100_000
		space = 37
	)
	counts := make([]int, space)
	for nonce := uint64(0); nonce < draws; nonce++ {
		idx, err := Resolve(testServerSeed, testClientSeed, nonce, space)
		require.NoError(t, err)
		counts[idx]++
	}

	expected := float64(draws) / float64(space)
	chi2 := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}

	// Critical value for 36 degrees of freedom at p=0.001 is 67.99.
	assert.Less(t, chi2, 68.0, "chi-square statistic %f exceeds uniformity bound", chi2)
}

func TestRNGResolver_SlotGrid_DeterministicAndValid(t *testing.T) {
	r := NewRNGResolver()

	a, err := r.SlotGrid(testServerSeed, testClientSeed, 42)
	require.NoError(t, err)
	b, err := r.SlotGrid(testServerSeed, testClientSeed, 42)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	for reel := 0; reel < domain.SlotReels; reel++ {
		for row := 0; row < domain.SlotRows; row++ {
			_, ok := domain.Paytable[a[reel][row]]
			assert.True(t, ok, "grid cell (%d,%d) holds unknown symbol %q", reel, row, a[reel][row])
		}
	}

	c, err := r.SlotGrid(testServerSeed, testClientSeed, 43)
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "consecutive nonces should produce different grids")
}

func TestRNGResolver_RoulettePocket(t *testing.T) {
	r := NewRNGResolver()

	pocket, err := r.RoulettePocket(testServerSeed, testClientSeed, 7)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pocket, 0)
	assert.Less(t, pocket, domain.RoulettePockets)

	again, err := r.RoulettePocket(testServerSeed, testClientSeed, 7)
	require.NoError(t, err)
	assert.Equal(t, pocket, again)
}

func TestRNGResolver_JackpotRoll_IsSixteenthDraw(t *testing.T) {
	r := NewRNGResolver()
	const odds = 100_000

	roll, err := r.JackpotRoll(testServerSeed, testClientSeed, 42, odds)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, roll, 0)
	assert.Less(t, roll, odds)

	again, err := r.JackpotRoll(testServerSeed, testClientSeed, 42, odds)
	require.NoError(t, err)
	assert.Equal(t, roll, again)

	// An auditor reproduces the roll from the same stream: fifteen grid
	// draws, then one draw against the odds.
	stream, err := NewDrawStream(testServerSeed, testClientSeed, 42)
	require.NoError(t, err)
	for i := 0; i < domain.SlotReels*domain.SlotRows; i++ {
		stream.Next(len(domain.ReelStrip))
	}
	assert.Equal(t, stream.Next(odds), roll)
}

func TestRNGResolver_EmptySeedFails(t *testing.T) {
	r := NewRNGResolver()

	_, err := r.RoulettePocket("", testClientSeed, 0)
	assert.Error(t, err)

	_, err = r.SlotGrid("", testClientSeed, 0)
	assert.Error(t, err)
}

func TestDrawStream_SequencesAreIndependentPerNonce(t *testing.T) {
	// The 15 draws of one spin must not equal the 15 draws of the next.
	draw15 := func(nonce uint64) []int {
		stream, err := NewDrawStream(testServerSeed, testClientSeed, nonce)
		require.NoError(t, err)
		out := make([]int, 15)
		for i := range out {
			out[i] = stream.Next(len(domain.ReelStrip))
		}
		return out
	}

	assert.NotEqual(t, draw15(1), draw15(2))
	assert.Equal(t, fmt.Sprint(draw15(1)), fmt.Sprint(draw15(1)))
}
