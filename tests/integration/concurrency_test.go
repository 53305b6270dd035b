package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"casino-wagering-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentBets fires 100 concurrent slot spins against one wallet.
// The optimistic version guard forces losers of each race to fail with a
// conflict instead of applying a lost update, so the ledger must stay
// consistent with the final balance no matter how the races resolve.
func TestConcurrentBets(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	initial := int64(10000000)
	walletID, token := app.newPlayer(t, initial)
	seedID := app.commitSeed(t, token, "concurrent-seed")

	concurrency := 100

	var wg sync.WaitGroup
	var successCount atomic.Int64
	var conflictCount atomic.Int64
	var otherCount atomic.Int64
	nonces := make([]float64, concurrency)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := `{"seed_pair_id":"` + seedID + `","game":"SLOT","slot":{"stake_per_line":100,"active_lines":7}}`
			req, _ := http.NewRequest(http.MethodPost, app.server.URL+"/api/v1/bets", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+token)

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				otherCount.Add(1)
				return
			}
			defer resp.Body.Close()

			switch resp.StatusCode {
			case http.StatusCreated:
				successCount.Add(1)
				var result struct {
					Data struct {
						FairnessProof struct {
							Nonce float64 `json:"nonce"`
						} `json:"fairness_proof"`
					} `json:"data"`
				}
				if err := json.NewDecoder(resp.Body).Decode(&result); err == nil {
					nonces[idx] = result.Data.FairnessProof.Nonce
				}
			case http.StatusConflict:
				conflictCount.Add(1)
			default:
				otherCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	t.Logf("Concurrent bets: %d succeeded, %d conflicted, %d other (out of %d)",
		successCount.Load(), conflictCount.Load(), otherCount.Load(), concurrency)

	// Every request completed with a deliberate outcome
	total := successCount.Load() + conflictCount.Load() + otherCount.Load()
	assert.Equal(t, int64(concurrency), total, "all requests should complete")
	assert.Equal(t, int64(0), otherCount.Load(), "no unexpected status codes")
	assert.Greater(t, successCount.Load(), int64(0), "at least one bet should win its race")

	// Conservation: the final balance equals the initial balance plus the
	// sum of every committed ledger entry, and never goes negative.
	wallet, err := app.walletRepo.GetByID(context.Background(), walletID)
	require.NoError(t, err)
	require.NotNil(t, wallet)
	assert.Equal(t, initial+app.ledgerSum(t, walletID), wallet.Balance)
	assert.GreaterOrEqual(t, wallet.Balance, int64(0), "balance must never go negative")

	// Each successful bet consumed a distinct nonce
	seen := make(map[float64]struct{})
	for _, n := range nonces {
		if n == 0 {
			continue
		}
		_, dup := seen[n]
		assert.False(t, dup, "nonce %v used twice", n)
		seen[n] = struct{}{}
	}
	assert.Equal(t, int(successCount.Load()), len(seen))
}

// TestConcurrentOverspend fires concurrent bets whose combined stake
// exceeds the balance. Losers must fail with insufficient funds or a
// version conflict; the wallet can never be driven below zero.
func TestConcurrentOverspend(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	// 5 spins worth of balance, 20 attempted
	initial := int64(3500)
	walletID, token := app.newPlayer(t, initial)
	seedID := app.commitSeed(t, token, "overspend-seed")

	concurrency := 20

	var wg sync.WaitGroup
	var successCount atomic.Int64
	var rejectedCount atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			body := `{"seed_pair_id":"` + seedID + `","game":"SLOT","slot":{"stake_per_line":100,"active_lines":7}}`
			req, _ := http.NewRequest(http.MethodPost, app.server.URL+"/api/v1/bets", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+token)

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				rejectedCount.Add(1)
				return
			}
			resp.Body.Close()

			if resp.StatusCode == http.StatusCreated {
				successCount.Add(1)
			} else {
				rejectedCount.Add(1)
			}
		}()
	}

	wg.Wait()

	t.Logf("Overspend: %d succeeded, %d rejected (out of %d)", successCount.Load(), rejectedCount.Load(), concurrency)

	total := successCount.Load() + rejectedCount.Load()
	assert.Equal(t, int64(concurrency), total, "all requests should complete")

	wallet, err := app.walletRepo.GetByID(context.Background(), walletID)
	require.NoError(t, err)
	require.NotNil(t, wallet)
	assert.GreaterOrEqual(t, wallet.Balance, int64(0), "balance must never go negative")
	assert.Equal(t, initial+app.ledgerSum(t, walletID), wallet.Balance)
}

// TestIdempotentCreditReplay verifies that the payout credit path is
// keyed per bet: replaying the same credit key moves money once.
func TestIdempotentCreditReplay(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	walletID, token := app.newPlayer(t, 100000)
	seedID := app.commitSeed(t, token, "replay-seed")

	// A completed bet has already consumed its credit key
	resp, envelope := app.doJSON(t, http.MethodPost, "/api/v1/bets", token, map[string]interface{}{
		"seed_pair_id": seedID,
		"game":         "ROULETTE",
		"roulette": []map[string]interface{}{
			{"kind": "RED", "stake": 1000},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	balanceAfter := int64(data["new_balance"].(float64))
	payout := int64(data["total_payout"].(float64))
	betID, err := uuid.Parse(data["bet_id"].(string))
	require.NoError(t, err)

	// Replaying the same credit, as a retry after a lost response would,
	// returns the recorded transaction without moving money again.
	replayed, err := app.ledger.Credit(context.Background(), walletID, payout,
		"roulette spin payout", &betID, domain.BuildCreditIdempotencyKey(betID))
	require.NoError(t, err)
	require.NotNil(t, replayed)
	assert.Equal(t, payout, replayed.Amount)

	wallet, err := app.walletRepo.GetByID(context.Background(), walletID)
	require.NoError(t, err)
	assert.Equal(t, balanceAfter, wallet.Balance)

	// Still exactly one stake and one payout entry for the bet
	respTx, envTx := app.doJSON(t, http.MethodGet, "/api/v1/transactions?page=1&page_size=10", token, nil)
	require.Equal(t, http.StatusOK, respTx.StatusCode)
	assert.Equal(t, float64(2), envTx["data"].(map[string]interface{})["total"])
}
