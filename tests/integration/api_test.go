package integration

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"casino-wagering-engine/config"
	httpHandler "casino-wagering-engine/internal/adapter/http/handler"
	redisStorage "casino-wagering-engine/internal/adapter/storage/redis"
	"casino-wagering-engine/internal/core/domain"
	"casino-wagering-engine/internal/core/ports"
	"casino-wagering-engine/internal/service"
	"casino-wagering-engine/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds a full application stack: real HTTP layer, middleware,
// handlers and services, backed by in-memory repos and miniredis. This
// exercises the bet lifecycle end-to-end without external infrastructure.

type testApp struct {
	server     *httptest.Server
	redis      *miniredis.Miniredis
	walletRepo *inMemoryWalletRepo
	txRepo     *inMemoryTransactionRepo
	tokenSvc   ports.TokenService
	ledger     *service.LedgerServiceImpl
}

func testGameConfig() config.GameConfig {
	return config.GameConfig{
		MinStake:             100,
		MaxStake:             10000000,
		ScatterTrigger:       3,
		FreeSpinsAward:       10,
		JackpotContribPermil: 10,
		// Long odds keep real-RNG spins from draining the pool mid-test.
		JackpotWinOdds: 1000000,
	}
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	return newTestAppWithResolver(t, service.NewRNGResolver())
}

func newTestAppWithResolver(t *testing.T, resolver ports.OutcomeResolver) *testApp {
	t.Helper()

	// Start miniredis
	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	// Redis stores
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	jackpotStore := redisStorage.NewJackpotStore(rdb)
	bonusStore := redisStorage.NewBonusSpinStore(rdb)

	// In-memory repos
	walletRepo := newInMemoryWalletRepo()
	txRepo := newInMemoryTransactionRepo()
	seedRepo := newInMemorySeedRepo()
	betRepo := newInMemoryBetRepo()
	idempotencyRepo := newInMemoryIdempotencyRepo()
	transactor := newInMemoryTransactor()

	// Services with real implementations
	log := logger.New("debug", false)
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")
	fairnessSvc := service.NewFairnessService(seedRepo, log)
	ledgerSvc := service.NewLedgerService(walletRepo, txRepo, idempotencyRepo, idempotencyCache, transactor, log)
	wagerSvc := service.NewWagerService(ledgerSvc, fairnessSvc, resolver, betRepo, jackpotStore, bonusStore, testGameConfig(), log)
	reportingSvc := service.NewReportingService(txRepo, walletRepo)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		FairnessSvc:  fairnessSvc,
		WagerSvc:     wagerSvc,
		ReportingSvc: reportingSvc,
		JackpotStore: jackpotStore,
		TokenSvc:     tokenSvc,
		Logger:       log,
	})

	server := httptest.NewServer(router)

	return &testApp{
		server:     server,
		redis:      mr,
		walletRepo: walletRepo,
		txRepo:     txRepo,
		tokenSvc:   tokenSvc,
		ledger:     ledgerSvc,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

// newPlayer seeds a funded wallet and mints a token for it.
func (a *testApp) newPlayer(t *testing.T, balance int64) (uuid.UUID, string) {
	t.Helper()
	playerID := uuid.New()
	walletID := uuid.New()
	now := time.Now().UTC()
	err := a.walletRepo.Create(context.Background(), &domain.Wallet{
		ID:        walletID,
		PlayerID:  playerID,
		Currency:  "USD",
		Balance:   balance,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	token, _, err := a.tokenSvc.Generate(playerID, walletID)
	require.NoError(t, err)
	return walletID, token
}

func (a *testApp) doJSON(t *testing.T, method, path, token string, body any) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func (a *testApp) commitSeed(t *testing.T, token, clientSeed string) string {
	t.Helper()
	resp, envelope := a.doJSON(t, http.MethodPost, "/api/v1/seeds", token, map[string]string{"client_seed": clientSeed})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := envelope["data"].(map[string]interface{})
	return data["seed_pair_id"].(string)
}

// ledgerSum totals all committed transaction amounts for a wallet.
func (a *testApp) ledgerSum(t *testing.T, walletID uuid.UUID) int64 {
	t.Helper()
	items, _, err := a.txRepo.List(context.Background(), ports.TransactionListParams{
		WalletID: walletID,
		Page:     1,
		PageSize: 100000,
	})
	require.NoError(t, err)
	var sum int64
	for _, txn := range items {
		if txn.Status == domain.TransactionStatusCommitted {
			sum += txn.Amount
		}
	}
	return sum
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_Unauthorized(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	req, _ := http.NewRequest(http.MethodGet, app.server.URL+"/api/v1/wallets/balance", nil)
	// No Authorization header
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIntegration_CommitSeed(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	_, token := app.newPlayer(t, 100000)

	resp, envelope := app.doJSON(t, http.MethodPost, "/api/v1/seeds", token, map[string]string{"client_seed": "lucky-777"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	assert.NotEmpty(t, data["seed_pair_id"])
	assert.Len(t, data["server_seed_hash"], 64)
	assert.Equal(t, "lucky-777", data["client_seed"])
	assert.Equal(t, float64(0), data["nonce"])
	assert.Equal(t, false, data["revealed"])
	// The secret must not leak before reveal
	_, exposed := data["server_seed"]
	assert.False(t, exposed)
}

func TestIntegration_SlotSpinEndToEnd(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	walletID, token := app.newPlayer(t, 1000000)
	seedID := app.commitSeed(t, token, "slot-seed")

	resp, envelope := app.doJSON(t, http.MethodPost, "/api/v1/bets", token, map[string]interface{}{
		"seed_pair_id": seedID,
		"game":         "SLOT",
		"slot": map[string]interface{}{
			"stake_per_line": 100,
			"active_lines":   7,
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "SLOT", data["game"])
	assert.Equal(t, "COMPLETED", data["state"])
	assert.Equal(t, float64(700), data["total_stake"])
	assert.NotEmpty(t, data["bet_id"])

	payout := int64(data["total_payout"].(float64))
	assert.GreaterOrEqual(t, payout, int64(0))

	proof := data["fairness_proof"].(map[string]interface{})
	assert.Equal(t, seedID, proof["seed_pair_id"])
	assert.Equal(t, float64(1), proof["nonce"])
	// Server seed stays hidden while the pair is active
	_, exposed := proof["server_seed"]
	assert.False(t, exposed)

	// Balance reflects stake and payout exactly
	newBalance := int64(data["new_balance"].(float64))
	assert.Equal(t, int64(1000000)-700+payout, newBalance)
	assert.Equal(t, newBalance-1000000, app.ledgerSum(t, walletID))

	// Slot stakes feed the jackpot pool: 700 * 10 / 1000 = 7
	respJ, envJ := app.doJSON(t, http.MethodGet, "/api/v1/jackpot", token, nil)
	require.Equal(t, http.StatusOK, respJ.StatusCode)
	assert.Equal(t, float64(7), envJ["data"].(map[string]interface{})["pool"])
}

func TestIntegration_RouletteSpinEndToEnd(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	walletID, token := app.newPlayer(t, 500000)
	seedID := app.commitSeed(t, token, "roulette-seed")

	resp, envelope := app.doJSON(t, http.MethodPost, "/api/v1/bets", token, map[string]interface{}{
		"seed_pair_id": seedID,
		"game":         "ROULETTE",
		"roulette": []map[string]interface{}{
			{"kind": "RED", "stake": 1000},
			{"kind": "STRAIGHT", "number": 17, "stake": 500},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "ROULETTE", data["game"])
	assert.Equal(t, "COMPLETED", data["state"])
	assert.Equal(t, float64(1500), data["total_stake"])

	roulette := data["roulette"].(map[string]interface{})
	pocket := int(roulette["pocket"].(float64))
	assert.GreaterOrEqual(t, pocket, 0)
	assert.LessOrEqual(t, pocket, 36)

	payout := int64(data["total_payout"].(float64))
	newBalance := int64(data["new_balance"].(float64))
	assert.Equal(t, int64(500000)-1500+payout, newBalance)
	assert.Equal(t, newBalance-500000, app.ledgerSum(t, walletID))
}

func TestIntegration_InsufficientFunds(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	walletID, token := app.newPlayer(t, 500)
	seedID := app.commitSeed(t, token, "broke-seed")

	resp, envelope := app.doJSON(t, http.MethodPost, "/api/v1/bets", token, map[string]interface{}{
		"seed_pair_id": seedID,
		"game":         "SLOT",
		"slot": map[string]interface{}{
			"stake_per_line": 100,
			"active_lines":   7,
		},
	})
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	assert.Equal(t, "FUND_001", envelope["error_code"])

	// Nothing moved
	assert.Equal(t, int64(0), app.ledgerSum(t, walletID))
}

func TestIntegration_BetOnRevealedSeedRejected(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	walletID, token := app.newPlayer(t, 100000)
	seedID := app.commitSeed(t, token, "retired-seed")

	respRev, _ := app.doJSON(t, http.MethodPost, "/api/v1/seeds/"+seedID+"/reveal", token, nil)
	require.Equal(t, http.StatusOK, respRev.StatusCode)

	resp, envelope := app.doJSON(t, http.MethodPost, "/api/v1/bets", token, map[string]interface{}{
		"seed_pair_id": seedID,
		"game":         "SLOT",
		"slot": map[string]interface{}{
			"stake_per_line": 100,
			"active_lines":   1,
		},
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "SEED_001", envelope["error_code"])
	assert.Equal(t, int64(0), app.ledgerSum(t, walletID))
}

func TestIntegration_SeedPairIsPrivateToItsOwner(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	_, tokenA := app.newPlayer(t, 100000)
	walletB, tokenB := app.newPlayer(t, 100000)
	seedID := app.commitSeed(t, tokenA, "owner-a-seed")

	// Another player cannot wager against the pair
	respBet, envBet := app.doJSON(t, http.MethodPost, "/api/v1/bets", tokenB, map[string]interface{}{
		"seed_pair_id": seedID,
		"game":         "SLOT",
		"slot": map[string]interface{}{
			"stake_per_line": 100,
			"active_lines":   1,
		},
	})
	assert.Equal(t, http.StatusNotFound, respBet.StatusCode)
	assert.Equal(t, "SEED_002", envBet["error_code"])
	assert.Equal(t, int64(0), app.ledgerSum(t, walletB))

	// Nor inspect it
	respGet, envGet := app.doJSON(t, http.MethodGet, "/api/v1/seeds/"+seedID, tokenB, nil)
	assert.Equal(t, http.StatusNotFound, respGet.StatusCode)
	assert.Equal(t, "SEED_002", envGet["error_code"])

	// Nor force a reveal that would retire it
	respRev, envRev := app.doJSON(t, http.MethodPost, "/api/v1/seeds/"+seedID+"/reveal", tokenB, nil)
	assert.Equal(t, http.StatusNotFound, respRev.StatusCode)
	assert.Equal(t, "SEED_002", envRev["error_code"])

	// The owner's pair is untouched and still usable
	respOwn, _ := app.doJSON(t, http.MethodPost, "/api/v1/bets", tokenA, map[string]interface{}{
		"seed_pair_id": seedID,
		"game":         "SLOT",
		"slot": map[string]interface{}{
			"stake_per_line": 100,
			"active_lines":   1,
		},
	})
	assert.Equal(t, http.StatusCreated, respOwn.StatusCode)
}

func TestIntegration_RevealDisclosesVerifiableSeed(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	_, token := app.newPlayer(t, 100000)
	seedID := app.commitSeed(t, token, "verify-me")

	respGet, envGet := app.doJSON(t, http.MethodGet, "/api/v1/seeds/"+seedID, token, nil)
	require.Equal(t, http.StatusOK, respGet.StatusCode)
	committedHash := envGet["data"].(map[string]interface{})["server_seed_hash"].(string)

	resp, envelope := app.doJSON(t, http.MethodPost, "/api/v1/seeds/"+seedID+"/reveal", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, true, data["revealed"])
	serverSeed := data["server_seed"].(string)
	require.NotEmpty(t, serverSeed)

	// The disclosed seed must hash to the pre-bet commitment
	sum := sha256.Sum256([]byte(serverSeed))
	assert.Equal(t, committedHash, hex.EncodeToString(sum[:]))

	// Reveal is idempotent: same seed on replay
	resp2, envelope2 := app.doJSON(t, http.MethodPost, "/api/v1/seeds/"+seedID+"/reveal", token, nil)
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	assert.Equal(t, serverSeed, envelope2["data"].(map[string]interface{})["server_seed"])
}

func TestIntegration_NonceIncrementsPerBet(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	_, token := app.newPlayer(t, 1000000)
	seedID := app.commitSeed(t, token, "nonce-seed")

	for i := 1; i <= 3; i++ {
		resp, envelope := app.doJSON(t, http.MethodPost, "/api/v1/bets", token, map[string]interface{}{
			"seed_pair_id": seedID,
			"game":         "SLOT",
			"slot": map[string]interface{}{
				"stake_per_line": 100,
				"active_lines":   1,
			},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		proof := envelope["data"].(map[string]interface{})["fairness_proof"].(map[string]interface{})
		assert.Equal(t, float64(i), proof["nonce"], "bet %d", i)
	}
}

func TestIntegration_BetHistoryAndTransactions(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	_, token := app.newPlayer(t, 1000000)
	seedID := app.commitSeed(t, token, "history-seed")

	var stakedSum float64
	for i := 0; i < 3; i++ {
		resp, envelope := app.doJSON(t, http.MethodPost, "/api/v1/bets", token, map[string]interface{}{
			"seed_pair_id": seedID,
			"game":         "SLOT",
			"slot": map[string]interface{}{
				"stake_per_line": 100,
				"active_lines":   7,
			},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		// A scatter hit can turn later spins into zero-stake free
		// spins, so track what was actually staked.
		stakedSum += envelope["data"].(map[string]interface{})["total_stake"].(float64)
	}

	resp, envelope := app.doJSON(t, http.MethodGet, "/api/v1/bets?page=1&page_size=10", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["total"])
	assert.Len(t, data["items"], 3)

	// Every completed spin leaves a stake and a payout entry
	respTx, envTx := app.doJSON(t, http.MethodGet, "/api/v1/transactions?page=1&page_size=50", token, nil)
	require.Equal(t, http.StatusOK, respTx.StatusCode)
	txData := envTx["data"].(map[string]interface{})
	assert.Equal(t, float64(6), txData["total"])

	// Stats add up
	respStats, envStats := app.doJSON(t, http.MethodGet, "/api/v1/wallets/stats?period=all", token, nil)
	require.Equal(t, http.StatusOK, respStats.StatusCode)
	stats := envStats["data"].(map[string]interface{})
	assert.Equal(t, stakedSum, stats["total_staked"])
	assert.Equal(t, stats["total_paid_out"].(float64)-stats["total_staked"].(float64), stats["net_result"])
}

func TestIntegration_ValidationRejectedBeforeMoneyMoves(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	walletID, token := app.newPlayer(t, 100000)
	seedID := app.commitSeed(t, token, "reject-seed")

	cases := []map[string]interface{}{
		{"seed_pair_id": seedID, "game": "SLOT"}, // missing slot params
		{"seed_pair_id": seedID, "game": "SLOT", "slot": map[string]interface{}{"stake_per_line": 100, "active_lines": 8}},
		{"seed_pair_id": seedID, "game": "ROULETTE", "roulette": []map[string]interface{}{}},
		{"seed_pair_id": seedID, "game": "ROULETTE", "roulette": []map[string]interface{}{{"kind": "STRAIGHT", "stake": 100}}},
		{"seed_pair_id": seedID, "game": "POKER"},
	}
	for i, body := range cases {
		resp, _ := app.doJSON(t, http.MethodPost, "/api/v1/bets", token, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "case %d", i)
	}

	assert.Equal(t, int64(0), app.ledgerSum(t, walletID))
}

// faultResolver fails every outcome derivation.
type faultResolver struct{}

func (faultResolver) SlotGrid(serverSeed, clientSeed string, nonce uint64) (domain.SlotGrid, error) {
	return domain.SlotGrid{}, fmt.Errorf("draw stream exhausted")
}

func (faultResolver) RoulettePocket(serverSeed, clientSeed string, nonce uint64) (int, error) {
	return 0, fmt.Errorf("draw stream exhausted")
}

func (faultResolver) JackpotRoll(serverSeed, clientSeed string, nonce uint64, odds int) (int, error) {
	return 0, fmt.Errorf("draw stream exhausted")
}

func TestIntegration_ResolverFaultRefundsStake(t *testing.T) {
	app := newTestAppWithResolver(t, faultResolver{})
	defer app.close()

	walletID, token := app.newPlayer(t, 100000)
	seedID := app.commitSeed(t, token, "fault-seed")

	resp, envelope := app.doJSON(t, http.MethodPost, "/api/v1/bets", token, map[string]interface{}{
		"seed_pair_id": seedID,
		"game":         "SLOT",
		"slot": map[string]interface{}{
			"stake_per_line": 100,
			"active_lines":   7,
		},
	})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "RNG_001", envelope["error_code"])

	// Stake was debited and then refunded in full
	respBal, envBal := app.doJSON(t, http.MethodGet, "/api/v1/wallets/balance", token, nil)
	require.Equal(t, http.StatusOK, respBal.StatusCode)
	assert.Equal(t, float64(100000), envBal["data"].(map[string]interface{})["balance"])
	assert.Equal(t, int64(0), app.ledgerSum(t, walletID))

	// Both ledger legs remain as an audit trail
	items, total, err := app.txRepo.List(context.Background(), ports.TransactionListParams{
		WalletID: walletID, Page: 1, PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 2)
}

// jackpotResolver derives grids normally but always hits the pool.
type jackpotResolver struct {
	ports.OutcomeResolver
}

func (jackpotResolver) JackpotRoll(serverSeed, clientSeed string, nonce uint64, odds int) (int, error) {
	return 0, nil
}

func TestIntegration_JackpotWinDrainsPoolIntoPayout(t *testing.T) {
	app := newTestAppWithResolver(t, jackpotResolver{OutcomeResolver: service.NewRNGResolver()})
	defer app.close()

	walletID, token := app.newPlayer(t, 1000000)
	seedID := app.commitSeed(t, token, "jackpot-seed")

	// Pool accumulated by earlier play
	require.NoError(t, app.redis.Set("jackpot:pool", "500000"))

	resp, envelope := app.doJSON(t, http.MethodPost, "/api/v1/bets", token, map[string]interface{}{
		"seed_pair_id": seedID,
		"game":         "SLOT",
		"slot": map[string]interface{}{
			"stake_per_line": 100,
			"active_lines":   7,
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	require.Equal(t, "COMPLETED", data["state"])

	// The spin's own contribution (700 * 10 / 1000 = 7) lands before the
	// roll, so the win drains the whole 500007.
	slot := data["slot"].(map[string]interface{})
	assert.Equal(t, float64(500007), slot["jackpot_won"])

	payout := int64(data["total_payout"].(float64))
	assert.GreaterOrEqual(t, payout, int64(500007))
	assert.Equal(t, int64(slot["total_payout"].(float64)), payout)

	// The win settles through the ledger like any payout
	newBalance := int64(data["new_balance"].(float64))
	assert.Equal(t, int64(1000000)-700+payout, newBalance)
	assert.Equal(t, newBalance-1000000, app.ledgerSum(t, walletID))

	// Pool is empty after the hit
	respJ, envJ := app.doJSON(t, http.MethodGet, "/api/v1/jackpot", token, nil)
	require.Equal(t, http.StatusOK, respJ.StatusCode)
	assert.Equal(t, float64(0), envJ["data"].(map[string]interface{})["pool"])
}

func TestIntegration_ConservationOverManySpins(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	walletID, token := app.newPlayer(t, 5000000)
	seedID := app.commitSeed(t, token, "conservation-seed")

	spins := 50
	for i := 0; i < spins; i++ {
		resp, _ := app.doJSON(t, http.MethodPost, "/api/v1/bets", token, map[string]interface{}{
			"seed_pair_id": seedID,
			"game":         "SLOT",
			"slot": map[string]interface{}{
				"stake_per_line": 200,
				"active_lines":   7,
			},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, "spin %d", i)
	}

	wallet, err := app.walletRepo.GetByID(context.Background(), walletID)
	require.NoError(t, err)
	require.NotNil(t, wallet)

	// Every cent is accounted for and the balance never went negative
	assert.Equal(t, int64(5000000)+app.ledgerSum(t, walletID), wallet.Balance)
	assert.GreaterOrEqual(t, wallet.Balance, int64(0))
}
