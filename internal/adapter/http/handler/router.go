package handler

import (
	"casino-wagering-engine/internal/adapter/http/middleware"
	"casino-wagering-engine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	FairnessSvc    ports.FairnessService
	WagerSvc       ports.WagerService
	ReportingSvc   ports.ReportingService
	JackpotStore   ports.JackpotStore
	TokenSvc       ports.TokenService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes — all player-facing, behind JWT
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	v1 := r.Group("/api/v1", jwtAuth)

	seedHandler := NewSeedHandler(deps.FairnessSvc)
	seeds := v1.Group("/seeds")
	{
		seeds.POST("", seedHandler.Commit)
		seeds.POST("/:id/reveal", seedHandler.Reveal)
		seeds.GET("/:id", seedHandler.Get)
	}

	betHandler := NewBetHandler(deps.WagerSvc, deps.ReportingSvc)
	bets := v1.Group("/bets")
	{
		bets.POST("", betHandler.PlaceBet)
		bets.GET("", betHandler.ListBets)
		bets.GET("/:id", betHandler.GetBet)
	}

	walletHandler := NewWalletHandler(deps.ReportingSvc, deps.JackpotStore)
	wallets := v1.Group("/wallets")
	{
		wallets.GET("/balance", walletHandler.GetBalance)
		wallets.GET("/stats", walletHandler.GetStats)
	}

	v1.GET("/transactions", walletHandler.ListTransactions)
	v1.GET("/jackpot", walletHandler.GetJackpot)

	return r
}
