package handler

import (
	"math"
	"net/http"
	"strconv"

	"casino-wagering-engine/internal/adapter/http/dto"
	"casino-wagering-engine/internal/adapter/http/middleware"
	"casino-wagering-engine/internal/core/domain"
	"casino-wagering-engine/internal/core/ports"
	"casino-wagering-engine/pkg/apperror"
	"casino-wagering-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles wallet, transaction and jackpot endpoints.
type WalletHandler struct {
	reportingSvc ports.ReportingService
	jackpot      ports.JackpotStore
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(reportingSvc ports.ReportingService, jackpot ports.JackpotStore) *WalletHandler {
	return &WalletHandler{
		reportingSvc: reportingSvc,
		jackpot:      jackpot,
	}
}

// GetBalance handles GET /api/v1/wallets/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	walletID, ok := c.Get(middleware.CtxWalletID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	balance, currency, err := h.reportingSvc.GetWalletBalance(c.Request.Context(), walletID.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WalletBalanceResponse{
		Balance:  balance,
		Currency: currency,
	})
}

// GetStats handles GET /api/v1/wallets/stats.
func (h *WalletHandler) GetStats(c *gin.Context) {
	walletID, ok := c.Get(middleware.CtxWalletID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	period := c.DefaultQuery("period", "all")
	stats, err := h.reportingSvc.GetWalletStats(c.Request.Context(), walletID.(uuid.UUID), period)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WalletStatsResponse{
		TotalTransactions: stats.TotalTransactions,
		Committed:         stats.Committed,
		Failed:            stats.Failed,
		TotalStaked:       stats.TotalStaked,
		TotalPaidOut:      stats.TotalPaidOut,
		NetResult:         stats.NetResult,
	})
}

// ListTransactions handles GET /api/v1/transactions.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	walletID, ok := c.Get(middleware.CtxWalletID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	params := ports.TransactionListParams{
		WalletID: walletID.(uuid.UUID),
		Page:     page,
		PageSize: pageSize,
	}

	if s := c.Query("status"); s != "" {
		status := domain.TransactionStatus(s)
		params.Status = &status
	}
	if t := c.Query("type"); t != "" {
		txType := domain.TransactionType(t)
		params.Type = &txType
	}
	if f := c.Query("from"); f != "" {
		if v, err := strconv.ParseInt(f, 10, 64); err == nil {
			params.From = &v
		}
	}
	if t := c.Query("to"); t != "" {
		if v, err := strconv.ParseInt(t, 10, 64); err == nil {
			params.To = &v
		}
	}

	txns, total, err := h.reportingSvc.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, toTransactionResponse(&txns[i]))
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

	response.OK(c, dto.TransactionListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

// GetJackpot handles GET /api/v1/jackpot.
func (h *WalletHandler) GetJackpot(c *gin.Context) {
	pool, err := h.jackpot.Current(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, dto.JackpotResponse{Pool: pool})
}

// toTransactionResponse converts domain.Transaction to DTO.
func toTransactionResponse(tx *domain.Transaction) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		ID:            tx.ID.String(),
		Type:          string(tx.Type),
		Status:        string(tx.Status),
		Amount:        tx.Amount,
		BalanceBefore: tx.BalanceBefore,
		BalanceAfter:  tx.BalanceAfter,
		Reason:        tx.Reason,
		CreatedAt:     tx.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if tx.BetID != nil {
		resp.BetID = tx.BetID.String()
	}
	return resp
}

// HealthCheck returns a handler that pings every registered dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
