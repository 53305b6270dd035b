package handler

import (
	"math"
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

// BetHandler handles bet placement and history endpoints.
type BetHandler struct {
	wagerSvc     ports.WagerService
	reportingSvc ports.ReportingService
}

// NewBetHandler creates a new BetHandler.
func NewBetHandler(wagerSvc ports.WagerService, reportingSvc ports.ReportingService) *BetHandler {
	return &BetHandler{wagerSvc: wagerSvc, reportingSvc: reportingSvc}
}

// PlaceBet handles POST /api/v1/bets.
func (h *BetHandler) PlaceBet(c *gin.Context) {
	playerID, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	walletID, ok := c.Get(middleware.CtxWalletID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.PlaceBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	betReq, err := toBetRequest(playerID.(uuid.UUID), walletID.(uuid.UUID), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	bet, err := h.wagerSvc.PlaceBet(c.Request.Context(), betReq)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := toBetResponse(bet)
	if balance, _, berr := h.reportingSvc.GetWalletBalance(c.Request.Context(), bet.WalletID); berr == nil {
		resp.NewBalance = &balance
	}

	response.Created(c, resp)
}

// GetBet handles GET /api/v1/bets/:id.
func (h *BetHandler) GetBet(c *gin.Context) {
	walletID, ok := c.Get(middleware.CtxWalletID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid bet id"))
		return
	}

	bet, err := h.wagerSvc.GetBet(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	// A bet is visible only to the wallet that placed it.
	if bet.WalletID != walletID.(uuid.UUID) {
		response.Error(c, apperror.ErrBetNotFound())
		return
	}

	response.OK(c, toBetResponse(bet))
}

// ListBets handles GET /api/v1/bets.
func (h *BetHandler) ListBets(c *gin.Context) {
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

	bets, total, err := h.wagerSvc.ListBets(c.Request.Context(), walletID.(uuid.UUID), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.BetResponse, 0, len(bets))
	for i := range bets {
		items = append(items, toBetResponse(&bets[i]))
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

	response.OK(c, dto.BetListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

// toBetRequest maps the wire request onto the domain bet request.
func toBetRequest(playerID, walletID uuid.UUID, req dto.PlaceBetRequest) (domain.BetRequest, error) {
	seedPairID, err := uuid.Parse(req.SeedPairID)
	if err != nil {
		return domain.BetRequest{}, apperror.Validation("invalid seed pair id")
	}

	betReq := domain.BetRequest{
		PlayerID:   playerID,
		WalletID:   walletID,
		SeedPairID: seedPairID,
		Game:       domain.GameType(req.Game),
	}

	if req.Slot != nil {
		multiplier := req.Slot.ActiveMultiplier
		if multiplier == 0 {
			multiplier = 1
		}
		betReq.Slot = &domain.SlotBetParams{
			StakePerLine:     req.Slot.StakePerLine,
			ActiveLines:      req.Slot.ActiveLines,
			ActiveMultiplier: multiplier,
		}
	}

	for _, sel := range req.Roulette {
		ds, err := sel.ToDomain()
		if err != nil {
			return domain.BetRequest{}, apperror.Validation(err.Error())
		}
		betReq.Roulette = append(betReq.Roulette, ds)
	}

	return betReq, nil
}

// toBetResponse converts domain.ResolvedBet to DTO.
func toBetResponse(bet *domain.ResolvedBet) dto.BetResponse {
	resp := dto.BetResponse{
		BetID:             bet.ID.String(),
		Game:              string(bet.Game),
		State:             string(bet.State),
		TotalStake:        bet.TotalStake,
		TotalPayout:       bet.TotalPayout,
		BonusSpinsAwarded: bet.BonusSpinsAwarded,
		Slot:              bet.Slot,
		Roulette:          bet.Roulette,
		FairnessProof:     bet.Proof,
		CreatedAt:         bet.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if bet.SettledAt != nil {
		s := bet.SettledAt.Format("2006-01-02T15:04:05Z07:00")
		resp.SettledAt = &s
	}
	return resp
}
