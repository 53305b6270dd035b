package handler

import (
	"crypto/rand"
	"encoding/hex"

	"casino-wagering-engine/internal/adapter/http/dto"
	"casino-wagering-engine/internal/adapter/http/middleware"
	"casino-wagering-engine/internal/core/domain"
	"casino-wagering-engine/internal/core/ports"
	"casino-wagering-engine/pkg/apperror"
	"casino-wagering-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SeedHandler handles fairness seed endpoints.
type SeedHandler struct {
	fairnessSvc ports.FairnessService
}

// NewSeedHandler creates a new SeedHandler.
func NewSeedHandler(fairnessSvc ports.FairnessService) *SeedHandler {
	return &SeedHandler{fairnessSvc: fairnessSvc}
}

// Commit handles POST /api/v1/seeds.
func (h *SeedHandler) Commit(c *gin.Context) {
	playerID, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CommitSeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	clientSeed := req.ClientSeed
	if clientSeed == "" {
		clientSeed = defaultClientSeed()
	}

	pair, err := h.fairnessSvc.Commit(c.Request.Context(), playerID.(uuid.UUID), clientSeed)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toSeedPairResponse(pair))
}

// Reveal handles POST /api/v1/seeds/:id/reveal.
func (h *SeedHandler) Reveal(c *gin.Context) {
	playerID, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid seed pair id"))
		return
	}

	pair, err := h.fairnessSvc.Reveal(c.Request.Context(), playerID.(uuid.UUID), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSeedPairResponse(pair))
}

// Get handles GET /api/v1/seeds/:id.
func (h *SeedHandler) Get(c *gin.Context) {
	playerID, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid seed pair id"))
		return
	}

	pair, err := h.fairnessSvc.Get(c.Request.Context(), playerID.(uuid.UUID), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toSeedPairResponse(pair))
}

// defaultClientSeed generates a seed for players that do not supply one.
func defaultClientSeed() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// toSeedPairResponse converts domain.SeedPair to DTO.
func toSeedPairResponse(p *domain.SeedPair) dto.SeedPairResponse {
	resp := dto.SeedPairResponse{
		ID:             p.ID.String(),
		ServerSeedHash: p.ServerSeedHash,
		ClientSeed:     p.ClientSeed,
		Nonce:          p.Nonce,
		Revealed:       p.Revealed,
		ServerSeed:     p.ServerSeed,
		CreatedAt:      p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if p.RevealedAt != nil {
		s := p.RevealedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.RevealedAt = &s
	}
	return resp
}
