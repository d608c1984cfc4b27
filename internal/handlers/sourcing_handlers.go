package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tarifflens/tarifflens-api/internal/interfaces"
	"github.com/tarifflens/tarifflens-api/internal/types"
)

// SourcingHandler serves multi-country landed cost comparisons.
type SourcingHandler struct {
	common   *CommonServices
	sourcing interfaces.SourcingService
}

// NewSourcingHandler creates a handler with interface dependencies
func NewSourcingHandler(common *CommonServices, sourcing interfaces.SourcingService) *SourcingHandler {
	return &SourcingHandler{
		common:   common,
		sourcing: sourcing,
	}
}

// CompareRequest asks for a sourcing comparison across candidate countries.
type CompareRequest struct {
	Code               string                     `json:"code" binding:"required"`
	DeclaredValue      float64                    `json:"declared_value"`
	Quantity           int64                      `json:"quantity" binding:"required"`
	BaselineCountry    string                     `json:"baseline_country" binding:"required,len=2"`
	Countries          []string                   `json:"countries" binding:"required,min=1"`
	AncillaryByCountry map[string]types.Ancillary `json:"ancillary_by_country"`
}

// Compare ranks candidate countries of origin by total landed cost
// @Summary Compare sourcing countries
// @Description Compute landed cost for the same shipment across candidate countries of origin and rank them against a baseline
// @Tags sourcing
// @Accept json
// @Produce json
// @Param request body CompareRequest true "Comparison request"
// @Success 200 {object} types.SourcingComparison
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /tariff/compare [post]
func (h *SourcingHandler) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	comparison, err := h.sourcing.Compare(
		c.Request.Context(),
		req.Code,
		req.DeclaredValue,
		req.Quantity,
		req.BaselineCountry,
		req.Countries,
		req.AncillaryByCountry,
	)
	if err != nil {
		respondServiceError(c, h.common.GetLogger(), err)
		return
	}

	c.JSON(http.StatusOK, comparison)
}
