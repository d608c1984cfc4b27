package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tarifflens/tarifflens-api/internal/interfaces"
	"github.com/tarifflens/tarifflens-api/internal/types"
)

// TariffHandler serves duty rate resolution and landed cost calculation.
type TariffHandler struct {
	common *CommonServices
	rates  interfaces.RateService
	costs  interfaces.CostService
	fx     interfaces.FXService
}

// NewTariffHandler creates a handler with interface dependencies
func NewTariffHandler(common *CommonServices, rates interfaces.RateService, costs interfaces.CostService, fx interfaces.FXService) *TariffHandler {
	return &TariffHandler{
		common: common,
		rates:  rates,
		costs:  costs,
		fx:     fx,
	}
}

// ResolveRateRequest asks for the applicable duty rate for a code and origin.
type ResolveRateRequest struct {
	Code    string `json:"code" binding:"required"`
	Country string `json:"country" binding:"required,len=2"`
	Program string `json:"program"`
	AsOf    string `json:"as_of"` // RFC 3339 date, defaults to "currently in effect"
}

// ResolveRate resolves the duty rate for a code and country of origin
// @Summary Resolve duty rate
// @Description Determine the applicable duty rate for an HTS code, country of origin and optional special program
// @Tags tariff
// @Accept json
// @Produce json
// @Param request body ResolveRateRequest true "Rate request"
// @Success 200 {object} types.RateContext
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /tariff/rate [post]
func (h *TariffHandler) ResolveRate(c *gin.Context) {
	var req ResolveRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	asOf, ok := parseAsOf(c, req.AsOf)
	if !ok {
		return
	}

	rateCtx, err := h.rates.Resolve(c.Request.Context(), req.Code, req.Country, asOf, req.Program)
	if err != nil {
		respondServiceError(c, h.common.GetLogger(), err)
		return
	}

	c.JSON(http.StatusOK, rateCtx)
}

// CalculateRequest carries all inputs of a landed cost calculation.
type CalculateRequest struct {
	Code            string             `json:"code" binding:"required"`
	Country         string             `json:"country" binding:"required,len=2"`
	DeclaredValue   float64            `json:"declared_value"`
	Quantity        int64              `json:"quantity" binding:"required"`
	Program         string             `json:"program"`
	AsOf            string             `json:"as_of"`
	Shipping        float64            `json:"shipping"`
	Insurance       float64            `json:"insurance"`
	Mode            string             `json:"mode"` // ocean, air or land
	ExtraFees       map[string]float64 `json:"extra_fees"`
	DisplayCurrency string             `json:"display_currency"`
}

// Calculate computes the full landed cost for a shipment
// @Summary Calculate landed cost
// @Description Resolve the duty rate and compute duty, fees and total landed cost for a declared value and quantity
// @Tags tariff
// @Accept json
// @Produce json
// @Param request body CalculateRequest true "Calculation request"
// @Success 200 {object} types.CostBreakdown
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /tariff/calculate [post]
func (h *TariffHandler) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	asOf, ok := parseAsOf(c, req.AsOf)
	if !ok {
		return
	}

	rateCtx, err := h.rates.Resolve(c.Request.Context(), req.Code, req.Country, asOf, req.Program)
	if err != nil {
		respondServiceError(c, h.common.GetLogger(), err)
		return
	}

	breakdown, err := h.costs.Calculate(rateCtx, req.DeclaredValue, req.Quantity, types.Ancillary{
		Shipping:  req.Shipping,
		Insurance: req.Insurance,
		Mode:      types.TransportMode(req.Mode),
		ExtraFees: req.ExtraFees,
	})
	if err != nil {
		respondServiceError(c, h.common.GetLogger(), err)
		return
	}

	if req.DisplayCurrency != "" {
		converted, err := h.fx.ConvertBreakdown(c.Request.Context(), breakdown, req.DisplayCurrency)
		if err != nil {
			h.common.GetLogger().Warn("Display currency conversion failed, returning USD",
				zap.String("currency", req.DisplayCurrency),
				zap.Error(err))
		} else {
			breakdown = converted
		}
	}

	c.JSON(http.StatusOK, breakdown)
}

// parseAsOf parses an optional RFC 3339 date, writing a 400 on bad input.
func parseAsOf(c *gin.Context, raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, true
	}
	asOf, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		if asOf, err = time.Parse("2006-01-02", raw); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "as_of must be an RFC 3339 date"})
			return time.Time{}, false
		}
	}
	return asOf, true
}
