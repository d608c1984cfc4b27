package services

import (
	"math"

	"go.uber.org/zap"

	"github.com/tarifflens/tarifflens-api/internal/logger"
	"github.com/tarifflens/tarifflens-api/internal/types"
)

// FeeSchedule configures the flat and percentage-with-floor-and-cap fee
// rules applied to every calculation. Defaults model the US merchandise
// processing fee and harbor maintenance fee.
type FeeSchedule struct {
	ProcessingRate    float64 // merchandise processing, fraction of declared value
	ProcessingFloor   float64
	ProcessingCeiling float64
	HarborRate        float64 // harbor maintenance, ocean shipments only
}

// DefaultFeeSchedule returns the FY2024 MPF/HMF figures.
func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		ProcessingRate:    0.003464,
		ProcessingFloor:   31.67,
		ProcessingCeiling: 614.35,
		HarborRate:        0.00125,
	}
}

// CostService computes landed cost breakdowns from a resolved rate context.
// All monetary math is in USD and rounded to cents component by component, so
// the total invariant holds exactly.
type CostService struct {
	fees   FeeSchedule
	logger *zap.Logger
}

// NewCostService creates a cost service with the default fee schedule.
func NewCostService() *CostService {
	return NewCostServiceWithFees(DefaultFeeSchedule())
}

// NewCostServiceWithFees creates a cost service with a custom fee schedule.
func NewCostServiceWithFees(fees FeeSchedule) *CostService {
	return &CostService{
		fees:   fees,
		logger: logger.Log,
	}
}

// Calculate produces the full cost breakdown for a shipment.
// declaredValue must be non-negative and quantity positive; invalid inputs
// are rejected, not clamped.
func (s *CostService) Calculate(rateCtx *types.RateContext, declaredValue float64, quantity int64, ancillary types.Ancillary) (*types.CostBreakdown, error) {
	if rateCtx == nil {
		return nil, &InvalidInputError{Field: "rate_context", Reason: "missing"}
	}
	if declaredValue < 0 {
		return nil, &InvalidInputError{Field: "declared_value", Reason: "must be non-negative"}
	}
	if quantity <= 0 {
		return nil, &InvalidInputError{Field: "quantity", Reason: "must be positive"}
	}
	if ancillary.Shipping < 0 {
		return nil, &InvalidInputError{Field: "shipping", Reason: "must be non-negative"}
	}
	if ancillary.Insurance < 0 {
		return nil, &InvalidInputError{Field: "insurance", Reason: "must be non-negative"}
	}

	duty := roundCents(declaredValue*rateCtx.EffectiveRatePercent/100 +
		rateCtx.PerUnitAmount*float64(quantity))

	fees := types.Fees{
		Processing: roundCents(clamp(declaredValue*s.fees.ProcessingRate, s.fees.ProcessingFloor, s.fees.ProcessingCeiling)),
	}
	if ancillary.Mode == types.TransportOcean {
		fees.Handling = roundCents(declaredValue * s.fees.HarborRate)
	}
	// Named extra fees merge into the "other" bucket; negative adjustments
	// (rebates) are allowed here and only here.
	for _, amount := range ancillary.ExtraFees {
		fees.Other += amount
	}
	fees.Other = roundCents(fees.Other)

	shipping := roundCents(ancillary.Shipping)
	insurance := roundCents(ancillary.Insurance)
	declared := roundCents(declaredValue)

	total := roundCents(declared + duty + fees.Total() + shipping + insurance)

	return &types.CostBreakdown{
		Code:            rateCtx.Code,
		Country:         rateCtx.Country,
		Currency:        "USD",
		DeclaredValue:   declared,
		Quantity:        quantity,
		DutyAmount:      duty,
		Fees:            fees,
		Shipping:        shipping,
		Insurance:       insurance,
		TotalLandedCost: total,
		ProgramApplied:  rateCtx.ProgramApplied,
	}, nil
}

func clamp(v, floor, ceiling float64) float64 {
	if v < floor {
		return floor
	}
	if v > ceiling {
		return ceiling
	}
	return v
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
