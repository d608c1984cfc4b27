package interfaces

import (
	"context"
	"time"

	"github.com/tarifflens/tarifflens-api/internal/types"
)

// ClassificationService maps free-text product queries to ranked HTS
// candidates.
type ClassificationService interface {
	Match(ctx context.Context, query string, limit int) ([]types.MatchCandidate, error)
}

// RateService resolves the applicable duty rate for a code and country of
// origin, honoring special programs and punitive surcharges.
type RateService interface {
	Resolve(ctx context.Context, code, country string, asOf time.Time, program string) (*types.RateContext, error)
	EligibleProgram(code, country string) string
	IsSupportedCountry(country string) bool
	CountryName(country string) string
	RiskLevel(country string) string
}

// CostService turns a resolved rate plus shipment inputs into a full landed
// cost breakdown.
type CostService interface {
	Calculate(rateCtx *types.RateContext, declaredValue float64, quantity int64, ancillary types.Ancillary) (*types.CostBreakdown, error)
}

// SourcingService compares landed cost for the same shipment across candidate
// countries of origin.
type SourcingService interface {
	Compare(ctx context.Context, code string, declaredValue float64, quantity int64, baselineCountry string, candidateCountries []string, ancillaryByCountry map[string]types.Ancillary) (*types.SourcingComparison, error)
}

// FXService converts finished cost breakdowns into a display currency.
type FXService interface {
	ConvertBreakdown(ctx context.Context, breakdown *types.CostBreakdown, currency string) (*types.CostBreakdown, error)
}
