package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tarifflens/tarifflens-api/internal/interfaces"
	"github.com/tarifflens/tarifflens-api/internal/logger"
	"github.com/tarifflens/tarifflens-api/internal/types"
)

// SourcingService compares landed cost for the same shipment across
// candidate countries of origin. Per-country work has no data dependencies,
// so candidates are evaluated in parallel; final ordering is by computed
// cost, not submission order.
type SourcingService struct {
	rates  interfaces.RateService
	costs  interfaces.CostService
	logger *zap.Logger
}

// NewSourcingService creates a sourcing comparator over the given rate and
// cost services.
func NewSourcingService(rates interfaces.RateService, costs interfaces.CostService) *SourcingService {
	return &SourcingService{
		rates:  rates,
		costs:  costs,
		logger: logger.Log,
	}
}

// Compare computes the baseline landed cost and the cost for every candidate
// country, ranked ascending by total. Candidates without modeled rate data
// are omitted with a recorded warning; partial results are valid and
// expected.
func (s *SourcingService) Compare(
	ctx context.Context,
	code string,
	declaredValue float64,
	quantity int64,
	baselineCountry string,
	candidateCountries []string,
	ancillaryByCountry map[string]types.Ancillary,
) (*types.SourcingComparison, error) {
	baselineCountry = strings.ToUpper(strings.TrimSpace(baselineCountry))

	baseline, err := s.evaluate(ctx, code, declaredValue, quantity, baselineCountry, ancillaryByCountry)
	if err != nil {
		return nil, err
	}

	// Dedupe candidates and drop the baseline if it reappears.
	seen := map[string]bool{baselineCountry: true}
	var candidates []string
	for _, country := range candidateCountries {
		country = strings.ToUpper(strings.TrimSpace(country))
		if country == "" || seen[country] {
			continue
		}
		seen[country] = true
		candidates = append(candidates, country)
	}

	results := make([]*types.CountryCost, len(candidates))
	warnings := make([]string, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	for i, country := range candidates {
		i, country := i, country
		g.Go(func() error {
			cc, err := s.evaluate(gctx, code, declaredValue, quantity, country, ancillaryByCountry)
			if err != nil {
				var unsupported *UnsupportedCountryError
				if errors.As(err, &unsupported) {
					warnings[i] = fmt.Sprintf("country %s omitted: no modeled rate data", country)
					s.logger.Warn("Candidate country omitted from comparison",
						zap.String("country", country),
						zap.String("code", code))
					return nil
				}
				return err
			}
			results[i] = cc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	comparison := &types.SourcingComparison{
		ID:          uuid.New().String(),
		Baseline:    *baseline,
		GeneratedAt: time.Now().UTC(),
	}
	for _, w := range warnings {
		if w != "" {
			comparison.Warnings = append(comparison.Warnings, w)
		}
	}
	for _, cc := range results {
		if cc == nil {
			continue
		}
		cc.SavingsVsBaseline = roundCents(baseline.Breakdown.TotalLandedCost - cc.Breakdown.TotalLandedCost)
		comparison.Alternatives = append(comparison.Alternatives, *cc)
	}

	sort.Slice(comparison.Alternatives, func(i, j int) bool {
		a, b := comparison.Alternatives[i], comparison.Alternatives[j]
		if a.Breakdown.TotalLandedCost != b.Breakdown.TotalLandedCost {
			return a.Breakdown.TotalLandedCost < b.Breakdown.TotalLandedCost
		}
		return a.Country < b.Country
	})

	return comparison, nil
}

// evaluate resolves and calculates one country. The ancillary inputs default
// to the baseline-free zero value when the country has no entry in the map.
func (s *SourcingService) evaluate(ctx context.Context, code string, declaredValue float64, quantity int64, country string, ancillaryByCountry map[string]types.Ancillary) (*types.CountryCost, error) {
	program := s.rates.EligibleProgram(code, country)
	rateCtx, err := s.rates.Resolve(ctx, code, country, time.Time{}, program)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.costs.Calculate(rateCtx, declaredValue, quantity, ancillaryByCountry[country])
	if err != nil {
		return nil, err
	}

	return &types.CountryCost{
		Country:     country,
		CountryName: s.rates.CountryName(country),
		Breakdown:   *breakdown,
		RiskLevel:   s.rates.RiskLevel(country),
	}, nil
}
