package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/tarifflens/tarifflens-api/internal/interfaces"
	"github.com/tarifflens/tarifflens-api/internal/logger"
	"github.com/tarifflens/tarifflens-api/internal/types"
)

// FXService converts finished USD cost breakdowns into a display currency.
// Core tariff math always runs in USD; conversion is applied afterwards and
// never feeds back into duty or fee calculation.
type FXService struct {
	provider interfaces.RateProvider
	logger   *zap.Logger
}

// NewFXService creates an FX service over the given rate provider.
func NewFXService(provider interfaces.RateProvider) *FXService {
	return &FXService{
		provider: provider,
		logger:   logger.Log,
	}
}

// ConvertBreakdown returns a copy of the breakdown with all monetary fields
// converted. The total is recomputed from the converted components so the
// sum invariant survives rounding.
func (s *FXService) ConvertBreakdown(ctx context.Context, breakdown *types.CostBreakdown, currency string) (*types.CostBreakdown, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" || currency == breakdown.Currency {
		out := *breakdown
		return &out, nil
	}

	rate, err := s.provider.Rate(ctx, breakdown.Currency, currency)
	if err != nil {
		return nil, errors.Wrapf(err, "converting %s to %s", breakdown.Currency, currency)
	}

	out := *breakdown
	out.Currency = currency
	out.DeclaredValue = roundCents(breakdown.DeclaredValue * rate)
	out.DutyAmount = roundCents(breakdown.DutyAmount * rate)
	out.Fees = types.Fees{
		Processing: roundCents(breakdown.Fees.Processing * rate),
		Handling:   roundCents(breakdown.Fees.Handling * rate),
		Other:      roundCents(breakdown.Fees.Other * rate),
	}
	out.Shipping = roundCents(breakdown.Shipping * rate)
	out.Insurance = roundCents(breakdown.Insurance * rate)
	out.TotalLandedCost = roundCents(out.DeclaredValue + out.DutyAmount + out.Fees.Total() + out.Shipping + out.Insurance)

	return &out, nil
}

// StaticRateProvider serves conversion rates from a fixed in-memory table.
// Used when no live rate source is configured.
type StaticRateProvider struct {
	perUSD map[string]float64
}

// NewStaticRateProvider creates a provider from USD-based rates.
func NewStaticRateProvider(perUSD map[string]float64) *StaticRateProvider {
	return &StaticRateProvider{perUSD: perUSD}
}

// DefaultStaticRateProvider returns a provider with a snapshot of major
// currency rates per USD.
func DefaultStaticRateProvider() *StaticRateProvider {
	return NewStaticRateProvider(map[string]float64{
		"USD": 1.0,
		"EUR": 0.92,
		"GBP": 0.79,
		"JPY": 147.2,
		"CNY": 7.12,
		"MXN": 17.05,
		"CAD": 1.36,
		"INR": 83.1,
		"VND": 24650.0,
	})
}

// Rate returns the multiplier converting from one currency to another.
func (p *StaticRateProvider) Rate(_ context.Context, from, to string) (float64, error) {
	fromRate, ok := p.perUSD[strings.ToUpper(from)]
	if !ok {
		return 0, errors.Errorf("no rate for currency %q", from)
	}
	toRate, ok := p.perUSD[strings.ToUpper(to)]
	if !ok {
		return 0, errors.Errorf("no rate for currency %q", to)
	}
	return toRate / fromRate, nil
}
