package services

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/tarifflens/tarifflens-api/internal/catalog"
	"github.com/tarifflens/tarifflens-api/internal/logger"
	"github.com/tarifflens/tarifflens-api/internal/types"
)

// RateService resolves the applicable duty rate for a (code, country,
// program, as-of date) tuple against the current catalog snapshot.
// Resolution is a pure function of its inputs; nothing is cached across
// requests.
type RateService struct {
	store     *catalog.Store
	reference *RateReference
	logger    *zap.Logger
}

// NewRateService creates a rate service with the default reference data.
func NewRateService(store *catalog.Store) *RateService {
	return NewRateServiceWithReference(store, DefaultRateReference())
}

// NewRateServiceWithReference creates a rate service with injected reference
// data, used by tests and by deployments that maintain their own program and
// surcharge tables.
func NewRateServiceWithReference(store *catalog.Store, reference *RateReference) *RateService {
	return &RateService{
		store:     store,
		reference: reference,
		logger:    logger.Log,
	}
}

// Resolve determines the duty rate for the code and country of origin.
// A requested program applies only when the entry carries it and the country
// is eligible; otherwise the general rate is the fallback. Punitive
// surcharges stack additively on top of whichever base rate was selected.
func (s *RateService) Resolve(ctx context.Context, code, country string, asOf time.Time, program string) (*types.RateContext, error) {
	country = strings.ToUpper(strings.TrimSpace(country))
	if !s.reference.IsSupportedCountry(country) {
		return nil, &UnsupportedCountryError{Country: country}
	}

	entry, err := s.store.Snapshot().Lookup(code)
	if err != nil {
		return nil, errors.Wrapf(ErrCodeNotFound, "code %q", code)
	}

	ratePercent := entry.GeneralRate
	programApplied := ""
	if program != "" {
		program = strings.ToUpper(strings.TrimSpace(program))
		if override, has := entry.SpecialPrograms[program]; has && s.reference.IsProgramEligible(program, country) {
			ratePercent = override
			programApplied = program
		} else {
			s.logger.Debug("Requested program not applicable, falling back to general rate",
				zap.String("code", entry.Code),
				zap.String("country", country),
				zap.String("program", program))
		}
	}

	surcharge := s.reference.SurchargePercent(country, entry.Chapter(), asOf)
	effective := ratePercent + surcharge
	perUnit := entry.SpecificRate + entry.OtherRate

	rateType := types.RateFree
	switch {
	case effective > 0 && perUnit > 0:
		rateType = types.RateCompound
	case effective > 0:
		rateType = types.RateAdValorem
	case perUnit > 0:
		rateType = types.RateSpecific
	}

	return &types.RateContext{
		Code:                 entry.Code,
		Country:              country,
		RateType:             rateType,
		EffectiveRatePercent: effective,
		PerUnitAmount:        perUnit,
		ProgramApplied:       programApplied,
		SurchargePercent:     surcharge,
		AsOf:                 asOf,
	}, nil
}

// EligibleProgram returns the special program yielding the lowest rate for
// which the country qualifies, or "" when none applies. The sourcing
// comparator uses this so each candidate country is costed at its best
// available preference.
func (s *RateService) EligibleProgram(code, country string) string {
	country = strings.ToUpper(strings.TrimSpace(country))
	entry, err := s.store.Snapshot().Lookup(code)
	if err != nil {
		return ""
	}

	best := ""
	bestRate := entry.GeneralRate
	for program, rate := range entry.SpecialPrograms {
		if !s.reference.IsProgramEligible(program, country) {
			continue
		}
		if rate < bestRate || (rate == bestRate && best != "" && program < best) {
			best = program
			bestRate = rate
		}
	}
	return best
}

// IsSupportedCountry reports whether the country has modeled rate data.
func (s *RateService) IsSupportedCountry(country string) bool {
	return s.reference.IsSupportedCountry(strings.ToUpper(strings.TrimSpace(country)))
}

// CountryName returns the human-readable name for a country code.
func (s *RateService) CountryName(country string) string {
	return s.reference.CountryName(strings.ToUpper(strings.TrimSpace(country)))
}

// RiskLevel returns the qualitative sourcing risk for a country.
func (s *RateService) RiskLevel(country string) string {
	return s.reference.RiskLevel(strings.ToUpper(strings.TrimSpace(country)))
}
