// Package types defines the value objects exchanged between the tariff
// services and the API surface. Everything here is constructed fresh per
// request and never mutated after being returned.
package types

import (
	"time"

	"github.com/tarifflens/tarifflens-api/internal/catalog"
)

// MatchKind identifies how a candidate was matched to the query.
type MatchKind string

const (
	MatchExactCode MatchKind = "EXACT_CODE"
	MatchSubstring MatchKind = "SUBSTRING"
	MatchSemantic  MatchKind = "SEMANTIC"
)

// rank orders match kinds for tie-breaking when two paths produce the same
// score for the same code. Lower is stronger.
func (k MatchKind) rank() int {
	switch k {
	case MatchExactCode:
		return 0
	case MatchSubstring:
		return 1
	default:
		return 2
	}
}

// StrongerThan reports whether k wins a tie against other.
func (k MatchKind) StrongerThan(other MatchKind) bool {
	return k.rank() < other.rank()
}

// MatchCandidate is one ranked classification candidate for a query.
type MatchCandidate struct {
	Entry     catalog.HTSEntry `json:"entry"`
	Score     float64          `json:"score"`
	MatchKind MatchKind        `json:"match_kind"`
}

// RateType classifies how a resolved duty rate is computed.
type RateType string

const (
	RateAdValorem RateType = "AD_VALOREM"
	RateSpecific  RateType = "SPECIFIC"
	RateCompound  RateType = "COMPOUND"
	RateFree      RateType = "FREE"
)

// RateContext is the resolved duty rate for a (code, country, program, date)
// tuple. Resolution is a pure function of those inputs.
type RateContext struct {
	Code                 string    `json:"code"`
	Country              string    `json:"country"`
	RateType             RateType  `json:"rate_type"`
	EffectiveRatePercent float64   `json:"effective_rate_percent"`
	PerUnitAmount        float64   `json:"per_unit_amount"`
	ProgramApplied       string    `json:"program_applied,omitempty"`
	SurchargePercent     float64   `json:"surcharge_percent,omitempty"`
	AsOf                 time.Time `json:"as_of"`
}

// TransportMode selects which ancillary customs fees apply.
type TransportMode string

const (
	TransportOcean TransportMode = "ocean"
	TransportAir   TransportMode = "air"
	TransportLand  TransportMode = "land"
)

// Ancillary carries the non-duty cost inputs of a calculation.
type Ancillary struct {
	Shipping  float64            `json:"shipping"`
	Insurance float64            `json:"insurance"`
	Mode      TransportMode      `json:"mode,omitempty"`
	ExtraFees map[string]float64 `json:"extra_fees,omitempty"` // named adjustments, may be negative (rebates)
}

// Fees is the ancillary fee portion of a cost breakdown.
type Fees struct {
	Processing float64 `json:"processing"`
	Handling   float64 `json:"handling"`
	Other      float64 `json:"other"`
}

// Total sums all fee components.
func (f Fees) Total() float64 {
	return f.Processing + f.Handling + f.Other
}

// CostBreakdown is the full landed cost picture for one shipment.
// Invariant: TotalLandedCost == DeclaredValue + DutyAmount + Fees + Shipping + Insurance.
type CostBreakdown struct {
	Code            string  `json:"code"`
	Country         string  `json:"country"`
	Currency        string  `json:"currency"`
	DeclaredValue   float64 `json:"declared_value"`
	Quantity        int64   `json:"quantity"`
	DutyAmount      float64 `json:"duty_amount"`
	Fees            Fees    `json:"fees"`
	Shipping        float64 `json:"shipping"`
	Insurance       float64 `json:"insurance"`
	TotalLandedCost float64 `json:"total_landed_cost"`
	ProgramApplied  string  `json:"program_applied,omitempty"`
}

// CountryCost pairs a cost breakdown with its country and, for alternatives,
// the savings relative to the comparison baseline.
type CountryCost struct {
	Country           string        `json:"country"`
	CountryName       string        `json:"country_name,omitempty"`
	Breakdown         CostBreakdown `json:"breakdown"`
	SavingsVsBaseline float64       `json:"savings_vs_baseline"`
	RiskLevel         string        `json:"risk_level,omitempty"`
}

// SourcingComparison ranks candidate countries of origin by landed cost.
// Alternatives are sorted ascending by TotalLandedCost. Candidates that could
// not be resolved are listed in Warnings rather than failing the comparison.
type SourcingComparison struct {
	ID           string        `json:"id"`
	Baseline     CountryCost   `json:"baseline"`
	Alternatives []CountryCost `json:"alternatives"`
	Warnings     []string      `json:"warnings,omitempty"`
	GeneratedAt  time.Time     `json:"generated_at"`
}
