package services

import (
	"time"
)

// SurchargeRule is a punitive surcharge layered on top of the base duty
// determination for a country, optionally scoped to an HTS chapter.
// Surcharges stack with, never replace, the base rate.
type SurchargeRule struct {
	Country       string
	Chapter       string // two-digit HTS chapter, empty means all chapters
	Percent       float64
	EffectiveFrom time.Time
	Label         string
}

// RateReference bundles the external reference data rate resolution depends
// on: recognized countries, program-country eligibility, surcharge tables and
// qualitative sourcing risk. It is immutable after construction.
type RateReference struct {
	countryNames map[string]string
	eligibility  map[string]map[string]bool // program -> country set
	surcharges   []SurchargeRule
	riskLevels   map[string]string
}

// NewRateReference builds reference data from explicit tables.
func NewRateReference(
	countryNames map[string]string,
	eligibility map[string]map[string]bool,
	surcharges []SurchargeRule,
	riskLevels map[string]string,
) *RateReference {
	return &RateReference{
		countryNames: countryNames,
		eligibility:  eligibility,
		surcharges:   surcharges,
		riskLevels:   riskLevels,
	}
}

// IsSupportedCountry reports whether the country has modeled rate data.
func (r *RateReference) IsSupportedCountry(country string) bool {
	_, ok := r.countryNames[country]
	return ok
}

// CountryName returns the human-readable country name, or the code itself
// for unknown countries.
func (r *RateReference) CountryName(country string) string {
	if name, ok := r.countryNames[country]; ok {
		return name
	}
	return country
}

// IsProgramEligible reports whether the country qualifies for the special
// program.
func (r *RateReference) IsProgramEligible(program, country string) bool {
	countries, ok := r.eligibility[program]
	return ok && countries[country]
}

// SurchargePercent sums the surcharge rules in effect for the country and
// chapter as of the given date. A zero asOf means "currently in effect".
func (r *RateReference) SurchargePercent(country, chapter string, asOf time.Time) float64 {
	total := 0.0
	for _, rule := range r.surcharges {
		if rule.Country != country {
			continue
		}
		if rule.Chapter != "" && rule.Chapter != chapter {
			continue
		}
		if !asOf.IsZero() && asOf.Before(rule.EffectiveFrom) {
			continue
		}
		total += rule.Percent
	}
	return total
}

// RiskLevel returns the qualitative sourcing risk for a country, defaulting
// to "medium" for countries without an assessment.
func (r *RateReference) RiskLevel(country string) string {
	if level, ok := r.riskLevels[country]; ok {
		return level
	}
	return "medium"
}

// DefaultRateReference returns the built-in reference tables. In production
// these would be refreshed from official publications; the modeled subset
// covers the major sourcing markets.
func DefaultRateReference() *RateReference {
	countryNames := map[string]string{
		"US": "United States", "CN": "China", "MX": "Mexico", "CA": "Canada",
		"VN": "Vietnam", "IN": "India", "TH": "Thailand", "ID": "Indonesia",
		"MY": "Malaysia", "PH": "Philippines", "BD": "Bangladesh", "KH": "Cambodia",
		"KR": "South Korea", "JP": "Japan", "TW": "Taiwan", "DE": "Germany",
		"IT": "Italy", "FR": "France", "GB": "United Kingdom", "ES": "Spain",
		"PL": "Poland", "TR": "Turkey", "BR": "Brazil", "CO": "Colombia",
		"PE": "Peru", "CL": "Chile", "AU": "Australia", "PK": "Pakistan",
	}

	eligibility := map[string]map[string]bool{
		"USMCA": {"MX": true, "CA": true},
		"KORUS": {"KR": true},
		"AUFTA": {"AU": true},
		"CLFTA": {"CL": true},
		"COFTA": {"CO": true},
		"PEFTA": {"PE": true},
		"GSP": {
			"TH": true, "ID": true, "PH": true, "KH": true,
			"BR": true, "PK": true, "TR": true,
		},
	}

	// Section 301 style additional duties on Chinese-origin goods, scoped by
	// chapter for the modeled subset.
	surcharges := []SurchargeRule{
		{Country: "CN", Chapter: "84", Percent: 25.0, EffectiveFrom: date(2018, 7, 6), Label: "Section 301 List 1"},
		{Country: "CN", Chapter: "85", Percent: 25.0, EffectiveFrom: date(2018, 8, 23), Label: "Section 301 List 2"},
		{Country: "CN", Chapter: "39", Percent: 25.0, EffectiveFrom: date(2018, 9, 24), Label: "Section 301 List 3"},
		{Country: "CN", Chapter: "73", Percent: 25.0, EffectiveFrom: date(2018, 9, 24), Label: "Section 301 List 3"},
		{Country: "CN", Chapter: "61", Percent: 7.5, EffectiveFrom: date(2019, 9, 1), Label: "Section 301 List 4A"},
		{Country: "CN", Chapter: "62", Percent: 7.5, EffectiveFrom: date(2019, 9, 1), Label: "Section 301 List 4A"},
		{Country: "CN", Chapter: "64", Percent: 7.5, EffectiveFrom: date(2019, 9, 1), Label: "Section 301 List 4A"},
		{Country: "CN", Chapter: "94", Percent: 25.0, EffectiveFrom: date(2018, 9, 24), Label: "Section 301 List 3"},
	}

	riskLevels := map[string]string{
		"US": "low", "CA": "low", "MX": "low", "DE": "low", "JP": "low",
		"KR": "low", "GB": "low", "FR": "low", "IT": "low", "ES": "low",
		"AU": "low", "TW": "low", "PL": "low", "CL": "low",
		"CN": "high", "BD": "high", "KH": "high", "PK": "high",
		"VN": "medium", "IN": "medium", "TH": "medium", "ID": "medium",
		"MY": "medium", "PH": "medium", "TR": "medium", "BR": "medium",
		"CO": "medium", "PE": "medium",
	}

	return NewRateReference(countryNames, eligibility, surcharges, riskLevels)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
