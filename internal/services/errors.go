package services

import (
	"errors"
	"fmt"
)

// ErrCodeNotFound is returned when a requested HTS code is absent from the
// current catalog snapshot.
var ErrCodeNotFound = errors.New("hts code not found")

// UnsupportedCountryError reports a country with no modeled rate data at all.
// This is distinct from "general rate applies", which is the default for any
// recognized country.
type UnsupportedCountryError struct {
	Country string
}

func (e *UnsupportedCountryError) Error() string {
	return fmt.Sprintf("country %q has no modeled rate data", e.Country)
}

// InvalidInputError rejects a calculation input. Inputs are rejected, never
// silently coerced.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}
