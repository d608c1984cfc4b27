// Package catalog holds the Harmonized Tariff Schedule ground truth: every
// entry the matcher and rate resolver consult. A Catalog is immutable after
// Load; refreshes build a new Catalog and swap it atomically via Store.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned by Lookup when a code is absent from the catalog.
var ErrNotFound = fmt.Errorf("hts code not found in catalog")

// LoadError reports a malformed catalog source. The process must not serve
// traffic with a broken catalog, so callers treat this as fatal at startup.
type LoadError struct {
	Line   int
	Code   string
	Reason string
}

func (e *LoadError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("catalog load failed at line %d (code %q): %s", e.Line, e.Code, e.Reason)
	}
	return fmt.Sprintf("catalog load failed at line %d: %s", e.Line, e.Reason)
}

// RawEntry is a single as-ingested tariff schedule row, before normalization.
// Sources (CSV file, database table) produce these; Load validates them.
type RawEntry struct {
	Code            string
	Description     string
	GeneralRate     float64            // ad valorem percent
	SpecificRate    float64            // USD per unit
	OtherRate       float64            // USD per unit
	SpecialPrograms map[string]float64 // program code -> overriding ad valorem percent (0 = free)
	Line            int                // source line, for load diagnostics
}

// HTSEntry is a normalized tariff schedule line. Value object; never mutated
// after Load.
type HTSEntry struct {
	Code            string             `json:"code"`     // canonical XXXX.XX.XXXX form
	RawCode         string             `json:"raw_code"` // as ingested
	Description     string             `json:"description"`
	GeneralRate     float64            `json:"general_rate"`
	SpecificRate    float64            `json:"specific_rate"`
	OtherRate       float64            `json:"other_rate"`
	SpecialPrograms map[string]float64 `json:"special_programs,omitempty"`
}

// Chapter returns the two-digit HTS chapter of the entry, used for
// country surcharge tables keyed by country+chapter.
func (e HTSEntry) Chapter() string {
	digits := digitsOnly(e.Code)
	if len(digits) < 2 {
		return ""
	}
	return digits[:2]
}

// Catalog is an immutable snapshot of the tariff schedule.
type Catalog struct {
	entries []HTSEntry
	byCode  map[string]int
}

// Load validates and normalizes raw entries into a Catalog.
// Two distinct raw codes that normalize to the same canonical code are an
// ambiguous duplicate and fail the whole load rather than being merged.
func Load(raw []RawEntry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]HTSEntry, 0, len(raw)),
		byCode:  make(map[string]int, len(raw)),
	}

	for _, r := range raw {
		code, err := NormalizeCode(r.Code)
		if err != nil {
			return nil, &LoadError{Line: r.Line, Code: r.Code, Reason: err.Error()}
		}
		if strings.TrimSpace(r.Description) == "" {
			return nil, &LoadError{Line: r.Line, Code: r.Code, Reason: "empty description"}
		}
		if r.GeneralRate < 0 || r.SpecificRate < 0 || r.OtherRate < 0 {
			return nil, &LoadError{Line: r.Line, Code: r.Code, Reason: "negative rate"}
		}
		for program, rate := range r.SpecialPrograms {
			if rate < 0 {
				return nil, &LoadError{Line: r.Line, Code: r.Code, Reason: fmt.Sprintf("negative rate for program %s", program)}
			}
		}
		if prev, dup := c.byCode[code]; dup {
			return nil, &LoadError{
				Line: r.Line,
				Code: r.Code,
				Reason: fmt.Sprintf("ambiguous duplicate: %q and %q both normalize to %s",
					c.entries[prev].RawCode, r.Code, code),
			}
		}

		var programs map[string]float64
		if len(r.SpecialPrograms) > 0 {
			programs = make(map[string]float64, len(r.SpecialPrograms))
			for program, rate := range r.SpecialPrograms {
				programs[strings.ToUpper(strings.TrimSpace(program))] = rate
			}
		}

		c.byCode[code] = len(c.entries)
		c.entries = append(c.entries, HTSEntry{
			Code:            code,
			RawCode:         r.Code,
			Description:     strings.TrimSpace(r.Description),
			GeneralRate:     r.GeneralRate,
			SpecificRate:    r.SpecificRate,
			OtherRate:       r.OtherRate,
			SpecialPrograms: programs,
		})
	}

	// Deterministic iteration order regardless of source ordering.
	sort.Slice(c.entries, func(i, j int) bool { return c.entries[i].Code < c.entries[j].Code })
	for i := range c.entries {
		c.byCode[c.entries[i].Code] = i
	}

	return c, nil
}

// Lookup returns the entry for a code, accepting raw or canonical form.
func (c *Catalog) Lookup(code string) (HTSEntry, error) {
	normalized, err := NormalizeCode(code)
	if err != nil {
		return HTSEntry{}, ErrNotFound
	}
	idx, ok := c.byCode[normalized]
	if !ok {
		return HTSEntry{}, ErrNotFound
	}
	return c.entries[idx], nil
}

// All returns every entry in canonical code order. The slice is a copy; the
// snapshot itself stays immutable.
func (c *Catalog) All() []HTSEntry {
	out := make([]HTSEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries in the snapshot.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Descriptions returns entry descriptions in the same order as All, used as
// the corpus for semantic similarity ranking.
func (c *Catalog) Descriptions() []string {
	out := make([]string, len(c.entries))
	for i := range c.entries {
		out[i] = c.entries[i].Description
	}
	return out
}

// NormalizeCode strips punctuation from an HTS code and formats it in the
// canonical XXXX.XX.XXXX form. Codes shorter than ten digits (headings and
// subheadings) are right-padded with zeros.
func NormalizeCode(code string) (string, error) {
	digits := digitsOnly(code)
	switch {
	case len(digits) == 0:
		return "", fmt.Errorf("code %q contains no digits", code)
	case len(digits) < 4:
		return "", fmt.Errorf("code %q is shorter than a 4-digit heading", code)
	case len(digits) > 10:
		return "", fmt.Errorf("code %q exceeds 10 digits", code)
	}
	for len(digits) < 10 {
		digits += "0"
	}
	return digits[:4] + "." + digits[4:6] + "." + digits[6:], nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
