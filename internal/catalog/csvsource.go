package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Required columns of the tabular catalog source. Optional columns:
// specific_rate, other_rate, special_programs.
var requiredColumns = []string{"code", "description", "general_rate"}

// LoadCSVFile reads a tariff schedule from a CSV file and builds a Catalog.
func LoadCSVFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Line: 0, Reason: fmt.Sprintf("open %s: %v", path, err)}
	}
	defer f.Close()
	return LoadCSV(f)
}

// LoadCSV parses CSV rows into RawEntry records and loads them. The first
// row must be a header naming at least code, description and general_rate.
func LoadCSV(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, &LoadError{Line: 1, Reason: fmt.Sprintf("read header: %v", err)}
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, &LoadError{Line: 1, Reason: fmt.Sprintf("missing required column %q", name)}
		}
	}

	var raw []RawEntry
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &LoadError{Line: line, Reason: fmt.Sprintf("read row: %v", err)}
		}

		entry := RawEntry{
			Code:        field(record, cols, "code"),
			Description: field(record, cols, "description"),
			Line:        line,
		}
		if entry.GeneralRate, err = rateField(record, cols, "general_rate"); err != nil {
			return nil, &LoadError{Line: line, Code: entry.Code, Reason: err.Error()}
		}
		if entry.SpecificRate, err = rateField(record, cols, "specific_rate"); err != nil {
			return nil, &LoadError{Line: line, Code: entry.Code, Reason: err.Error()}
		}
		if entry.OtherRate, err = rateField(record, cols, "other_rate"); err != nil {
			return nil, &LoadError{Line: line, Code: entry.Code, Reason: err.Error()}
		}
		if entry.SpecialPrograms, err = parsePrograms(field(record, cols, "special_programs")); err != nil {
			return nil, &LoadError{Line: line, Code: entry.Code, Reason: err.Error()}
		}

		raw = append(raw, entry)
	}

	return Load(raw)
}

func field(record []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func rateField(record []string, cols map[string]int, name string) (float64, error) {
	s := field(record, cols, name)
	if s == "" {
		return 0, nil
	}
	if strings.EqualFold(s, "free") {
		return 0, nil
	}
	s = strings.TrimSuffix(s, "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return v, nil
}

// parsePrograms parses a "USMCA:free;GSP:2.5" style column into a program map.
// "free" maps to a zero rate.
func parsePrograms(s string) (map[string]float64, error) {
	if s == "" {
		return nil, nil
	}
	programs := make(map[string]float64)
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid special_programs entry %q", pair)
		}
		program := strings.ToUpper(strings.TrimSpace(parts[0]))
		rateStr := strings.TrimSpace(parts[1])
		if strings.EqualFold(rateStr, "free") {
			programs[program] = 0
			continue
		}
		rate, err := strconv.ParseFloat(strings.TrimSuffix(rateStr, "%"), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rate %q for program %s", rateStr, program)
		}
		programs[program] = rate
	}
	return programs, nil
}
