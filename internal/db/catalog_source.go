// Package db loads the tariff schedule from Postgres for deployments that
// manage the catalog in a database instead of a flat file. The rows feed the
// same catalog.Load validation path as the CSV source.
package db

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/tarifflens/tarifflens-api/internal/catalog"
)

const selectEntries = `
SELECT code, description, general_rate, specific_rate, other_rate, special_programs
FROM hts_entries
ORDER BY code`

// CatalogSource reads tariff schedule rows from the hts_entries table.
type CatalogSource struct {
	pool *pgxpool.Pool
}

// NewCatalogSource creates a catalog source over a pgx connection pool.
func NewCatalogSource(pool *pgxpool.Pool) *CatalogSource {
	return &CatalogSource{pool: pool}
}

// Load fetches all rows and builds a validated catalog snapshot.
func (s *CatalogSource) Load(ctx context.Context) (*catalog.Catalog, error) {
	rows, err := s.pool.Query(ctx, selectEntries)
	if err != nil {
		return nil, errors.Wrap(err, "querying hts_entries")
	}
	defer rows.Close()

	var raw []catalog.RawEntry
	line := 0
	for rows.Next() {
		line++
		var (
			entry    catalog.RawEntry
			programs []byte
		)
		if err := rows.Scan(&entry.Code, &entry.Description, &entry.GeneralRate,
			&entry.SpecificRate, &entry.OtherRate, &programs); err != nil {
			return nil, errors.Wrap(err, "scanning hts_entries row")
		}
		if len(programs) > 0 {
			if err := json.Unmarshal(programs, &entry.SpecialPrograms); err != nil {
				return nil, errors.Wrapf(err, "parsing special_programs for code %s", entry.Code)
			}
		}
		entry.Line = line
		raw = append(raw, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "reading hts_entries rows")
	}

	return catalog.Load(raw)
}
