package cleaner

import (
	"listingprep/internal/cities"
	"listingprep/internal/dataset"
	"listingprep/internal/logger"
)

// CityColumn is the listing column holding the raw metro identifier.
const CityColumn = "city_full"

// Enricher normalizes listing city names and left-joins coordinates from the
// metro lookup table.
type Enricher struct {
	metros *dataset.Frame
	log    *logger.Logger
}

// NewEnricher creates an enricher. A nil metro frame disables the coordinate
// merge entirely; city normalization still runs.
func NewEnricher(metros *dataset.Frame, log *logger.Logger) *Enricher {
	return &Enricher{
		metros: metros,
		log:    log,
	}
}

// Enrich canonicalizes the city column in place, then attaches lat/lng from
// the metro table. The merge is best-effort: rows without a match keep empty
// coordinate cells. Returns the merge outcome and the distinct city values
// that found no match.
func (e *Enricher) Enrich(frame *dataset.Frame) (Outcome, []string) {
	cityIdx := frame.ColumnIndex(CityColumn)
	if cityIdx < 0 {
		e.log.Warn("⚠️ skipping city merge: no city_full column present")

		return skipped(SkipNoCityColumn), nil
	}

	for _, row := range frame.Rows {
		row[cityIdx] = cities.Canonical(row[cityIdx])
	}

	// Enrichment is at-most-once: existing coordinates are never touched.
	if frame.HasColumns(cities.LatColumn, cities.LngColumn) {
		e.log.Warn("⚠️ skipping lat/lng merge: coordinates already present")

		return skipped(SkipCoordsPresent), nil
	}

	if e.metros == nil {
		e.log.Warn("⚠️ skipping lat/lng merge: no metro table supplied")

		return skipped(SkipNoMetroTable), nil
	}

	metroIdx := e.metros.ColumnIndex(cities.MetroColumn)
	latIdx := e.metros.ColumnIndex(cities.LatColumn)
	lngIdx := e.metros.ColumnIndex(cities.LngColumn)

	if metroIdx < 0 || latIdx < 0 || lngIdx < 0 {
		e.log.Warn("⚠️ skipping lat/lng merge: metro table missing required columns")

		return skipped(SkipMetroTableColumns), nil
	}

	type coords struct {
		lat string
		lng string
	}

	lookup := make(map[string]coords, e.metros.NumRows())
	for _, row := range e.metros.Rows {
		lookup[cities.Normalize(row[metroIdx])] = coords{lat: row[latIdx], lng: row[lngIdx]}
	}

	lats := make([]string, frame.NumRows())
	lngs := make([]string, frame.NumRows())

	var missing []string

	seen := make(map[string]bool)

	for i, row := range frame.Rows {
		match, ok := lookup[row[cityIdx]]
		if !ok {
			if city := row[cityIdx]; !seen[city] {
				seen[city] = true
				missing = append(missing, city)
			}

			continue
		}

		lats[i] = match.lat
		lngs[i] = match.lng
	}

	frame.AddColumn(cities.LatColumn, lats)
	frame.AddColumn(cities.LngColumn, lngs)

	if len(missing) > 0 {
		e.log.Warn("⚠️ still missing lat/lng after merge", "cities", missing)
	} else {
		e.log.Info("✅ all cities matched the metro table")
	}

	return applied(), missing
}
