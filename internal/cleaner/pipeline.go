package cleaner

import (
	"fmt"

	"listingprep/internal/dataset"
	"listingprep/internal/logger"
)

// Stats summarizes what one cleaning run did to a frame.
type Stats struct {
	RowsIn            int
	RowsOut           int
	DuplicatesDropped int
	OutliersDropped   int
	UnmatchedCities   []string
	Enrichment        Outcome
	OutlierFilter     Outcome
}

// Cleaner sequences enrichment, duplicate removal and outlier removal over a
// single frame. Normalization happens inside the enrichment step.
type Cleaner struct {
	enricher *Enricher
	log      *logger.Logger
}

// NewCleaner creates a cleaner. A nil metro frame disables coordinate
// enrichment.
func NewCleaner(metros *dataset.Frame, log *logger.Logger) *Cleaner {
	return &Cleaner{
		enricher: NewEnricher(metros, log),
		log:      log,
	}
}

// Clean runs the full transform and returns the cleaned frame with stats.
// The input frame is not modified.
func (c *Cleaner) Clean(frame *dataset.Frame) (*dataset.Frame, Stats) {
	stats := Stats{RowsIn: frame.NumRows()}

	working := frame.Clone()
	stats.Enrichment, stats.UnmatchedCities = c.enricher.Enrich(working)

	working, stats.DuplicatesDropped = DropDuplicates(working)
	c.log.Info(fmt.Sprintf("✅ dropped %d duplicate rows (excluding date/year)", stats.DuplicatesDropped))

	working, stats.OutlierFilter, stats.OutliersDropped = RemoveOutliers(working)
	if stats.OutlierFilter.Applied {
		c.log.Info(fmt.Sprintf("✅ removed %d rows with %s > %d", stats.OutliersDropped, PriceColumn, PriceCeiling))
	}

	stats.RowsOut = working.NumRows()

	return working, stats
}
