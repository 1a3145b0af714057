// Package cleaner implements the listing-cleaning transforms: city
// normalization with coordinate enrichment, duplicate removal and price
// outlier removal.
package cleaner

// SkipReason identifies why a precondition-guarded step left the frame
// untouched.
type SkipReason string

// Skip reasons reported by the enrichment and outlier steps.
const (
	SkipNoCityColumn      SkipReason = "no city_full column present"
	SkipCoordsPresent     SkipReason = "lat/lng already present"
	SkipNoMetroTable      SkipReason = "no metro table supplied"
	SkipMetroTableColumns SkipReason = "metro table missing required columns"
	SkipNoPriceColumn     SkipReason = "no median_list_price column present"
)

// Outcome is the tagged result of a precondition-guarded step: the step was
// either applied, or skipped for a stated reason.
type Outcome struct {
	Applied bool
	Reason  SkipReason
}

// Skipped reports whether the step was skipped.
func (o Outcome) Skipped() bool {
	return !o.Applied
}

func applied() Outcome {
	return Outcome{Applied: true}
}

func skipped(reason SkipReason) Outcome {
	return Outcome{Reason: reason}
}
