package cleaner

import (
	"listingprep/internal/dataset"

	"github.com/spf13/cast"
)

// PriceColumn is the listing column checked for extreme outliers.
const PriceColumn = "median_list_price"

// PriceCeiling is the hard outlier threshold: rows priced above it are
// removed. Not configurable.
const PriceCeiling = 19_000_000

// RemoveOutliers drops rows whose price exceeds PriceCeiling. Rows whose
// price cell is empty or not numeric are dropped as well, matching the
// upstream dataset convention that an unpriceable listing is unusable. If
// the price column is absent the step is skipped.
func RemoveOutliers(frame *dataset.Frame) (*dataset.Frame, Outcome, int) {
	priceIdx := frame.ColumnIndex(PriceColumn)
	if priceIdx < 0 {
		return frame, skipped(SkipNoPriceColumn), 0
	}

	out := dataset.NewFrame(frame.Columns)

	for _, row := range frame.Rows {
		price, err := cast.ToFloat64E(row[priceIdx])
		if err != nil || price > PriceCeiling {
			continue
		}

		out.AppendRow(row)
	}

	return out, applied(), frame.NumRows() - out.NumRows()
}
