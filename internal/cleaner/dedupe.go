package cleaner

import (
	"strings"

	"listingprep/internal/dataset"
)

// temporalColumns are excluded from the duplicate comparison key so that the
// same listing observed in different periods survives.
var temporalColumns = map[string]bool{
	"date": true,
	"year": true,
}

// DropDuplicates removes every member of any group of rows that compare
// equal outside the temporal columns. This is a keep-none policy: duplicate
// records are treated as wholly untrustworthy, so the first copy is dropped
// along with the rest. Flagged for product confirmation; preserved as
// observable behavior.
func DropDuplicates(frame *dataset.Frame) (*dataset.Frame, int) {
	keyIdx := make([]int, 0, len(frame.Columns))

	for i, col := range frame.Columns {
		if !temporalColumns[col] {
			keyIdx = append(keyIdx, i)
		}
	}

	counts := make(map[string]int, frame.NumRows())
	keys := make([]string, frame.NumRows())

	for i, row := range frame.Rows {
		keys[i] = rowKey(row, keyIdx)
		counts[keys[i]]++
	}

	out := dataset.NewFrame(frame.Columns)

	for i, row := range frame.Rows {
		if counts[keys[i]] == 1 {
			out.AppendRow(row)
		}
	}

	return out, frame.NumRows() - out.NumRows()
}

// rowKey joins the key cells with a unit separator, which cannot appear in
// the listing data.
func rowKey(row []string, keyIdx []int) string {
	cells := make([]string, 0, len(keyIdx))

	for _, idx := range keyIdx {
		if idx < len(row) {
			cells = append(cells, row[idx])
		}
	}

	return strings.Join(cells, "\x1f")
}
