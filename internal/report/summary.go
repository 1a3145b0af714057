// Package report renders a fixed-width summary table of per-split cleaning
// runs.
package report

import (
	"strconv"
	"strings"

	"listingprep/internal/pipeline"

	"github.com/mattn/go-runewidth"
)

var header = []string{"Split", "Rows In", "Rows Out", "Duplicates", "Outliers", "Unmatched Cities"}

// Summary renders the per-split stats as an aligned markdown-style table.
func Summary(stats []pipeline.SplitStats) string {
	table := [][]string{header}

	for _, s := range stats {
		table = append(table, []string{
			s.Split,
			strconv.Itoa(s.RowsIn),
			strconv.Itoa(s.RowsOut),
			strconv.Itoa(s.DuplicatesDropped),
			strconv.Itoa(s.OutliersDropped),
			strings.Join(s.UnmatchedCities, ", "),
		})
	}

	// Column widths are display widths, not byte lengths, so wide runes in
	// city names keep the pipes aligned.
	widths := make([]int, len(header))

	for _, row := range table {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder

	writeRow := func(row []string) {
		sb.WriteString("|")

		for i, cell := range row {
			sb.WriteString(" ")
			sb.WriteString(cell)
			sb.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)))
			sb.WriteString(" |")
		}

		sb.WriteString("\n")
	}

	writeRow(table[0])

	sb.WriteString("|")

	for _, w := range widths {
		sb.WriteString(strings.Repeat("-", w+2))
		sb.WriteString("|")
	}

	sb.WriteString("\n")

	for _, row := range table[1:] {
		writeRow(row)
	}

	return sb.String()
}
