package report

import (
	"strings"
	"testing"

	"listingprep/internal/cleaner"
	"listingprep/internal/pipeline"
)

func TestSummary_RendersAlignedTable(t *testing.T) {
	stats := []pipeline.SplitStats{
		{
			Split: "train",
			Stats: cleaner.Stats{
				RowsIn:            1000,
				RowsOut:           950,
				DuplicatesDropped: 40,
				OutliersDropped:   10,
				UnmatchedCities:   []string{"atlantis"},
			},
		},
		{
			Split: "holdout",
			Stats: cleaner.Stats{RowsIn: 100, RowsOut: 100},
		},
	}

	out := Summary(stats)

	if !strings.Contains(out, "| Split") {
		t.Errorf("missing header in:\n%s", out)
	}

	if !strings.Contains(out, "| train") || !strings.Contains(out, "| holdout") {
		t.Errorf("missing split rows in:\n%s", out)
	}

	if !strings.Contains(out, "atlantis") {
		t.Errorf("missing unmatched city in:\n%s", out)
	}

	// All lines share the same display width.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}

	for i, line := range lines[1:] {
		if len(line) != len(lines[0]) {
			t.Errorf("line %d width %d != header width %d:\n%s", i+1, len(line), len(lines[0]), out)
		}
	}
}

func TestSummary_EmptyStats(t *testing.T) {
	out := Summary(nil)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Errorf("got %d lines, want header and separator only:\n%s", len(lines), out)
	}
}
