// Package pipeline sequences the preprocessing steps for each dataset split.
package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"

	"listingprep/internal/cleaner"
	"listingprep/internal/dataset"
	"listingprep/internal/logger"
)

// DefaultSplits are the dataset partitions processed when none are named.
var DefaultSplits = []string{"train", "eval", "holdout"}

// SplitStats pairs a split name with what cleaning did to it.
type SplitStats struct {
	Split string
	cleaner.Stats
}

// Runner loads, cleans and writes one split at a time. Splits share nothing
// but the read-only lookup tables.
type Runner struct {
	rawDir       string
	processedDir string
	cleaner      *cleaner.Cleaner
	log          *logger.Logger
}

// NewRunner creates a runner reading raw splits from rawDir and writing
// cleaned splits to processedDir. A nil metro frame disables coordinate
// enrichment.
func NewRunner(rawDir, processedDir string, metros *dataset.Frame, log *logger.Logger) *Runner {
	return &Runner{
		rawDir:       rawDir,
		processedDir: processedDir,
		cleaner:      cleaner.NewCleaner(metros, log),
		log:          log,
	}
}

// RawPath returns the input file for a split.
func (r *Runner) RawPath(split string) string {
	return filepath.Join(r.rawDir, split+".csv")
}

// OutputPath returns the cleaned output file for a split.
func (r *Runner) OutputPath(split string) string {
	return filepath.Join(r.processedDir, "clean_"+split+".csv")
}

// PreprocessSplit cleans a single split and writes the result. An unreadable
// input file is fatal for the split. The output file is written only after
// every in-memory transform has succeeded.
func (r *Runner) PreprocessSplit(split string) (cleaner.Stats, error) {
	frame, err := dataset.ReadFile(r.RawPath(split))
	if err != nil {
		return cleaner.Stats{}, fmt.Errorf("split %s: %w", split, err)
	}

	cleaned, stats := r.cleaner.Clean(frame)

	outPath := r.OutputPath(split)
	if err := dataset.WriteFile(outPath, cleaned); err != nil {
		return stats, fmt.Errorf("split %s: %w", split, err)
	}

	r.log.Info(fmt.Sprintf("✅ preprocessed %s saved to %s (%d rows, %d columns)",
		split, outPath, cleaned.NumRows(), len(cleaned.Columns)))

	return stats, nil
}

// Run processes the named splits sequentially and independently: a failed
// split is logged and skipped, the rest still run. Returns stats for the
// splits that succeeded and the joined errors of those that did not.
func (r *Runner) Run(splits []string) ([]SplitStats, error) {
	if len(splits) == 0 {
		splits = DefaultSplits
	}

	var all []SplitStats

	var errs []error

	for _, split := range splits {
		stats, err := r.PreprocessSplit(split)
		if err != nil {
			r.log.Error(fmt.Sprintf("❌ split %s failed: %v", split, err))
			errs = append(errs, err)

			continue
		}

		all = append(all, SplitStats{Split: split, Stats: stats})
	}

	return all, errors.Join(errs...)
}
