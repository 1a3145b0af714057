// Package main provides the preprocess command that cleans raw listing
// splits into processed CSVs.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"listingprep/internal/cities"
	"listingprep/internal/config"
	"listingprep/internal/dataset"
	"listingprep/internal/logger"
	"listingprep/internal/pipeline"
	"listingprep/internal/report"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	rawDir := flag.String("raw-dir", "", "Directory containing raw <split>.csv files")
	outDir := flag.String("out-dir", "", "Directory for cleaned clean_<split>.csv files")
	splitsFlag := flag.String("splits", "", "Comma-separated split names (default: train,eval,holdout)")
	noMetros := flag.Bool("no-metros", false, "Disable lat/lng enrichment")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flag.Parse()

	cfg := config.Default()

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	// Flags override the config file.
	if *rawDir != "" {
		cfg.Pipeline.RawDir = *rawDir
	}

	if *outDir != "" {
		cfg.Pipeline.ProcessedDir = *outDir
	}

	if *splitsFlag != "" {
		var splits []string
		for _, split := range strings.Split(*splitsFlag, ",") {
			if split = strings.TrimSpace(split); split != "" {
				splits = append(splits, split)
			}
		}

		cfg.Pipeline.Splits = splits
	}

	if *noMetros {
		cfg.Pipeline.DisableMetros = true
	}

	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	log := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format)

	log.Info("🚀 Starting listing preprocessing")
	log.Info(fmt.Sprintf("📍 Raw: %s", cfg.Pipeline.RawDir))
	log.Info(fmt.Sprintf("🎯 Processed: %s", cfg.Pipeline.ProcessedDir))

	var metros *dataset.Frame
	if cfg.Pipeline.DisableMetros {
		log.Warn("⚠️ metro enrichment disabled")
	} else {
		metros = cities.MetroFrame()
	}

	start := time.Now()

	runner := pipeline.NewRunner(cfg.Pipeline.RawDir, cfg.Pipeline.ProcessedDir, metros, log)

	stats, err := runner.Run(cfg.Pipeline.Splits)

	if len(stats) > 0 {
		fmt.Print(report.Summary(stats))
	}

	if err != nil {
		log.Error(fmt.Sprintf("❌ preprocessing finished with failures: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ preprocessed %d splits in %v", len(stats), time.Since(start)))
}
