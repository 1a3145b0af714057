package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// CSV ingestion errors.
var (
	// ErrEmptyFile is returned when a CSV file has no header row.
	ErrEmptyFile = errors.New("csv file has no header row")
)

// ReadFile loads a CSV file into a frame. The first record is the header.
func ReadFile(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv file %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	frame := NewFrame(records[0])
	frame.Rows = records[1:]

	return frame, nil
}

// WriteFile saves a frame as CSV, creating parent directories as needed.
func WriteFile(path string, frame *Frame) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(frame.Columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range frame.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv file: %w", err)
	}

	return nil
}
