package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"Cascade/internal/model"
)

// CSVFetcher reads rows from a local CSV file. The header row names the
// fields; every cell stays a string until an accessor asks for a number.
type CSVFetcher struct {
	Path string
}

// NewCSVFetcher creates a fetcher for the given file path.
func NewCSVFetcher(path string) *CSVFetcher {
	return &CSVFetcher{Path: path}
}

func (f *CSVFetcher) Name() string { return "csv" }

func (f *CSVFetcher) FetchRows(_ context.Context) ([]model.Record, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv %s: missing header row", f.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var records []model.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		fields := make(map[string]any, len(header))
		for i, name := range header {
			if i < len(row) {
				fields[name] = row[i]
			}
		}
		records = append(records, model.Record{Fields: fields})
	}
	return records, nil
}
