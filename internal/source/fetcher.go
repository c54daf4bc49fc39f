package source

import (
	"context"

	"Cascade/internal/model"
)

// Fetcher defines the interface for fetching dataset rows.
type Fetcher interface {
	FetchRows(ctx context.Context) ([]model.Record, error)
	Name() string
}

// MockFetcher returns fixed rows for development and testing.
type MockFetcher struct {
	Rows []model.Record
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchRows(_ context.Context) ([]model.Record, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Rows, nil
}
