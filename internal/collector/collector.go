package collector

import (
	"context"
	"fmt"
	"log"
	"time"

	"Cascade/internal/chart"
	"Cascade/internal/model"
	"Cascade/internal/report"
	"Cascade/internal/source"

	"golang.org/x/sync/errgroup"
)

// Dataset binds a fetcher to the field names its accessors read.
type Dataset struct {
	Name    string
	Fetcher source.Fetcher
	XField  string
	YField  string
}

// Collector orchestrates row fetching and chart computation.
type Collector struct {
	Datasets []Dataset
}

// NewCollector creates a Collector over the given datasets.
func NewCollector(datasets []Dataset) *Collector {
	return &Collector{Datasets: datasets}
}

// Collect fetches one dataset's rows and computes its waterfall entries.
func (c *Collector) Collect(ctx context.Context, ds Dataset) (*model.Dataset, error) {
	rows, err := ds.Fetcher.FetchRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch rows for %s: %w", ds.Name, err)
	}

	acc := chart.Accessors[model.Record]{
		X: func(r model.Record) string { return r.String(ds.XField) },
		Y: func(r model.Record) float64 { return r.Float(ds.YField) },
	}
	entries := chart.WaterfallEntries(rows, acc)

	return &model.Dataset{
		Name:       ds.Name,
		Source:     ds.Fetcher.Name(),
		Entries:    entries,
		Summary:    report.Summarize(entries),
		ComputedAt: time.Now(),
	}, nil
}

// CollectAll refreshes every dataset concurrently. The first failure cancels
// the remaining fetches and is returned.
func (c *Collector) CollectAll(ctx context.Context) ([]*model.Dataset, error) {
	results := make([]*model.Dataset, len(c.Datasets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, ds := range c.Datasets {
		g.Go(func() error {
			d, err := c.Collect(gctx, ds)
			if err != nil {
				return err
			}
			log.Printf("[INFO] collected %s: %d entries, net %+.2f", ds.Name, len(d.Entries), d.Summary.NetTotal)
			results[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
