// Package memory holds the fixed in-process catalog used by the dashboard.
package memory

import (
	"context"
	"sync"

	"stockboard/internal/core"
)

// Store serves an immutable record set and summary. Readers always get
// copies; nothing here mutates after construction.
type Store struct {
	mu      sync.Mutex
	records []core.Record
	summary core.Summary
}

func New(records []core.Record, summary core.Summary) *Store {
	return &Store{
		records: append([]core.Record(nil), records...),
		summary: summary,
	}
}

// NewDefault seeds the sample catalog the dashboard ships with. The
// summary figures are deliberately independent of the record set.
func NewDefault() *Store {
	return New(
		[]core.Record{
			{Product: "Cement (UltraTech)", Inventory: 320, UnitsSold: 180, Revenue: 90000},
			{Product: "TMT Steel", Inventory: 210, UnitsSold: 140, Revenue: 140000},
			{Product: "River Sand", Inventory: 710, UnitsSold: 460, Revenue: 250000},
		},
		core.Summary{
			TotalRevenue:         480000,
			TotalProducts:        18,
			StockAvailable:       1240,
			MonthlyGrowthPercent: 12.4,
		},
	)
}

// Records returns a copy of the dataset in original order.
func (s *Store) Records(_ context.Context) ([]core.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Record(nil), s.records...), nil
}

// Summary returns the tile figures.
func (s *Store) Summary(_ context.Context) (core.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary, nil
}
