// Package catalog defines the ports for the dashboard's data sources.
package catalog

import (
	"context"

	"stockboard/internal/core"
)

type (
	// RecordSource provides the dataset rendered by the table view.
	RecordSource interface {
		Records(ctx context.Context) ([]core.Record, error)
	}

	// SummarySource provides the tile figures. These are maintained
	// separately from the record set and may disagree with it.
	SummarySource interface {
		Summary(ctx context.Context) (core.Summary, error)
	}
)
