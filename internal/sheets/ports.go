// Package sheets defines the port for the record export target.
package sheets

import (
	"context"

	"stockboard/internal/core"
)

// RecordExporter appends one record to the external export target and
// returns an opaque reference for the written row.
type RecordExporter interface {
	Append(ctx context.Context, r core.Record) (rowRef string, err error)
}
