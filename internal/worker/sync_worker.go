// Package worker moves pending ledger records into the export target.
package worker

import (
	"context"
	"fmt"

	"stockboard/internal/amqp"
	"stockboard/internal/core"
	applog "stockboard/internal/log"
	"stockboard/internal/metrics"
	"stockboard/internal/storage"
)

// Ledger is the slice of the repository the worker needs.
type Ledger interface {
	Get(ctx context.Context, id int64) (storage.RecordRow, error)
	PendingSync(ctx context.Context, limit int) ([]storage.RecordRow, error)
	MarkSynced(ctx context.Context, id int64) error
	MarkSyncError(ctx context.Context, id int64) error
}

// Exporter appends one record to the external sheet.
type Exporter interface {
	Append(ctx context.Context, r core.Record) (string, error)
}

// SyncWorker exports pending records, either on demand from a sync
// message or batch-wise from a periodic scan.
type SyncWorker struct {
	ledger    Ledger
	exporter  Exporter
	metrics   *metrics.Metrics
	logger    *applog.Logger
	batchSize int
}

func NewSyncWorker(ledger Ledger, exporter Exporter, m *metrics.Metrics, logger *applog.Logger, batchSize int) *SyncWorker {
	if batchSize <= 0 {
		batchSize = 10
	}
	return &SyncWorker{
		ledger:    ledger,
		exporter:  exporter,
		metrics:   m,
		logger:    logger.WithComponent(applog.ComponentWorker),
		batchSize: batchSize,
	}
}

// HandleSyncMessage exports the single record named by the message.
// Returning an error requeues the message.
func (w *SyncWorker) HandleSyncMessage(ctx context.Context, msg *amqp.RecordSyncMessage) error {
	row, err := w.ledger.Get(ctx, msg.ID)
	if err != nil {
		return fmt.Errorf("load record %d: %w", msg.ID, err)
	}
	if row.SyncStatus == storage.SyncDone {
		w.logger.DebugContext(ctx, "Record already synced, skipping",
			applog.FieldRecordID, row.ID)
		return nil
	}
	return w.exportRow(ctx, row)
}

// ProcessPending exports one batch of pending rows. Individual export
// failures are marked on the row and do not stop the batch.
func (w *SyncWorker) ProcessPending(ctx context.Context) (int, error) {
	rows, err := w.ledger.PendingSync(ctx, w.batchSize)
	if err != nil {
		return 0, fmt.Errorf("load pending records: %w", err)
	}

	exported := 0
	for _, row := range rows {
		if err := w.exportRow(ctx, row); err != nil {
			w.logger.WarnContext(ctx, "Export failed, continuing with batch",
				applog.FieldRecordID, row.ID,
				applog.FieldError, err)
			continue
		}
		exported++
	}
	return exported, nil
}

// StartupCheck logs how much backlog the worker wakes up to.
func (w *SyncWorker) StartupCheck(ctx context.Context) error {
	rows, err := w.ledger.PendingSync(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("startup backlog check: %w", err)
	}
	w.logger.InfoContext(ctx, "Sync worker started",
		applog.FieldOperation, applog.OpStartup,
		"pending_records", len(rows))
	return nil
}

func (w *SyncWorker) exportRow(ctx context.Context, row storage.RecordRow) error {
	ref, err := w.exporter.Append(ctx, row.AsRecord())
	if err != nil {
		if markErr := w.ledger.MarkSyncError(ctx, row.ID); markErr != nil {
			w.logger.ErrorContext(ctx, "Failed to mark sync error",
				applog.FieldRecordID, row.ID,
				applog.FieldError, markErr)
		}
		if w.metrics != nil {
			w.metrics.SyncTotal.WithLabelValues("error").Inc()
		}
		return fmt.Errorf("export record %d: %w", row.ID, err)
	}

	if err := w.ledger.MarkSynced(ctx, row.ID); err != nil {
		return fmt.Errorf("mark record %d synced: %w", row.ID, err)
	}
	if w.metrics != nil {
		w.metrics.SyncTotal.WithLabelValues("success").Inc()
	}

	w.logger.InfoContext(ctx, "Record exported",
		applog.FieldRecordID, row.ID,
		applog.FieldSheetsRef, ref)
	return nil
}
