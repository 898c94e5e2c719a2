// Package services holds the application services sitting between HTTP
// handlers and the adapters.
package services

import (
	"context"
	"fmt"

	"stockboard/internal/core"
	applog "stockboard/internal/log"
)

// RecordStore persists submitted records.
type RecordStore interface {
	Insert(ctx context.Context, r core.Record) (int64, error)
	Close() error
}

// SyncPublisher announces freshly persisted records to the export worker.
type SyncPublisher interface {
	PublishRecordSync(ctx context.Context, recordID, version int64) error
}

// RecordService handles record submission. The publisher is optional;
// without it records stay pending until the worker's periodic scan
// picks them up.
type RecordService struct {
	store     RecordStore
	publisher SyncPublisher
	logger    *applog.Logger
}

func NewRecordService(store RecordStore, publisher SyncPublisher, logger *applog.Logger) *RecordService {
	return &RecordService{
		store:     store,
		publisher: publisher,
		logger:    logger.WithComponent(applog.ComponentRecords),
	}
}

// Create validates and persists a record, then notifies the worker.
// A publish failure does not fail the submission: the periodic scan
// is the fallback path.
func (s *RecordService) Create(ctx context.Context, r core.Record) (int64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}

	id, err := s.store.Insert(ctx, r)
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishRecordSync(ctx, id, 1); err != nil {
			s.logger.WarnContext(ctx, "Failed to publish sync message, record stays pending",
				applog.FieldRecordID, id,
				applog.FieldError, err)
		}
	}

	s.logger.InfoContext(ctx, "Record created",
		applog.FieldRecordID, id,
		applog.FieldProduct, r.Product)
	return id, nil
}

func (s *RecordService) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}
