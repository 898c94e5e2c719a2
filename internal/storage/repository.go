// Package storage implements the SQLite ledger for submitted inventory
// records and their export sync state.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"stockboard/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return NewWithDB(db), nil
}

// NewWithDB wraps an already-open database. Used by tests; migrations are
// the caller's responsibility.
func NewWithDB(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db, queries: NewQueries(db)}
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Insert writes a validated record to the ledger and returns its ID.
func (r *SQLiteRepository) Insert(ctx context.Context, rec core.Record) (int64, error) {
	row, err := r.queries.CreateRecord(ctx, CreateRecordParams{
		Product:   rec.Product,
		Inventory: rec.Inventory,
		UnitsSold: rec.UnitsSold,
		Revenue:   rec.Revenue,
	})
	if err != nil {
		return 0, fmt.Errorf("create record: %w", err)
	}

	slog.InfoContext(ctx, "Record saved to ledger",
		"id", row.ID,
		"product", row.Product,
		"inventory", row.Inventory,
		"units_sold", row.UnitsSold,
		"revenue", row.Revenue)

	return row.ID, nil
}

// Get returns a single ledger row by ID.
func (r *SQLiteRepository) Get(ctx context.Context, id int64) (RecordRow, error) {
	row, err := r.queries.GetRecord(ctx, id)
	if err != nil {
		return RecordRow{}, fmt.Errorf("get record by id: %w", err)
	}
	return row, nil
}

// PendingSync returns up to limit rows still waiting for export.
func (r *SQLiteRepository) PendingSync(ctx context.Context, limit int) ([]RecordRow, error) {
	rows, err := r.queries.GetPendingSyncRecords(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("get pending sync records: %w", err)
	}
	return rows, nil
}

// MarkSynced flags a row as successfully exported.
func (r *SQLiteRepository) MarkSynced(ctx context.Context, id int64) error {
	if err := r.queries.MarkRecordSynced(ctx, id); err != nil {
		return fmt.Errorf("mark record synced: %w", err)
	}
	slog.InfoContext(ctx, "Record marked as synced", "id", id)
	return nil
}

// MarkSyncError flags a row whose export failed.
func (r *SQLiteRepository) MarkSyncError(ctx context.Context, id int64) error {
	if err := r.queries.MarkRecordSyncError(ctx, id); err != nil {
		return fmt.Errorf("mark record sync error: %w", err)
	}
	slog.WarnContext(ctx, "Record marked with sync error", "id", id)
	return nil
}

// Count returns the total number of ledger rows.
func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.queries.CountRecords(ctx)
	if err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// AsRecord converts a ledger row back to the core type.
func (row RecordRow) AsRecord() core.Record {
	return core.Record{
		Product:   row.Product,
		Inventory: row.Inventory,
		UnitsSold: row.UnitsSold,
		Revenue:   row.Revenue,
	}
}
