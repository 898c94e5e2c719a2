package storage

import (
	"context"
	"database/sql"
	"time"
)

// Sync states of a ledger row.
const (
	SyncPending = "pending"
	SyncDone    = "synced"
	SyncError   = "error"
)

// DBTX is the subset of database/sql both *sql.DB and *sql.Tx satisfy.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Queries wraps the hand-written SQL for the records ledger.
type Queries struct {
	db DBTX
}

func NewQueries(db DBTX) *Queries {
	return &Queries{db: db}
}

// RecordRow is one ledger row as stored.
type RecordRow struct {
	ID         int64
	Product    string
	Inventory  int64
	UnitsSold  int64
	Revenue    int64
	SyncStatus string
	Version    int64
	CreatedAt  time.Time
	SyncedAt   sql.NullTime
}

type CreateRecordParams struct {
	Product   string
	Inventory int64
	UnitsSold int64
	Revenue   int64
}

const createRecord = `
INSERT INTO records (product, inventory, units_sold, revenue)
VALUES (?, ?, ?, ?)
RETURNING id, product, inventory, units_sold, revenue, sync_status, version, created_at, synced_at
`

func (q *Queries) CreateRecord(ctx context.Context, arg CreateRecordParams) (RecordRow, error) {
	row := q.db.QueryRowContext(ctx, createRecord, arg.Product, arg.Inventory, arg.UnitsSold, arg.Revenue)
	return scanRecord(row)
}

const getRecord = `
SELECT id, product, inventory, units_sold, revenue, sync_status, version, created_at, synced_at
FROM records
WHERE id = ?
`

func (q *Queries) GetRecord(ctx context.Context, id int64) (RecordRow, error) {
	return scanRecord(q.db.QueryRowContext(ctx, getRecord, id))
}

const getPendingSyncRecords = `
SELECT id, product, inventory, units_sold, revenue, sync_status, version, created_at, synced_at
FROM records
WHERE sync_status = 'pending'
ORDER BY id
LIMIT ?
`

func (q *Queries) GetPendingSyncRecords(ctx context.Context, limit int64) ([]RecordRow, error) {
	rows, err := q.db.QueryContext(ctx, getPendingSyncRecords, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecordRow
	for rows.Next() {
		var r RecordRow
		if err := rows.Scan(&r.ID, &r.Product, &r.Inventory, &r.UnitsSold, &r.Revenue,
			&r.SyncStatus, &r.Version, &r.CreatedAt, &r.SyncedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

const markRecordSynced = `
UPDATE records
SET sync_status = 'synced', synced_at = CURRENT_TIMESTAMP
WHERE id = ?
`

func (q *Queries) MarkRecordSynced(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, markRecordSynced, id)
	return err
}

const markRecordSyncError = `
UPDATE records
SET sync_status = 'error'
WHERE id = ?
`

func (q *Queries) MarkRecordSyncError(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, markRecordSyncError, id)
	return err
}

const countRecords = `SELECT COUNT(*) FROM records`

func (q *Queries) CountRecords(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countRecords).Scan(&n)
	return n, err
}

func scanRecord(row *sql.Row) (RecordRow, error) {
	var r RecordRow
	err := row.Scan(&r.ID, &r.Product, &r.Inventory, &r.UnitsSold, &r.Revenue,
		&r.SyncStatus, &r.Version, &r.CreatedAt, &r.SyncedAt)
	return r, err
}
