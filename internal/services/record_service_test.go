package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"stockboard/internal/core"
	applog "stockboard/internal/log"
)

type fakeStore struct {
	inserted []core.Record
	nextID   int64
	err      error
	closed   bool
}

func (f *fakeStore) Insert(_ context.Context, r core.Record) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.inserted = append(f.inserted, r)
	f.nextID++
	return f.nextID, nil
}

func (f *fakeStore) Close() error {
	f.closed = true
	return nil
}

type fakePublisher struct {
	published []int64
	err       error
}

func (f *fakePublisher) PublishRecordSync(_ context.Context, recordID, _ int64) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, recordID)
	return nil
}

func quietLogger() *applog.Logger {
	return applog.New(applog.Config{
		Handler:   slog.NewTextHandler(io.Discard, nil),
		Component: applog.ComponentApp,
	})
}

func validRecord() core.Record {
	return core.Record{Product: "PVC Pipes", Inventory: 300, UnitsSold: 110, Revenue: 42000}
}

func TestRecordServiceCreate(t *testing.T) {
	store := &fakeStore{}
	pub := &fakePublisher{}
	svc := NewRecordService(store, pub, quietLogger())

	id, err := svc.Create(context.Background(), validRecord())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id != 1 {
		t.Errorf("Create() id = %d, want 1", id)
	}
	if len(store.inserted) != 1 {
		t.Fatalf("inserted %d records, want 1", len(store.inserted))
	}
	if len(pub.published) != 1 || pub.published[0] != 1 {
		t.Errorf("published = %v, want [1]", pub.published)
	}
}

func TestRecordServiceCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		record  core.Record
		wantErr error
	}{
		{"empty product", core.Record{Product: "", Inventory: 10}, core.ErrEmptyProduct},
		{"negative inventory", core.Record{Product: "Bricks", Inventory: -1}, core.ErrNegativeInventory},
		{"negative revenue", core.Record{Product: "Bricks", Revenue: -5}, core.ErrNegativeRevenue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			svc := NewRecordService(store, nil, quietLogger())

			_, err := svc.Create(context.Background(), tt.record)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
			if len(store.inserted) != 0 {
				t.Errorf("invalid record reached the store")
			}
		})
	}
}

func TestRecordServiceCreateStoreError(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	svc := NewRecordService(store, &fakePublisher{}, quietLogger())

	if _, err := svc.Create(context.Background(), validRecord()); err == nil {
		t.Fatal("Create() expected error, got nil")
	}
}

func TestRecordServiceCreatePublishFailureIsNotFatal(t *testing.T) {
	store := &fakeStore{}
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := NewRecordService(store, pub, quietLogger())

	id, err := svc.Create(context.Background(), validRecord())
	if err != nil {
		t.Fatalf("Create() error = %v, want nil despite publish failure", err)
	}
	if id != 1 {
		t.Errorf("Create() id = %d, want 1", id)
	}
}

func TestRecordServiceCreateWithoutPublisher(t *testing.T) {
	store := &fakeStore{}
	svc := NewRecordService(store, nil, quietLogger())

	if _, err := svc.Create(context.Background(), validRecord()); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
}

func TestRecordServiceClose(t *testing.T) {
	store := &fakeStore{}
	svc := NewRecordService(store, nil, quietLogger())
	if err := svc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !store.closed {
		t.Error("Close() did not close the store")
	}
}
