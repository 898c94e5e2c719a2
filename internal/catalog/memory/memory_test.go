package memory

import (
	"context"
	"testing"
)

func TestNewDefaultDataset(t *testing.T) {
	store := NewDefault()

	records, err := store.Records(context.Background())
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	if records[0].Product != "Cement (UltraTech)" || records[0].Inventory != 320 {
		t.Errorf("first record = %+v", records[0])
	}
	for _, r := range records {
		if err := r.Validate(); err != nil {
			t.Errorf("seed record %q invalid: %v", r.Product, err)
		}
	}
}

func TestNewDefaultSummaryIsIndependent(t *testing.T) {
	store := NewDefault()

	summary, err := store.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.TotalRevenue != 480000 || summary.TotalProducts != 18 {
		t.Errorf("summary = %+v", summary)
	}
	if summary.StockAvailable != 1240 || summary.MonthlyGrowthPercent != 12.4 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestRecordsReturnsCopy(t *testing.T) {
	store := NewDefault()
	ctx := context.Background()

	first, _ := store.Records(ctx)
	first[0].Product = "mutated"

	second, _ := store.Records(ctx)
	if second[0].Product != "Cement (UltraTech)" {
		t.Errorf("store mutated through returned slice: %q", second[0].Product)
	}
}
