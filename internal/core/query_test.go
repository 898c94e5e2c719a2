package core

import (
	"errors"
	"testing"
)

func sampleDataset() []Record {
	return []Record{
		{Product: "Cement (UltraTech)", Inventory: 320, UnitsSold: 180, Revenue: 90000},
		{Product: "TMT Steel", Inventory: 210, UnitsSold: 140, Revenue: 140000},
		{Product: "River Sand", Inventory: 710, UnitsSold: 460, Revenue: 250000},
	}
}

func TestComputeViewZeroQueryKeepsOriginalOrder(t *testing.T) {
	dataset := sampleDataset()
	view := ComputeView(dataset, Query{})

	if len(view.Rows) != len(dataset) {
		t.Fatalf("rows = %d, want %d", len(view.Rows), len(dataset))
	}
	for i, row := range view.Rows {
		if row.Product != dataset[i].Product {
			t.Errorf("row %d = %q, want %q", i, row.Product, dataset[i].Product)
		}
	}
}

func TestComputeViewDoesNotMutateDataset(t *testing.T) {
	dataset := sampleDataset()
	ComputeView(dataset, Query{SortBy: SortRevenue})

	if dataset[0].Product != "Cement (UltraTech)" || dataset[2].Product != "River Sand" {
		t.Errorf("dataset order changed: %+v", dataset)
	}
}

func TestComputeViewMinInventoryScenario(t *testing.T) {
	view := ComputeView(sampleDataset(), Query{MinInventory: Number(250)})

	if len(view.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(view.Rows))
	}
	if view.Rows[0].Product != "Cement (UltraTech)" || view.Rows[1].Product != "River Sand" {
		t.Errorf("unexpected rows: %q, %q", view.Rows[0].Product, view.Rows[1].Product)
	}
	if view.Totals.Revenue != 340000 {
		t.Errorf("revenue total = %d, want 340000", view.Totals.Revenue)
	}
	if view.Totals.UnitsSold != 640 {
		t.Errorf("units total = %d, want 640", view.Totals.UnitsSold)
	}
	if view.Totals.Inventory != 1030 {
		t.Errorf("inventory total = %d, want 1030", view.Totals.Inventory)
	}
	if view.Totals.Count != 2 {
		t.Errorf("count = %d, want 2", view.Totals.Count)
	}
}

func TestComputeViewTextQueryCaseFolded(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"lowercase substring", "sand", []string{"River Sand"}},
		{"uppercase substring", "STEEL", []string{"TMT Steel"}},
		{"surrounding whitespace trimmed", "  cement  ", []string{"Cement (UltraTech)"}},
		{"no match", "granite", nil},
		{"blank keeps all", "   ", []string{"Cement (UltraTech)", "TMT Steel", "River Sand"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := ComputeView(sampleDataset(), Query{Text: tt.text})
			if len(view.Rows) != len(tt.want) {
				t.Fatalf("rows = %d, want %d", len(view.Rows), len(tt.want))
			}
			for i, name := range tt.want {
				if view.Rows[i].Product != name {
					t.Errorf("row %d = %q, want %q", i, view.Rows[i].Product, name)
				}
			}
		})
	}
}

func TestComputeViewSortDirectionsAreReversals(t *testing.T) {
	asc := ComputeView(sampleDataset(), Query{SortBy: SortRevenue, Ascending: true})
	desc := ComputeView(sampleDataset(), Query{SortBy: SortRevenue})

	if len(asc.Rows) != len(desc.Rows) {
		t.Fatalf("row counts differ: %d vs %d", len(asc.Rows), len(desc.Rows))
	}
	n := len(asc.Rows)
	for i := range asc.Rows {
		if asc.Rows[i].Product != desc.Rows[n-1-i].Product {
			t.Errorf("asc[%d] = %q, want %q", i, asc.Rows[i].Product, desc.Rows[n-1-i].Product)
		}
	}
	if asc.Rows[0].Revenue != 90000 || desc.Rows[0].Revenue != 250000 {
		t.Errorf("asc first = %d, desc first = %d", asc.Rows[0].Revenue, desc.Rows[0].Revenue)
	}
}

func TestComputeViewSortByProductIsCaseFolded(t *testing.T) {
	dataset := []Record{
		{Product: "steel", Inventory: 1, Revenue: 1},
		{Product: "Cement", Inventory: 1, Revenue: 1},
		{Product: "river sand", Inventory: 1, Revenue: 1},
	}
	view := ComputeView(dataset, Query{SortBy: SortProduct, Ascending: true})

	want := []string{"Cement", "river sand", "steel"}
	for i, name := range want {
		if view.Rows[i].Product != name {
			t.Errorf("row %d = %q, want %q", i, view.Rows[i].Product, name)
		}
	}
}

func TestComputeViewStableSortPreservesTies(t *testing.T) {
	dataset := []Record{
		{Product: "A", Inventory: 100, Revenue: 500},
		{Product: "B", Inventory: 100, Revenue: 500},
		{Product: "C", Inventory: 100, Revenue: 500},
	}
	view := ComputeView(dataset, Query{SortBy: SortRevenue})

	for i, name := range []string{"A", "B", "C"} {
		if view.Rows[i].Product != name {
			t.Errorf("row %d = %q, want %q", i, view.Rows[i].Product, name)
		}
	}
}

func TestComputeViewBoundsAndLimit(t *testing.T) {
	tests := []struct {
		name string
		q    Query
		want []string
	}{
		{
			name: "max revenue excludes the top seller",
			q:    Query{MaxRevenue: Number(200000)},
			want: []string{"Cement (UltraTech)", "TMT Steel"},
		},
		{
			name: "units sold window",
			q:    Query{MinUnitsSold: Number(150), MaxUnitsSold: Number(200)},
			want: []string{"Cement (UltraTech)"},
		},
		{
			name: "bounds are inclusive",
			q:    Query{MinInventory: Number(210), MaxInventory: Number(320)},
			want: []string{"Cement (UltraTech)", "TMT Steel"},
		},
		{
			name: "limit caps sorted output",
			q:    Query{SortBy: SortRevenue, Limit: Number(1)},
			want: []string{"River Sand"},
		},
		{
			name: "zero limit yields empty view",
			q:    Query{Limit: Number(0)},
			want: nil,
		},
		{
			name: "negative limit bypassing Validate yields empty view",
			q:    Query{Limit: Number(-2)},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := ComputeView(sampleDataset(), tt.q)
			if len(view.Rows) != len(tt.want) {
				t.Fatalf("rows = %d, want %d", len(view.Rows), len(tt.want))
			}
			for i, name := range tt.want {
				if view.Rows[i].Product != name {
					t.Errorf("row %d = %q, want %q", i, view.Rows[i].Product, name)
				}
			}
		})
	}
}

func TestComputeViewTotalsMatchRenderedRows(t *testing.T) {
	queries := []Query{
		{},
		{Text: "a"},
		{MinRevenue: Number(100000)},
		{MinInventory: Number(250), SortBy: SortUnitsSold},
		{MaxUnitsSold: Number(200), SortBy: SortProduct, Ascending: true},
		{SortBy: SortRevenue, Limit: Number(2)},
	}

	for _, q := range queries {
		view := ComputeView(sampleDataset(), q)

		var revenue, units, inventory int64
		for _, row := range view.Rows {
			revenue += row.Revenue
			units += row.UnitsSold
			inventory += row.Inventory
		}
		if view.Totals.Revenue != revenue || view.Totals.UnitsSold != units || view.Totals.Inventory != inventory {
			t.Errorf("totals %+v do not match rows (revenue=%d units=%d inventory=%d)", view.Totals, revenue, units, inventory)
		}
		if view.Totals.Count != len(view.Rows) {
			t.Errorf("count = %d, want %d", view.Totals.Count, len(view.Rows))
		}
	}
}

func TestBadgeForBands(t *testing.T) {
	tests := []struct {
		inventory int64
		want      Badge
	}{
		{500, BadgeHealthy},
		{499, BadgeWatch},
		{250, BadgeWatch},
		{249, BadgeLow},
		{0, BadgeLow},
		{710, BadgeHealthy},
	}

	for _, tt := range tests {
		if got := BadgeFor(tt.inventory); got != tt.want {
			t.Errorf("BadgeFor(%d) = %q, want %q", tt.inventory, got, tt.want)
		}
	}
}

func TestTopByRevenue(t *testing.T) {
	t.Run("first maximum wins ties", func(t *testing.T) {
		dataset := []Record{
			{Product: "A", Revenue: 100},
			{Product: "B", Revenue: 300},
			{Product: "C", Revenue: 300},
		}
		top, ok := TopByRevenue(dataset)
		if !ok {
			t.Fatal("expected ok for non-empty dataset")
		}
		if top.Product != "B" {
			t.Errorf("top = %q, want B", top.Product)
		}
	})

	t.Run("empty dataset", func(t *testing.T) {
		if _, ok := TopByRevenue(nil); ok {
			t.Error("expected ok=false for empty dataset")
		}
	})
}

func TestParseOptNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		set   bool
	}{
		{"plain integer", "250", 250, true},
		{"decimal", "99.5", 99.5, true},
		{"whitespace trimmed", " 10 ", 10, true},
		{"blank unset", "", 0, false},
		{"spaces unset", "   ", 0, false},
		{"garbage unset", "abc", 0, false},
		{"nan unset", "NaN", 0, false},
		{"infinity unset", "Inf", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseOptNumber(tt.input)
			v, set := got.Get()
			if set != tt.set {
				t.Fatalf("set = %v, want %v", set, tt.set)
			}
			if set && v != tt.want {
				t.Errorf("value = %v, want %v", v, tt.want)
			}
		})
	}
}

func TestQueryValidate(t *testing.T) {
	tests := []struct {
		name    string
		q       Query
		wantErr error
	}{
		{"zero query valid", Query{}, nil},
		{"full valid query", Query{Text: "x", MinRevenue: Number(0), MaxRevenue: Number(10), SortBy: SortRevenue, Limit: Number(5)}, nil},
		{"negative bound", Query{MinInventory: Number(-1)}, ErrNegativeBound},
		{"inverted range", Query{MinRevenue: Number(10), MaxRevenue: Number(5)}, ErrBoundOrder},
		{"unknown sort key", Query{SortBy: SortKey("price")}, ErrInvalidSortKey},
		{"negative limit", Query{Limit: Number(-3)}, ErrNegativeLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
