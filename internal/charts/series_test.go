package charts

import "testing"

func TestMonthlyRevenueSeries(t *testing.T) {
	s := MonthlyRevenue()

	if s.Kind != KindLine {
		t.Errorf("kind = %q, want %q", s.Kind, KindLine)
	}
	if !s.ShowLegend {
		t.Error("revenue series should show its legend")
	}
	if len(s.Items) != 6 {
		t.Fatalf("points = %d, want 6", len(s.Items))
	}
	wantLabels := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
	for i, label := range wantLabels {
		if s.Items[i].Name != label {
			t.Errorf("label %d = %q, want %q", i, s.Items[i].Name, label)
		}
	}
}

func TestProductSalesSeries(t *testing.T) {
	s := ProductSales()

	if s.Kind != KindBar {
		t.Errorf("kind = %q, want %q", s.Kind, KindBar)
	}
	if s.ShowLegend {
		t.Error("sales series should hide its legend")
	}
	if len(s.Items) != 5 {
		t.Fatalf("categories = %d, want 5", len(s.Items))
	}
	for _, item := range s.Items {
		if item.Name == "" || item.Value <= 0 {
			t.Errorf("malformed item: %+v", item)
		}
	}
}
