package core

import (
	"reflect"
	"testing"
)

func TestUnitsFor(t *testing.T) {
	tests := []struct {
		category Category
		want     []string
	}{
		{CategoryCement, []string{"Bag"}},
		{CategorySand, []string{"Ton"}},
		{CategorySteel, []string{"Ton", "Quintal"}},
		{CategoryStone, []string{"Number"}},
		{Category("bricks"), nil},
		{Category(""), nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			got := UnitsFor(tt.category)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("UnitsFor(%q) = %v, want %v", tt.category, got, tt.want)
			}
		})
	}
}

func TestUnitsForReturnsCopy(t *testing.T) {
	units := UnitsFor(CategorySteel)
	units[0] = "Kilogram"

	if again := UnitsFor(CategorySteel); again[0] != "Ton" {
		t.Errorf("mapping mutated through returned slice: %v", again)
	}
}

func TestStoneFieldsVisible(t *testing.T) {
	if !StoneFieldsVisible(CategoryStone) {
		t.Error("stone fields should be visible for stone")
	}
	for _, c := range []Category{CategoryCement, CategorySand, CategorySteel, Category("unknown")} {
		if StoneFieldsVisible(c) {
			t.Errorf("stone fields should be hidden for %q", c)
		}
	}
}

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"integer", "10", 10},
		{"decimal", "2.5", 2.5},
		{"trimmed", "  200  ", 200},
		{"blank is zero", "", 0},
		{"garbage is zero", "ten", 0},
		{"nan is zero", "NaN", 0},
		{"infinity is zero", "+Inf", 0},
		{"negative passes through", "-4", -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoerceNumber(tt.input); got != tt.want {
				t.Errorf("CoerceNumber(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCostInputCompute(t *testing.T) {
	tests := []struct {
		name         string
		in           CostInput
		wantMaterial float64
		wantTotal    float64
	}{
		{"reference scenario", CostInput{Quantity: 10, Rate: 200, Transport: 50}, 2000, 2050},
		{"all zero", CostInput{}, 0, 0},
		{"no transport", CostInput{Quantity: 3, Rate: 150}, 450, 450},
		{"fractional quantity", CostInput{Quantity: 1.5, Rate: 100, Transport: 25}, 150, 175},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Compute()
			if got.MaterialCost != tt.wantMaterial {
				t.Errorf("material = %v, want %v", got.MaterialCost, tt.wantMaterial)
			}
			if got.TotalCost != tt.wantTotal {
				t.Errorf("total = %v, want %v", got.TotalCost, tt.wantTotal)
			}
		})
	}
}

func TestCostComputeIdempotent(t *testing.T) {
	in := CostInput{Quantity: 10, Rate: 200, Transport: 50}

	first := in.Compute()
	second := in.Compute()

	if first != second {
		t.Errorf("recompute changed result: %+v vs %+v", first, second)
	}
}
