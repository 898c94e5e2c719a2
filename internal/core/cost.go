package core

import (
	"math"
	"strconv"
	"strings"
)

// Category is a material category of the cost calculator.
type Category string

const (
	CategoryCement Category = "cement"
	CategorySand   Category = "sand"
	CategorySteel  Category = "steel"
	CategoryStone  Category = "stone"
)

// unitsByCategory is the fixed mapping of allowed units per category.
var unitsByCategory = map[Category][]string{
	CategoryCement: {"Bag"},
	CategorySand:   {"Ton"},
	CategorySteel:  {"Ton", "Quintal"},
	CategoryStone:  {"Number"},
}

// UnitsFor returns the allowed units for a category, in fixed order.
// Unknown categories yield an empty list.
func UnitsFor(c Category) []string {
	units := unitsByCategory[c]
	return append([]string(nil), units...)
}

// StoneFieldsVisible reports whether the stone count and stone weight
// fields are shown. They are hidden for every category except stone.
func StoneFieldsVisible(c Category) bool {
	return c == CategoryStone
}

// CoerceNumber converts form input to a number for cost arithmetic.
// Blank, unparseable and non-finite input all coerce to zero; the cost
// form never surfaces an input error.
func CoerceNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

type (
	// CostInput holds the already-coerced numeric fields of the cost form.
	CostInput struct {
		Quantity  float64
		Rate      float64
		Transport float64
	}

	// CostResult carries the two derived fields, raw and unrounded.
	CostResult struct {
		MaterialCost float64
		TotalCost    float64
	}
)

// Compute derives material and total cost. It is a pure function of its
// input, so recomputing with unchanged values yields identical results.
func (in CostInput) Compute() CostResult {
	material := in.Quantity * in.Rate
	return CostResult{
		MaterialCost: material,
		TotalCost:    material + in.Transport,
	}
}
