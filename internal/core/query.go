// Package core holds the display-independent data transforms of the
// dashboard: filtering, sorting and aggregation of inventory records, the
// cost calculator arithmetic, and export encoding. Nothing in this package
// touches the rendering layer.
package core

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// SortKey names a Record field a view can be ordered by.
type SortKey string

const (
	SortNone      SortKey = ""
	SortProduct   SortKey = "product"
	SortInventory SortKey = "inventory"
	SortUnitsSold SortKey = "units_sold"
	SortRevenue   SortKey = "revenue"
)

var (
	ErrNegativeBound  = errors.New("bound must be non-negative")
	ErrBoundOrder     = errors.New("min bound greater than max bound")
	ErrInvalidSortKey = errors.New("unsupported sort key")
	ErrNegativeLimit  = errors.New("limit must be non-negative")
)

// OptNumber is an optional finite numeric value. The zero value is unset.
// It makes the lenient coercion of filter inputs explicit: blank or
// non-numeric input stays unset, which downstream means "filter skipped".
type OptNumber struct {
	value float64
	set   bool
}

// Number returns a set OptNumber.
func Number(v float64) OptNumber {
	return OptNumber{value: v, set: true}
}

// ParseOptNumber coerces user input to an optional number. Blank input,
// unparseable input and non-finite values all yield the unset value; this
// is the documented degrade-to-no-filter behavior, not an error.
func ParseOptNumber(s string) OptNumber {
	s = strings.TrimSpace(s)
	if s == "" {
		return OptNumber{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return OptNumber{}
	}
	return Number(v)
}

// Get returns the value and whether it is set.
func (o OptNumber) Get() (float64, bool) {
	return o.value, o.set
}

// IsSet reports whether the value is set.
func (o OptNumber) IsSet() bool {
	return o.set
}

// Query captures one explicit filter/sort application. It is an immutable
// value: handlers build it from request input and pass it to ComputeView.
type Query struct {
	Text string

	MinInventory OptNumber
	MaxInventory OptNumber
	MinUnitsSold OptNumber
	MaxUnitsSold OptNumber
	MinRevenue   OptNumber
	MaxRevenue   OptNumber

	SortBy SortKey
	// Ascending flips the comparison; the default direction is descending.
	Ascending bool

	// Limit caps the number of rows after sorting. Unset means no cap.
	Limit OptNumber
}

// Validate rejects queries that the lenient form parser cannot produce but
// API callers could: negative bounds, inverted ranges, unknown sort keys.
func (q Query) Validate() error {
	bounds := []struct {
		name string
		v    OptNumber
	}{
		{"min_inventory", q.MinInventory},
		{"max_inventory", q.MaxInventory},
		{"min_units_sold", q.MinUnitsSold},
		{"max_units_sold", q.MaxUnitsSold},
		{"min_revenue", q.MinRevenue},
		{"max_revenue", q.MaxRevenue},
	}
	for _, b := range bounds {
		if v, ok := b.v.Get(); ok && v < 0 {
			return fmt.Errorf("%s: %w", b.name, ErrNegativeBound)
		}
	}

	ranges := []struct {
		name     string
		min, max OptNumber
	}{
		{"inventory", q.MinInventory, q.MaxInventory},
		{"units_sold", q.MinUnitsSold, q.MaxUnitsSold},
		{"revenue", q.MinRevenue, q.MaxRevenue},
	}
	for _, r := range ranges {
		lo, okLo := r.min.Get()
		hi, okHi := r.max.Get()
		if okLo && okHi && lo > hi {
			return fmt.Errorf("%s: %w", r.name, ErrBoundOrder)
		}
	}

	switch q.SortBy {
	case SortNone, SortProduct, SortInventory, SortUnitsSold, SortRevenue:
	default:
		return fmt.Errorf("%q: %w", string(q.SortBy), ErrInvalidSortKey)
	}

	if v, ok := q.Limit.Get(); ok && v < 0 {
		return ErrNegativeLimit
	}
	return nil
}

type (
	// ViewRow is one surviving record plus its derived health badge.
	ViewRow struct {
		Record
		Badge Badge
	}

	// Totals aggregates the filtered set, not the full dataset.
	Totals struct {
		Revenue   int64
		UnitsSold int64
		Inventory int64
		Count     int
	}

	// View is the filtered/sorted subset currently displayed together
	// with its aggregates. It is a plain value the renderer consumes.
	View struct {
		Rows   []ViewRow
		Totals Totals
	}
)

// ComputeView derives the table view from the dataset and a query. The
// dataset is never mutated: rows are copied before filtering and sorting.
// With a zero query the view is the full dataset in original order.
func ComputeView(dataset []Record, q Query) View {
	rows := append([]Record(nil), dataset...)

	needle := strings.ToLower(strings.TrimSpace(q.Text))
	filtered := rows[:0]
	for _, r := range rows {
		if matches(r, needle, q) {
			filtered = append(filtered, r)
		}
	}

	if q.SortBy != SortNone {
		sortRecords(filtered, q.SortBy, q.Ascending)
	}

	if n, ok := q.Limit.Get(); ok {
		max := int(n)
		if max < 0 {
			max = 0
		}
		if max < len(filtered) {
			filtered = filtered[:max]
		}
	}

	view := View{Rows: make([]ViewRow, 0, len(filtered))}
	for _, r := range filtered {
		view.Rows = append(view.Rows, ViewRow{Record: r, Badge: BadgeFor(r.Inventory)})
		view.Totals.Revenue += r.Revenue
		view.Totals.UnitsSold += r.UnitsSold
		view.Totals.Inventory += r.Inventory
	}
	view.Totals.Count = len(view.Rows)
	return view
}

func matches(r Record, needle string, q Query) bool {
	if needle != "" && !strings.Contains(strings.ToLower(r.Product), needle) {
		return false
	}
	if !within(float64(r.Inventory), q.MinInventory, q.MaxInventory) {
		return false
	}
	if !within(float64(r.UnitsSold), q.MinUnitsSold, q.MaxUnitsSold) {
		return false
	}
	if !within(float64(r.Revenue), q.MinRevenue, q.MaxRevenue) {
		return false
	}
	return true
}

// within checks inclusive bounds; unset bounds always pass.
func within(v float64, min, max OptNumber) bool {
	if lo, ok := min.Get(); ok && v < lo {
		return false
	}
	if hi, ok := max.Get(); ok && v > hi {
		return false
	}
	return true
}

func sortRecords(rows []Record, key SortKey, ascending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		less := lessBy(rows[i], rows[j], key)
		if ascending {
			return less < 0
		}
		return less > 0
	})
}

// lessBy compares two records on the sort key. Product names compare
// case-folded, numeric fields by difference.
func lessBy(a, b Record, key SortKey) int {
	switch key {
	case SortProduct:
		return strings.Compare(strings.ToLower(a.Product), strings.ToLower(b.Product))
	case SortInventory:
		return compareInt64(a.Inventory, b.Inventory)
	case SortUnitsSold:
		return compareInt64(a.UnitsSold, b.UnitsSold)
	case SortRevenue:
		return compareInt64(a.Revenue, b.Revenue)
	}
	return 0
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
