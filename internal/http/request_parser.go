// Package http provides the dashboard's HTTP server and handlers.
//
// This file parses filter, cost and record form input. Filter parsing is
// deliberately lenient: blank or malformed numeric input degrades to "no
// filter applied" rather than an error.
package http

import (
	"net/url"
	"strconv"
	"strings"

	"stockboard/internal/core"
)

// ParseQuery builds a table query from request parameters. Unknown sort
// keys fall back to no sorting; the direction defaults to descending.
func ParseQuery(values url.Values) core.Query {
	q := core.Query{
		Text:         sanitizeInput(values.Get("q")),
		MinInventory: core.ParseOptNumber(values.Get("min_inventory")),
		MaxInventory: core.ParseOptNumber(values.Get("max_inventory")),
		MinUnitsSold: core.ParseOptNumber(values.Get("min_units_sold")),
		MaxUnitsSold: core.ParseOptNumber(values.Get("max_units_sold")),
		MinRevenue:   core.ParseOptNumber(values.Get("min_revenue")),
		MaxRevenue:   core.ParseOptNumber(values.Get("max_revenue")),
	}

	switch key := core.SortKey(strings.TrimSpace(values.Get("sort_by"))); key {
	case core.SortProduct, core.SortInventory, core.SortUnitsSold, core.SortRevenue:
		q.SortBy = key
	}
	q.Ascending = strings.EqualFold(strings.TrimSpace(values.Get("order")), "asc")

	if limit := core.ParseOptNumber(values.Get("limit")); limit.IsSet() {
		if v, _ := limit.Get(); v >= 0 {
			q.Limit = limit
		}
	}
	return q
}

// QueryCacheKey normalizes a query into a stable cache key for rendered
// table partials. Two requests with equivalent filters share a key.
func QueryCacheKey(q core.Query) string {
	var b strings.Builder
	b.WriteString("q=")
	b.WriteString(strings.ToLower(q.Text))
	writeBound := func(name string, o core.OptNumber) {
		b.WriteByte('|')
		b.WriteString(name)
		b.WriteByte('=')
		if v, ok := o.Get(); ok {
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	writeBound("mini", q.MinInventory)
	writeBound("maxi", q.MaxInventory)
	writeBound("minu", q.MinUnitsSold)
	writeBound("maxu", q.MaxUnitsSold)
	writeBound("minr", q.MinRevenue)
	writeBound("maxr", q.MaxRevenue)
	b.WriteString("|sort=")
	b.WriteString(string(q.SortBy))
	if q.Ascending {
		b.WriteString("|asc")
	} else {
		b.WriteString("|desc")
	}
	writeBound("limit", q.Limit)
	return b.String()
}

// ParseCostInput coerces the cost form's numeric fields. Blank and
// malformed input coerce to zero.
func ParseCostInput(values url.Values) core.CostInput {
	return core.CostInput{
		Quantity:  core.CoerceNumber(values.Get("quantity")),
		Rate:      core.CoerceNumber(values.Get("rate")),
		Transport: core.CoerceNumber(values.Get("transport")),
	}
}

// ParseCategory reads the material category. A blank parameter means the
// initial form state (cement); anything else passes through unchanged so
// unknown categories keep their documented empty unit list.
func ParseCategory(values url.Values) core.Category {
	c := core.Category(strings.ToLower(strings.TrimSpace(values.Get("category"))))
	if c == "" {
		return core.CategoryCement
	}
	return c
}

// ParseRecordForm builds a record from submission form values. Numeric
// fields are strict here: a submission is an explicit write, not a filter.
func ParseRecordForm(values url.Values) (core.Record, error) {
	rec := core.Record{Product: sanitizeInput(values.Get("product"))}

	fields := []struct {
		name string
		dst  *int64
	}{
		{"inventory", &rec.Inventory},
		{"units_sold", &rec.UnitsSold},
		{"revenue", &rec.Revenue},
	}
	for _, f := range fields {
		raw := strings.TrimSpace(values.Get(f.name))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return core.Record{}, &FieldError{Field: f.name, Err: err}
		}
		*f.dst = v
	}
	return rec, rec.Validate()
}

// FieldError names the form field a parse failure belongs to.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
