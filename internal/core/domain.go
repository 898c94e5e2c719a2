package core

import (
	"errors"
	"strings"
)

// Badge is the inventory-health indicator shown next to each table row.
type Badge string

const (
	BadgeHealthy Badge = "Healthy"
	BadgeWatch   Badge = "Watch"
	BadgeLow     Badge = "Low"
)

// Inventory thresholds for badges, inclusive on the lower bound of each band.
const (
	healthyMinInventory = 500
	watchMinInventory   = 250
)

type (
	// Record is one inventory line item. Revenue is in whole rupees.
	Record struct {
		Product   string `json:"product"`
		Inventory int64  `json:"inventory"`
		UnitsSold int64  `json:"units_sold"`
		Revenue   int64  `json:"revenue"`
	}

	// Summary holds the dashboard tile figures. These are maintained
	// independently of the record set and are not derived from it.
	Summary struct {
		TotalRevenue         int64
		TotalProducts        int64
		StockAvailable       int64
		MonthlyGrowthPercent float64
	}
)

var (
	ErrEmptyProduct      = errors.New("empty product name")
	ErrProductTooLong    = errors.New("product name too long (max 120 characters)")
	ErrNegativeInventory = errors.New("inventory must be non-negative")
	ErrNegativeUnitsSold = errors.New("units sold must be non-negative")
	ErrNegativeRevenue   = errors.New("revenue must be non-negative")
)

func (r Record) Validate() error {
	if len(strings.TrimSpace(r.Product)) == 0 {
		return ErrEmptyProduct
	}
	if len(r.Product) > 120 {
		return ErrProductTooLong
	}
	if r.Inventory < 0 {
		return ErrNegativeInventory
	}
	if r.UnitsSold < 0 {
		return ErrNegativeUnitsSold
	}
	if r.Revenue < 0 {
		return ErrNegativeRevenue
	}
	return nil
}

// BadgeFor maps an inventory level to its health badge.
func BadgeFor(inventory int64) Badge {
	switch {
	case inventory >= healthyMinInventory:
		return BadgeHealthy
	case inventory >= watchMinInventory:
		return BadgeWatch
	default:
		return BadgeLow
	}
}

// TopByRevenue returns the record with the highest revenue. Ties keep the
// first maximum encountered. ok is false for an empty dataset.
func TopByRevenue(dataset []Record) (top Record, ok bool) {
	for i, r := range dataset {
		if i == 0 || r.Revenue > top.Revenue {
			top = r
			ok = true
		}
	}
	return top, ok
}
