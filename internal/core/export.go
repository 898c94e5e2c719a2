package core

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

var exportHeader = []string{"product", "inventory", "units_sold", "revenue"}

// ExportJSON encodes records as an indented JSON array for download.
func ExportJSON(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	return out, nil
}

// ExportCSV encodes records as CSV with a fixed header row.
func ExportCSV(records []Record) ([]byte, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Product,
			strconv.FormatInt(r.Inventory, 10),
			strconv.FormatInt(r.UnitsSold, 10),
			strconv.FormatInt(r.Revenue, 10),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return []byte(buf.String()), nil
}
