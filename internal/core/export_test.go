package core

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestExportCSV(t *testing.T) {
	out, err := ExportCSV(sampleDataset())
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4", len(lines))
	}
	if lines[0] != "product,inventory,units_sold,revenue" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Cement (UltraTech),320,180,90000" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[3] != "River Sand,710,460,250000" {
		t.Errorf("row 3 = %q", lines[3])
	}
}

func TestExportCSVEmpty(t *testing.T) {
	out, err := ExportCSV(nil)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if got := strings.TrimRight(string(out), "\n"); got != "product,inventory,units_sold,revenue" {
		t.Errorf("empty export = %q, want header only", got)
	}
}

func TestExportJSON(t *testing.T) {
	out, err := ExportJSON(sampleDataset())
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	var decoded []Record
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 3 {
		t.Fatalf("records = %d, want 3", len(decoded))
	}
	if decoded[1].Product != "TMT Steel" || decoded[1].Revenue != 140000 {
		t.Errorf("record 1 = %+v", decoded[1])
	}
}

func TestExportJSONEmptyIsArray(t *testing.T) {
	out, err := ExportJSON(nil)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if strings.TrimSpace(string(out)) != "[]" {
		t.Errorf("empty export = %q, want []", out)
	}
}
