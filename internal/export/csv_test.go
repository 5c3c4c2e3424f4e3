package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"gscdash/internal/models"
)

func sampleTable() models.DisplayTable {
	return models.DisplayTable{
		Columns: []string{"query", "page", "clicks", "impressions", "ctr", "position"},
		Rows: [][]string{
			{"go fiber", "https://example.com/a", "42", "1000", "4.20%", "3.46"},
			{"search, console", "https://example.com/b?x=1", "7", "90", "7.78%", "1.50"},
		},
	}
}

func TestWriteCSV_EmitsBOM(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleTable()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	out := buf.Bytes()
	if len(out) < 3 || out[0] != 0xEF || out[1] != 0xBB || out[2] != 0xBF {
		t.Errorf("output does not start with a UTF-8 BOM: % x", out[:3])
	}
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	table := sampleTable()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, table); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	// Strip the BOM and parse back.
	raw := strings.TrimPrefix(buf.String(), "\uFEFF")
	records, err := csv.NewReader(strings.NewReader(raw)).ReadAll()
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}

	if len(records) != len(table.Rows)+1 {
		t.Fatalf("record count = %d, want %d", len(records), len(table.Rows)+1)
	}

	for i, col := range table.Columns {
		if records[0][i] != col {
			t.Errorf("header %d = %q, want %q", i, records[0][i], col)
		}
	}
	for r, row := range table.Rows {
		for i, cell := range row {
			if records[r+1][i] != cell {
				t.Errorf("row %d cell %d = %q, want %q", r, i, records[r+1][i], cell)
			}
		}
	}
}

func TestWriteCSV_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	table := models.DisplayTable{Columns: []string{"query", "clicks"}}
	if err := WriteCSV(&buf, table); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	raw := strings.TrimPrefix(buf.String(), "\uFEFF")
	records, err := csv.NewReader(strings.NewReader(raw)).ReadAll()
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("empty table wrote %d records, want header only", len(records))
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, time.June, 30, 15, 45, 0, 0, time.UTC)
	if got := Filename(now); got != "gsc_data_20240630_154500.csv" {
		t.Errorf("Filename() = %q", got)
	}
}
