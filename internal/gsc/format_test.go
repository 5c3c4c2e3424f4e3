package gsc

import (
	"testing"

	"gscdash/internal/models"
)

func f64(v float64) *float64 { return &v }

func TestFormatCTR(t *testing.T) {
	tests := []struct {
		name string
		in   *float64
		want string
	}{
		{"typical rate", f64(0.1234), "12.34%"},
		{"rounds half up", f64(0.12345), "12.35%"},
		{"zero", f64(0), "0.00%"},
		{"full", f64(1), "100.00%"},
		{"missing", nil, "0.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCTR(tt.in); got != tt.want {
				t.Errorf("FormatCTR() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatPosition(t *testing.T) {
	tests := []struct {
		name string
		in   *float64
		want string
	}{
		{"rounds to two decimals", f64(3.456), "3.46"},
		{"pads to two decimals", f64(1.5), "1.50"},
		{"zero", f64(0), "0.00"},
		{"missing", nil, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPosition(tt.in); got != tt.want {
				t.Errorf("FormatPosition() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	table := models.ReportTable{
		Columns: []string{"query", "page", "clicks", "impressions", "ctr", "position"},
		Rows: []models.ReportRow{
			{
				Dimensions:  map[string]string{"query": "go testing", "page": "https://example.com/a"},
				Clicks:      42,
				Impressions: 1000,
				CTR:         f64(0.042),
				Position:    f64(3.456),
			},
			{
				Dimensions: map[string]string{"query": "empty metrics", "page": "https://example.com/b"},
			},
		},
	}

	got := Format(table)

	if len(got.Columns) != 6 || got.Columns[0] != "query" || got.Columns[5] != "position" {
		t.Fatalf("column order changed: %v", got.Columns)
	}
	if len(got.Rows) != 2 {
		t.Fatalf("row count = %d, want 2", len(got.Rows))
	}

	want := []string{"go testing", "https://example.com/a", "42", "1000", "4.20%", "3.46"}
	for i, cell := range want {
		if got.Rows[0][i] != cell {
			t.Errorf("row 0 cell %d = %q, want %q", i, got.Rows[0][i], cell)
		}
	}

	// Missing metrics format to zero strings, never propagate as blanks.
	wantEmpty := []string{"empty metrics", "https://example.com/b", "0", "0", "0.00%", "0.00"}
	for i, cell := range wantEmpty {
		if got.Rows[1][i] != cell {
			t.Errorf("row 1 cell %d = %q, want %q", i, got.Rows[1][i], cell)
		}
	}
}

func TestFormat_EmptyTable(t *testing.T) {
	table := models.ReportTable{
		Columns: []string{"query", "clicks", "impressions", "ctr", "position"},
	}

	got := Format(table)
	if !got.Empty() {
		t.Errorf("formatted empty table has %d rows", len(got.Rows))
	}
	if len(got.Columns) != 5 {
		t.Errorf("columns dropped: %v", got.Columns)
	}
}
