package gsc

import (
	"fmt"
	"strconv"

	"gscdash/internal/models"
)

// Format transforms a raw report table into its display shape: ctr rendered
// as a percent string with two decimals, position as a fixed two-decimal
// string, missing metrics as "0.00%" / "0.00". Column order is preserved.
//
// The string-with-symbol policy is used throughout; there is no column
// renaming. See DESIGN.md for the decision record.
func Format(t models.ReportTable) models.DisplayTable {
	out := models.DisplayTable{
		Columns: t.Columns,
		Rows:    make([][]string, 0, len(t.Rows)),
	}

	dims := dimensionColumns(t.Columns)
	for _, row := range t.Rows {
		cells := make([]string, 0, len(dims)+len(models.MetricColumns))
		for _, d := range dims {
			cells = append(cells, row.Dimensions[d])
		}
		cells = append(cells,
			strconv.FormatInt(row.Clicks, 10),
			strconv.FormatInt(row.Impressions, 10),
			FormatCTR(row.CTR),
			FormatPosition(row.Position),
		)
		out.Rows = append(out.Rows, cells)
	}
	return out
}

// FormatCTR renders a click-through rate as a percentage with two decimal
// places, e.g. 0.1234 -> "12.34%". A missing value renders as "0.00%".
func FormatCTR(v *float64) string {
	if v == nil {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", *v*100)
}

// FormatPosition renders an average position with two decimal places. A
// missing value renders as "0.00".
func FormatPosition(v *float64) string {
	if v == nil {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", *v)
}

// dimensionColumns strips the trailing metric columns, leaving the dimension
// names in request order.
func dimensionColumns(columns []string) []string {
	if len(columns) < len(models.MetricColumns) {
		return columns
	}
	return columns[:len(columns)-len(models.MetricColumns)]
}
