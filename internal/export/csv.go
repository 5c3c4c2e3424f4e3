// Package export produces downloadable CSV artifacts from display tables.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"gscdash/internal/models"
)

// utf8BOM is prepended so spreadsheet applications detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes the table as RFC-4180 CSV: a UTF-8 BOM, a header row with
// the column names in table order, then one record per row. No index column
// is emitted.
func WriteCSV(w io.Writer, t models.DisplayTable) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Filename returns a timestamped download name, e.g.
// gsc_data_20240630_154500.csv.
func Filename(now time.Time) string {
	return "gsc_data_" + now.Format("20060102_150405") + ".csv"
}
