package models

// MetricColumns are the metric fields returned by the Search Analytics API,
// in the order they are rendered after the dimension columns.
var MetricColumns = []string{"clicks", "impressions", "ctr", "position"}

// ReportRow is a single row of a Search Analytics response: one value per
// requested dimension plus the four metrics. CTR and Position are pointers
// so a missing metric can be told apart from a zero one.
type ReportRow struct {
	Dimensions  map[string]string `json:"dimensions"`
	Clicks      int64             `json:"clicks"`
	Impressions int64             `json:"impressions"`
	CTR         *float64          `json:"ctr"`
	Position    *float64          `json:"position"`
}

// ReportTable is the raw tabular result of a single query. Columns holds the
// dimension names in request order followed by MetricColumns. The table is
// owned by the request that produced it and is never cached across fetches.
type ReportTable struct {
	Columns []string    `json:"columns"`
	Rows    []ReportRow `json:"rows"`
}

// Empty reports whether the query matched no rows.
func (t ReportTable) Empty() bool {
	return len(t.Rows) == 0
}

// DisplayTable is a display-shaped table: every cell already formatted as a
// string, ready for rendering or CSV export. Produced by gsc.Format.
type DisplayTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Empty reports whether the table has no rows.
func (t DisplayTable) Empty() bool {
	return len(t.Rows) == 0
}

// Head returns at most n rows for preview rendering.
func (t DisplayTable) Head(n int) [][]string {
	if len(t.Rows) <= n {
		return t.Rows
	}
	return t.Rows[:n]
}
