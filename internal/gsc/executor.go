package gsc

import (
	"context"
	"math"
	"strings"

	"google.golang.org/api/searchconsole/v1"

	"gscdash/internal/models"
)

// MaxRows is the hard ceiling on returned rows, matching the API's own
// maximum page semantics.
const MaxRows = 1_000_000

// Query runs a single Search Analytics request. One attempt, no retry: a
// transport, permission, or quota failure comes back as a DataFetchError and
// an empty table so rendering degrades gracefully. A successful zero-row
// response returns ErrEmptyResult alongside the empty table.
//
// When dimensions include "device" and deviceFilter names a concrete device
// class, results are restricted to that device, case-normalized. rowCap is
// clamped to MaxRows; zero or negative means MaxRows.
func (c *Client) Query(ctx context.Context, property, searchType string, r DateRange, dimensions []string, deviceFilter string, rowCap int64) (models.ReportTable, error) {
	if rowCap <= 0 || rowCap > MaxRows {
		rowCap = MaxRows
	}

	req := &searchconsole.SearchAnalyticsQueryRequest{
		StartDate:  r.StartString(),
		EndDate:    r.EndString(),
		SearchType: searchType,
		Dimensions: dimensions,
		RowLimit:   rowCap,
	}

	if hasDimension(dimensions, "device") && deviceFilter != "" && deviceFilter != DeviceAll {
		req.DimensionFilterGroups = []*searchconsole.ApiDimensionFilterGroup{{
			Filters: []*searchconsole.ApiDimensionFilter{{
				Dimension:  "device",
				Operator:   "equals",
				Expression: strings.ToLower(deviceFilter),
			}},
		}}
	}

	table := models.ReportTable{
		Columns: append(append([]string{}, dimensions...), models.MetricColumns...),
	}

	resp, err := c.svc.Searchanalytics.Query(property, req).Context(ctx).Do()
	if err != nil {
		return table, WrapError(err)
	}

	rows := resp.Rows
	if int64(len(rows)) > rowCap {
		rows = rows[:rowCap]
	}

	for _, apiRow := range rows {
		row := models.ReportRow{
			Dimensions:  make(map[string]string, len(dimensions)),
			Clicks:      int64(math.Round(apiRow.Clicks)),
			Impressions: int64(math.Round(apiRow.Impressions)),
			CTR:         ptr(apiRow.Ctr),
			Position:    ptr(apiRow.Position),
		}
		for i, d := range dimensions {
			if i < len(apiRow.Keys) {
				row.Dimensions[d] = apiRow.Keys[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}

	if table.Empty() {
		return table, ErrEmptyResult
	}
	return table, nil
}

func hasDimension(dims []string, name string) bool {
	for _, d := range dims {
		if d == name {
			return true
		}
	}
	return false
}

func ptr(v float64) *float64 { return &v }
