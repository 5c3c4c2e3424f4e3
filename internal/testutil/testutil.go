// Package testutil provides test utilities and helpers.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/searchconsole/v1"
)

// FakeSearchConsole is an in-process stand-in for the Search Console API.
// It serves canned Sites.List and Searchanalytics.Query responses, captures
// the last query request, and can be forced into an error status. When a
// query carries a device equals-filter the fake applies it to the canned
// rows the way the real API would.
type FakeSearchConsole struct {
	Sites     []string
	QueryRows []*searchconsole.ApiDataRow

	// QueryStatus forces an error response with the given HTTP status when
	// non-zero.
	QueryStatus int

	// LastQuery holds the most recent decoded query request body.
	LastQuery *searchconsole.SearchAnalyticsQueryRequest

	srv *httptest.Server
}

// NewFakeSearchConsole starts the fake API server. It is shut down with the
// test.
func NewFakeSearchConsole(t *testing.T) *FakeSearchConsole {
	t.Helper()

	f := &FakeSearchConsole{}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

// ClientOptions returns the options pointing a Search Console client at the
// fake endpoint.
func (f *FakeSearchConsole) ClientOptions() []option.ClientOption {
	return []option.ClientOption{option.WithEndpoint(f.srv.URL)}
}

// TokenSource returns a static bearer credential accepted by the fake.
func TokenSource() oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"})
}

func (f *FakeSearchConsole) handle(w http.ResponseWriter, r *http.Request) {
	switch {
	case strings.Contains(r.URL.Path, "searchAnalytics/query"):
		f.handleQuery(w, r)
	case strings.HasSuffix(r.URL.Path, "/sites"):
		f.handleSites(w)
	default:
		http.NotFound(w, r)
	}
}

func (f *FakeSearchConsole) handleSites(w http.ResponseWriter) {
	resp := &searchconsole.SitesListResponse{}
	for _, s := range f.Sites {
		resp.SiteEntry = append(resp.SiteEntry, &searchconsole.WmxSite{
			SiteUrl:         s,
			PermissionLevel: "siteFullUser",
		})
	}
	writeJSON(w, resp)
}

func (f *FakeSearchConsole) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req searchconsole.SearchAnalyticsQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f.LastQuery = &req

	if f.QueryStatus != 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.QueryStatus)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    f.QueryStatus,
				"message": http.StatusText(f.QueryStatus),
			},
		})
		return
	}

	rows := f.filterRows(&req)
	if req.RowLimit > 0 && int64(len(rows)) > req.RowLimit {
		rows = rows[:req.RowLimit]
	}
	writeJSON(w, &searchconsole.SearchAnalyticsQueryResponse{Rows: rows})
}

// filterRows applies a device equals-filter, if present, against the device
// dimension key. Comparison is case-insensitive, matching API behaviour for
// normalized expressions.
func (f *FakeSearchConsole) filterRows(req *searchconsole.SearchAnalyticsQueryRequest) []*searchconsole.ApiDataRow {
	deviceIdx := -1
	for i, d := range req.Dimensions {
		if d == "device" {
			deviceIdx = i
		}
	}

	var expression string
	for _, g := range req.DimensionFilterGroups {
		for _, flt := range g.Filters {
			if flt.Dimension == "device" && flt.Operator == "equals" {
				expression = flt.Expression
			}
		}
	}

	if expression == "" || deviceIdx < 0 {
		return f.QueryRows
	}

	var kept []*searchconsole.ApiDataRow
	for _, row := range f.QueryRows {
		if deviceIdx < len(row.Keys) && strings.EqualFold(row.Keys[deviceIdx], expression) {
			kept = append(kept, row)
		}
	}
	return kept
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
