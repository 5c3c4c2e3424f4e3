package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"gscdash/internal/config"
	"gscdash/internal/export"
	"gscdash/internal/gsc"
	"gscdash/internal/metrics"
	"gscdash/internal/middleware"
	"gscdash/internal/models"
	"gscdash/internal/reportcache"
	"gscdash/internal/validation"
)

// previewRows caps the rows rendered inline; the full table is available
// through the CSV download.
const previewRows = 100

// fetchRemediation is appended to fetch failure notices.
const fetchRemediation = "If this persists: check your Search Console access, try signing out and back in, and verify your date range selection."

// ReportHandler runs Search Analytics queries and serves CSV downloads.
type ReportHandler struct {
	cfg        *config.Config
	cache      *reportcache.Store
	clientOpts []option.ClientOption
}

// NewReportHandler creates a new report handler. Extra client options are
// passed through to the Search Console client, letting tests use a fake
// endpoint.
func NewReportHandler(cfg *config.Config, cache *reportcache.Store, opts ...option.ClientOption) *ReportHandler {
	return &ReportHandler{cfg: cfg, cache: cache, clientOpts: opts}
}

type reportForm struct {
	Property    string   `form:"property"`
	SearchType  string   `form:"search_type"`
	DateRange   string   `form:"date_range"`
	CustomStart string   `form:"custom_start"`
	CustomEnd   string   `form:"custom_end"`
	Dimensions  []string `form:"dimensions"`
	Device      string   `form:"device"`
}

// Fetch handles POST /report: validates the form, resolves the date range
// and dimensions, runs one query, and renders the preview table with a
// download link. Failures render a notice; they never take the session down.
func (h *ReportHandler) Fetch(c fiber.Ctx) error {
	var form reportForm
	if err := c.Bind().Form(&form); err != nil {
		return renderNotice(c, NoticeError, "Could not read the report form.")
	}

	sel, msg := parseSelection(form, time.Now())
	if msg != "" {
		return renderNotice(c, NoticeError, msg)
	}

	dateRange := gsc.ResolveDateRange(sel.DateRange, sel.CustomStart, sel.CustomEnd, time.Now())
	// Keep the effective window in the session so the date inputs reflect
	// what was actually queried.
	sel.CustomStart, sel.CustomEnd = dateRange.Start, dateRange.End

	client, err := gsc.NewClient(c.Context(), middleware.TokenSource(c), h.clientOpts...)
	if err != nil {
		return err
	}

	start := time.Now()
	table, err := client.Query(c.Context(), sel.Property, sel.SearchType, dateRange, sel.Dimensions, sel.Device, h.cfg.RowCap)
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, gsc.ErrEmptyResult):
		metrics.RecordFetch(sel.SearchType, metrics.OutcomeEmpty, elapsed)
		SaveSelection(c, sel)
		return renderNotice(c, NoticeWarning, "No data found for the selected criteria. Try adjusting your filters.")
	case gsc.IsAuthentication(err):
		metrics.RecordFetch(sel.SearchType, metrics.OutcomeAuth, elapsed)
		return renderNotice(c, NoticeError, "Your Google session has expired. Please sign out and sign in again.")
	case err != nil:
		metrics.RecordFetch(sel.SearchType, metrics.OutcomeError, elapsed)
		log.Printf("Report fetch failed: %v", err)
		return renderNotice(c, NoticeError, "Error fetching data: "+err.Error()+" "+fetchRemediation)
	}

	metrics.RecordFetch(sel.SearchType, metrics.OutcomeOK, elapsed)
	SaveSelection(c, sel)

	display := gsc.Format(table)
	reportID := h.cache.Put(display)

	return c.Render("partials/report", fiber.Map{
		"Message":     fmt.Sprintf("Data fetched successfully! %d rows retrieved.", len(display.Rows)),
		"Columns":     display.Columns,
		"Preview":     display.Head(previewRows),
		"PreviewRows": previewRows,
		"TotalRows":   len(display.Rows),
		"ReportID":    reportID.String(),
	}, "")
}

// DownloadCSV handles GET /report/:id/csv, streaming the cached report as a
// CSV attachment with a timestamped filename.
func (h *ReportHandler) DownloadCSV(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid report id")
	}

	table, ok := h.cache.Get(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "report expired, please fetch again")
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, table); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.Filename(time.Now())+`"`)
	return c.Send(buf.Bytes())
}

// parseSelection validates the submitted form against the fixed
// vocabularies and returns the resulting selection, or a user-facing message
// when a field is out of range. Custom date bounds are parsed leniently: a
// bound that is missing or malformed is left zero so the resolver falls back
// to the 7-day default.
func parseSelection(form reportForm, today time.Time) (models.Selection, string) {
	sel := models.DefaultSelection(today)

	if ok, msg := validation.ValidateProperty(form.Property); !ok {
		return sel, msg
	}
	if !validation.ValidateSearchType(form.SearchType) {
		return sel, "Unknown search type."
	}
	if !validation.ValidateDateRange(form.DateRange) {
		return sel, "Unknown date range selection."
	}
	if !validation.ValidateDimensions(form.Dimensions, form.SearchType) {
		return sel, "Select at least one valid dimension, without repeats."
	}
	if form.Device != "" && !validation.ValidateDevice(form.Device) {
		return sel, "Unknown device filter."
	}

	sel.Property = form.Property
	sel.SearchType = form.SearchType
	sel.DateRange = form.DateRange
	sel.Dimensions = form.Dimensions
	if form.Device != "" {
		sel.Device = form.Device
	}

	sel.CustomStart, sel.CustomEnd = time.Time{}, time.Time{}
	if t, err := time.Parse("2006-01-02", form.CustomStart); err == nil {
		sel.CustomStart = t
	}
	if t, err := time.Parse("2006-01-02", form.CustomEnd); err == nil {
		sel.CustomEnd = t
	}

	return sel, ""
}
