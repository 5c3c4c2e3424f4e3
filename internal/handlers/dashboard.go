package handlers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"google.golang.org/api/option"

	"gscdash/internal/config"
	"gscdash/internal/gsc"
	"gscdash/internal/middleware"
	"gscdash/internal/models"
)

// DashboardHandler renders the query builder page.
type DashboardHandler struct {
	cfg        *config.Config
	clientOpts []option.ClientOption
}

// NewDashboardHandler creates a new dashboard handler. Extra client options
// are passed through to the Search Console client, letting tests use a fake
// endpoint.
func NewDashboardHandler(cfg *config.Config, opts ...option.ClientOption) *DashboardHandler {
	return &DashboardHandler{cfg: cfg, clientOpts: opts}
}

// Index renders the dashboard: the property selector plus search type, date
// range, dimension, and device widgets, pre-filled from the session's
// current selection.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	client, err := gsc.NewClient(c.Context(), middleware.TokenSource(c), h.clientOpts...)
	if err != nil {
		return err
	}

	properties, err := client.ListProperties(c.Context())
	if err != nil {
		if gsc.IsAuthentication(err) {
			if sess := session.FromContext(c); sess != nil {
				sess.Destroy()
			}
			return c.Redirect().To("/login")
		}
		log.Printf("Failed to list properties: %v", err)
		return fiber.NewError(fiber.StatusBadGateway, "could not list Search Console properties")
	}

	sel := CurrentSelection(c)

	return c.Render("index", MergeBranding(fiber.Map{
		"UserEmail":    c.Locals("user_email"),
		"Properties":   properties,
		"NoProperties": len(properties) == 0,
		"SearchTypes":  gsc.SearchTypes,
		"DateRanges":   gsc.DateRangeOptions,
		"Devices":      gsc.DeviceOptions,
		"Dimensions":   gsc.ResolveDimensions(sel.SearchType),
		"Selection":    sel,
		"MaxRows":      gsc.MaxRows,
	}, h.cfg))
}

// Login renders the sign-in page.
func (h *DashboardHandler) Login(c fiber.Ctx) error {
	return c.Render("login", MergeBranding(fiber.Map{}, h.cfg))
}

// CurrentSelection returns the session's query selection, initialising it
// with the documented defaults on first use.
func CurrentSelection(c fiber.Ctx) models.Selection {
	sel := models.DefaultSelection(time.Now())
	sess := session.FromContext(c)
	if sess == nil {
		return sel
	}
	raw, _ := sess.Get("selection").(string)
	if raw == "" {
		return sel
	}
	if err := json.Unmarshal([]byte(raw), &sel); err != nil {
		return models.DefaultSelection(time.Now())
	}
	return sel
}

// SaveSelection stores the selection back into the session.
func SaveSelection(c fiber.Ctx, sel models.Selection) {
	sess := session.FromContext(c)
	if sess == nil {
		return
	}
	raw, err := json.Marshal(sel)
	if err != nil {
		return
	}
	sess.Set("selection", string(raw))
}
