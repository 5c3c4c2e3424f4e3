package handlers

import (
	"github.com/gofiber/fiber/v3"

	"gscdash/internal/config"
)

// Notice levels rendered by the partials/notice template.
const (
	NoticeSuccess = "success"
	NoticeWarning = "warning"
	NoticeError   = "error"
)

// MergeBranding adds site branding data to a fiber.Map for template rendering.
func MergeBranding(data fiber.Map, cfg *config.Config) fiber.Map {
	data["SiteTitle"] = cfg.SiteTitle
	data["SiteTagline"] = cfg.SiteTagline
	data["SiteFooter"] = cfg.SiteFooter
	return data
}

// renderNotice renders a standalone notice partial. Uses 200 status so HTMX
// processes the swap (HTMX ignores non-2xx by default).
func renderNotice(c fiber.Ctx, level, message string) error {
	return c.Render("partials/notice", fiber.Map{
		"Level":   level,
		"Message": message,
	}, "")
}
