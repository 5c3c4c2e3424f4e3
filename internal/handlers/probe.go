package handlers

import "github.com/gofiber/fiber/v3"

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct{}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler() *ProbeHandler {
	return &ProbeHandler{}
}

// Liveness handles the /healthz endpoint. The app holds no connections of
// its own, so liveness and readiness collapse into one check.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
