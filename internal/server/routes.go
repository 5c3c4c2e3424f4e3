package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gscdash/internal/handlers"
	"gscdash/internal/middleware"
	"gscdash/internal/reportcache"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, cache *reportcache.Store) error {
	if !s.Cfg.HasGoogleCredentials() {
		log.Fatal("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET are required. All users must authenticate with Google.")
	}

	authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg)
	if err != nil {
		return err
	}

	authMiddleware := middleware.NewAuthMiddleware(s.Cfg)
	dashboardHandler := handlers.NewDashboardHandler(s.Cfg)
	reportHandler := handlers.NewReportHandler(s.Cfg, cache)
	probeHandler := handlers.NewProbeHandler()

	// Operational endpoints
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Auth routes
	s.App.Get("/auth/login", authHandler.Login)
	s.App.Get("/auth/callback", authHandler.Callback)
	s.App.Get("/auth/logout", authHandler.Logout)

	// Sign-in page (always available)
	s.App.Get("/login", dashboardHandler.Login)

	// Dashboard and report routes - always require authentication
	s.App.Get("/", authMiddleware.RequireAuth, dashboardHandler.Index)
	s.App.Post("/report", authMiddleware.RequireAuth, reportHandler.Fetch)
	s.App.Get("/report/:id/csv", authMiddleware.RequireAuth, reportHandler.DownloadCSV)

	return nil
}
