package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gscdash/internal/config"
	"gscdash/internal/metrics"
	"gscdash/internal/reportcache"
	"gscdash/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	metrics.Init()

	// Per-fetch report store backing the CSV download links
	cache := reportcache.New(reportcache.DefaultTTL)
	defer cache.Close()

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, cache); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
