package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mherren/daymix-server/internal/api"
	"github.com/mherren/daymix-server/internal/config"
	"github.com/mherren/daymix-server/internal/db"
	"github.com/mherren/daymix-server/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting daymix-server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// Create router
	router := api.NewRouter(cfg, database)

	// Create and start scheduler
	sched, err := scheduler.New(database, scheduler.Config{
		Timezone:      cfg.Timezone,
		RetentionDays: cfg.RetentionDays,
	})
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	if err := sched.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	// Start server
	addr := ":" + cfg.Port
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down gracefully...")

	// Give ongoing requests 10 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Stopping scheduler...")
	if err := sched.Stop(); err != nil {
		log.Printf("Scheduler shutdown error: %v", err)
	}

	log.Println("Closing database...")
	if err := database.Close(); err != nil {
		log.Printf("Database close error: %v", err)
	}

	log.Println("Shutdown complete")
}
