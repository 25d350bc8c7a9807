package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oncoplate/backend/config"
	"github.com/oncoplate/backend/internal/database"
	"github.com/oncoplate/backend/internal/server"
	"github.com/oncoplate/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewGormDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	healthDB, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to open health check connection: %v", err)
	}
	defer healthDB.Close()

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		// Redis only caches generated plans; the database copy is
		// authoritative, so run degraded instead of failing startup.
		log.Printf("Redis unavailable, plan caching disabled: %v", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	planService := service.NewPlanService(db, redisClient)

	srv := server.New(db, healthDB, authService, planService)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(cfg.ServerPort)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
