package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/grupo09/paises-backend/src/config"
	"github.com/grupo09/paises-backend/src/db"
	"github.com/grupo09/paises-backend/src/middleware"
	"github.com/grupo09/paises-backend/src/routes"
	"github.com/grupo09/paises-backend/src/seed"
	"github.com/grupo09/paises-backend/src/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v\n", err)
	}
	configureLogging(cfg)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Database connection
	handle, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}
	defer func() {
		if err := handle.Close(context.Background()); err != nil {
			log.WithError(err).Error("Error closing database connection")
		}
	}()

	// Seed an empty catalog before serving
	seed.NewSeeder(handle.Repository, cfg.CountriesAPIURL, cfg.TenantTag, cfg.SeedTimeout).Seed(ctx)

	// Services and routes setup
	countryService := services.NewCountryService(handle.Repository)
	router := routes.NewRouter(cfg, countryService)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           middleware.MethodOverride(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server is running on %s\n", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting server on %s: %v\n", cfg.Addr(), err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
}

func configureLogging(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("Unknown LOG_LEVEL, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
	if !cfg.IsDevelopment() {
		log.SetFormatter(&log.JSONFormatter{})
	}
}
