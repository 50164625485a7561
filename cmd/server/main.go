// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/cavalryfc/registration-api/internal/config"
	contentRouter "github.com/cavalryfc/registration-api/internal/content/router"
	"github.com/cavalryfc/registration-api/internal/database"
	"github.com/cavalryfc/registration-api/internal/database/migrate"
	donationRouter "github.com/cavalryfc/registration-api/internal/donation/router"
	"github.com/cavalryfc/registration-api/internal/health"
	"github.com/cavalryfc/registration-api/internal/middleware"
	"github.com/cavalryfc/registration-api/internal/payment"
	regRouter "github.com/cavalryfc/registration-api/internal/registration/router"
	statisticsRouter "github.com/cavalryfc/registration-api/internal/statistics/router"
	teamRouter "github.com/cavalryfc/registration-api/internal/team/router"
	webhookRouter "github.com/cavalryfc/registration-api/internal/webhook/router"
	"github.com/cavalryfc/registration-api/pkg/logger"
)

func main() {
	// Load .env if present; real deployments set variables directly.
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	gin.SetMode(cfg.GinMode)

	db, err := database.New(context.Background())
	if err != nil {
		zapLogger.Fatalw("failed to connect to database", "error", err)
	}

	if err := migrate.Migrate(db); err != nil {
		zapLogger.Fatalw("failed to run migrations", "error", err)
	}

	gateway := payment.NewStripeGateway(cfg.Stripe)
	adminAuth := middleware.AdminAuth(cfg.AdminPassword)

	r := gin.New()
	r.Use(middleware.Logger(zapLogger))
	r.Use(middleware.Recovery(zapLogger))

	teamRouter.RegisterRoutes(r, db, zapLogger, adminAuth)
	regSvc := regRouter.RegisterRoutes(r, db, gateway, cfg.FrontendURL, cfg.AdminPassword, zapLogger, adminAuth)
	donationSvc := donationRouter.RegisterRoutes(r, db, gateway, cfg.FrontendURL, zapLogger, adminAuth)
	contentRouter.RegisterRoutes(r, db, zapLogger, adminAuth)
	statisticsRouter.RegisterRoutes(r, db, zapLogger, adminAuth)
	webhookRouter.RegisterRoutes(r, gateway, regSvc, donationSvc, zapLogger)

	healthHandler := health.New(db, zapLogger)
	r.GET("/api/health", healthHandler.Check)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	zapLogger.Infow("starting server", "address", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zapLogger.Fatalw("failed to start server", "error", err)
	}
}
