package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/phongkhamtamthan/clinic-api/internal/catalog"
	"github.com/phongkhamtamthan/clinic-api/internal/config"
	"github.com/phongkhamtamthan/clinic-api/internal/handler"
	bookingHandler "github.com/phongkhamtamthan/clinic-api/internal/handler/booking"
	catalogHandler "github.com/phongkhamtamthan/clinic-api/internal/handler/catalog"
	"github.com/phongkhamtamthan/clinic-api/internal/middleware"
	"github.com/phongkhamtamthan/clinic-api/internal/router"
	bookingService "github.com/phongkhamtamthan/clinic-api/internal/service/booking"
	"github.com/phongkhamtamthan/clinic-api/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level := logger.ParseLevel(cfg.Log.Level)
	zerolog.SetGlobalLevel(level)
	appLogger := logger.NewLogger(&logger.Config{
		Level:      level,
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
	})

	// Build the reference data catalog
	cat, err := catalog.Default()
	if err != nil {
		appLogger.Fatal(err, "failed to build catalog")
	}

	// Initialize services
	bookingSvc := bookingService.NewService(cat, bookingService.SystemClock())

	// Initialize handlers
	h := handler.NewHandler()
	catalogH := catalogHandler.NewHandler(cat)
	bookingH := bookingHandler.NewHandler(bookingSvc)

	// Setup router
	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	}

	r := router.NewRouter(h, catalogH, bookingH, router.RouterConfig{
		CORSConfig: corsConfig,
	})
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		appLogger.Info("starting clinic API server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal(err, "failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal(err, "server forced to shutdown")
	}

	appLogger.Info("server exited properly")
}
