package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/rmaia/go-wildfire-monitor/internal/access"
	"github.com/rmaia/go-wildfire-monitor/internal/alert"
	"github.com/rmaia/go-wildfire-monitor/internal/api"
	"github.com/rmaia/go-wildfire-monitor/internal/catalog"
	"github.com/rmaia/go-wildfire-monitor/internal/config"
	"github.com/rmaia/go-wildfire-monitor/internal/incident"
	"github.com/rmaia/go-wildfire-monitor/internal/logging"
	"github.com/rmaia/go-wildfire-monitor/internal/monitor"
	"github.com/rmaia/go-wildfire-monitor/internal/notify"
	"github.com/rmaia/go-wildfire-monitor/internal/repository"
	"github.com/rmaia/go-wildfire-monitor/internal/responder"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	slog.Info("Server starting", "host", cfg.Server.Host, "port", cfg.Server.Port)

	db, err := repository.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		logging.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifier := notify.New(cfg.Notifier.Workers, cfg.Notifier.BufferSize, nil)
	notifier.Start(ctx)

	incidentEngine := incident.NewEngine(db, db, db, notifier)
	alertEngine := alert.NewEngine(db, db, db, notifier)
	accessEngine := access.NewEngine(db, db, db)
	responderSvc := responder.NewService(db, db, db)
	catalogSvc := catalog.NewService(db, db, db)

	scanner := monitor.NewScanner(monitor.Config{
		Interval:          cfg.Monitor.ScanInterval,
		TempThreshold:     cfg.Monitor.TempThreshold,
		HumidityThreshold: cfg.Monitor.HumidityThreshold,
	}, db, db, db, db, incidentEngine, alertEngine)
	if err := scanner.Start(ctx); err != nil {
		logging.Fatalf("Failed to start threshold scanner: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Executor-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))
	router.Use(api.RateLimitMiddleware(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))

	handler := api.NewHandler(accessEngine, incidentEngine, alertEngine, responderSvc, catalogSvc, db)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")

	// In-flight handlers submit notifications, so the server must quiesce
	// before the notifier stops. Stop drains the buffer while ctx is live;
	// the deferred cancel fires after everything has wound down.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	scanner.Stop()
	notifier.Stop()

	slog.Info("shutdown complete")
}
