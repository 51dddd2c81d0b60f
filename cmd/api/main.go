package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sysmap-backend/infrastructure/config"
	"sysmap-backend/infrastructure/di"
	"sysmap-backend/interfaces/http/rest"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := di.InitializeContainer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	// Optional hot-reloadable runtime settings
	applySettings := func(settings *config.DynamicConfig) {
		if level, err := zapcore.ParseLevel(settings.LogLevel); err == nil {
			container.LogLevel.SetLevel(level)
		}
		container.RateLimiter.SetLimits(settings.RateLimit.RequestsPerMinute, settings.RateLimit.Burst)
		container.Logger.Info("Runtime settings applied",
			zap.String("log_level", settings.LogLevel),
			zap.Int("requests_per_minute", settings.RateLimit.RequestsPerMinute),
			zap.Int("burst", settings.RateLimit.Burst),
		)
	}

	var watcher *config.Watcher
	if path := os.Getenv("SETTINGS_FILE"); path != "" {
		watcher, err = config.NewWatcher(path, container.Logger)
		if err != nil {
			container.Logger.Fatal("Failed to watch settings file", zap.Error(err))
		}
		applySettings(watcher.Current())
		watcher.OnChange(applySettings)
		watcher.Start()
		defer watcher.Stop()
	}

	router := rest.NewRouter(
		cfg,
		container.CommandBus,
		container.QueryBus,
		container.Store,
		container.RateLimiter,
		container.Metrics,
		container.Logger,
	)
	handler := router.Setup()

	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		container.Logger.Info("Starting server",
			zap.String("address", cfg.ServerAddress),
			zap.String("environment", cfg.Environment),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	container.Logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		container.Logger.Error("Server shutdown error", zap.Error(err))
	}

	if err := container.Logger.Sync(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}

	log.Println("Server stopped")
}
