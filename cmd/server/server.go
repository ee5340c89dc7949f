package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/rollmath/odds-api/internal/config"
	"github.com/rollmath/odds-api/internal/handlers/api"
	v1alpha1 "github.com/rollmath/odds-api/internal/handlers/api/v1alpha1"
	"github.com/rollmath/odds-api/internal/orchestrators/distribution"
	"github.com/rollmath/odds-api/internal/pkg/clock"
	"github.com/rollmath/odds-api/internal/pkg/idgen"
	redisclient "github.com/rollmath/odds-api/internal/redis"
	distcache "github.com/rollmath/odds-api/internal/repositories/dist_cache"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the odds API HTTP server with all configured services.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var cacheRepo distcache.Repository
	if cfg.RedisAddr != "" {
		client, err := redisclient.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return fmt.Errorf("failed to create redis client: %w", err)
		}
		defer func() { _ = client.Close() }()

		cacheRepo, err = distcache.NewRedisRepository(&distcache.Config{
			Client: client,
			Clock:  clock.New(),
		})
		if err != nil {
			return fmt.Errorf("failed to create distribution cache: %w", err)
		}
		slog.Info("Distribution cache enabled", "redis_addr", cfg.RedisAddr)
	}

	distributionService, err := distribution.NewOrchestrator(&distribution.Config{
		CacheRepo: cacheRepo,
		CacheTTL:  cfg.CacheTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create distribution service: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		DistributionService: distributionService,
	})
	if err != nil {
		return fmt.Errorf("failed to create distribution handler: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(api.RequestID(idgen.NewUUID("req")))
	router.Use(api.Timeout(cfg.RequestTimeout))
	router.Use(api.RequestLogger())
	router.GET("/healthz", api.Health)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:     router,
		ReadTimeout: cfg.RequestTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down HTTP server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Graceful shutdown failed, closing", "error", err)
			_ = srv.Close()
		}
		slog.Info("HTTP server stopped")
		return nil
	case err := <-errChan:
		return err
	}
}
