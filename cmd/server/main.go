package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/limaJavier/coursetable/internal/config"
	applogger "github.com/limaJavier/coursetable/internal/logger"
	"github.com/limaJavier/coursetable/internal/server"
	"github.com/limaJavier/coursetable/pkg/catalog"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Path to the configuration file")
	flag.Parse()

	// 1. Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting server",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
		zap.Int("search_cap", cfg.Search.Cap),
		zap.Bool("search_parallel", cfg.Search.Parallel),
	)

	// 3. Catalog (optional: without one only manual courses can be planned)
	var offerings catalog.Catalog
	if cfg.Catalog.Path != "" {
		offerings, err = catalog.Load(cfg.Catalog.Path)
		if err != nil {
			logger.Fatal("cannot load catalog", zap.String("path", cfg.Catalog.Path), zap.Error(err))
		}
		logger.Info("catalog loaded", zap.Int("offerings", len(offerings.Offerings())))
	} else {
		logger.Warn("no catalog configured, catalog search will return no courses")
	}

	// 4. Router
	gin.SetMode(gin.ReleaseMode)
	engine := server.Setup(server.NewHandler(cfg.Search, offerings, logger), logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15*time.Second + cfg.Search.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// 5. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
