package main

import (
	"context"
	"crypto/rand"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/albisatrio/heritage-jakarta-website/internal/heritage/admin"
	"github.com/albisatrio/heritage-jakarta-website/internal/heritage/catalog"
	"github.com/albisatrio/heritage-jakarta-website/internal/heritage/config"
	"github.com/albisatrio/heritage-jakarta-website/internal/heritage/httpserver"
	appsession "github.com/albisatrio/heritage-jakarta-website/internal/heritage/session"
)

func main() {
	configPath := flag.String("config", "", "path to YAML configuration file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	catalogSvc := buildCatalogService(cfg, logger)
	adminSvc := buildAdminService(cfg, logger)
	sessions := buildSessions(cfg, logger)

	srv := httpserver.New(httpserver.Config{
		Address:    cfg.Address,
		BasePath:   cfg.BasePath,
		Catalog:    catalogSvc,
		Admin:      admin.NewController(adminSvc, logger, cfg.AdminPageSize),
		Sessions:   sessions,
		Logger:     logger,
		ImageTable: cfg.FallbackImages,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	logger.Info("heritage web server listening",
		zap.String("address", cfg.Address),
		zap.String("base_path", cfg.BasePath),
		zap.Bool("static_dataset", cfg.BackendURL == ""))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		os.Exit(1)
	}
}

func buildCatalogService(cfg config.Config, logger *zap.Logger) catalog.Service {
	if cfg.BackendURL == "" {
		logger.Info("backend URL not set; serving the built-in dataset")
		return catalog.NewStaticService()
	}
	svc, err := catalog.NewHTTPService(cfg.BackendURL, &http.Client{Timeout: 8 * time.Second})
	if err != nil {
		logger.Fatal("catalog service", zap.Error(err))
	}
	return svc
}

func buildAdminService(cfg config.Config, logger *zap.Logger) admin.Service {
	if cfg.BackendURL == "" {
		return admin.NewStaticService()
	}
	svc, err := admin.NewHTTPService(cfg.BackendURL)
	if err != nil {
		logger.Fatal("admin service", zap.Error(err))
	}
	return svc
}

func buildSessions(cfg config.Config, logger *zap.Logger) *appsession.Manager {
	sessCfg := appsession.Config{
		Lifetime: cfg.SessionLifetime,
	}
	if cfg.SessionHashKey != "" {
		sessCfg.HashKey = []byte(cfg.SessionHashKey)
	} else {
		logger.Warn("session hash key not set; sessions will not survive restarts")
		sessCfg.HashKey = randomKey()
	}
	mgr, err := appsession.NewManager(sessCfg)
	if err != nil {
		logger.Fatal("session manager", zap.Error(err))
	}
	return mgr
}

func randomKey() []byte {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic(err)
	}
	return key
}
