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

	"github.com/denisok6893-rgb/red-flag-checker/internal/assessment"
	"github.com/denisok6893-rgb/red-flag-checker/internal/cache"
	"github.com/denisok6893-rgb/red-flag-checker/internal/config"
	httpapi "github.com/denisok6893-rgb/red-flag-checker/internal/http"
	"github.com/denisok6893-rgb/red-flag-checker/internal/logger"
	"github.com/denisok6893-rgb/red-flag-checker/internal/storage"
)

func main() {
	configFile := flag.String("config", "", "path to a config file (default: ./configs/config.yaml)")
	flag.Parse()

	if err := run(*configFile); err != nil {
		fmt.Fprintf(os.Stderr, "red-flag-checker: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	log, err := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	store, err := storage.OpenSQLite(cfg.Storage.SQLitePath)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.EnsureSchema(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	profiles := storage.NewProfileManager(store, log, cfg.Storage.FlushDelay)
	if err := profiles.Load(ctx); err != nil {
		return err
	}
	if cfg.Storage.ImportPath != "" {
		exp, err := storage.LoadExportFromFile(cfg.Storage.ImportPath)
		if err != nil {
			return err
		}
		profiles.Import(exp)
		log.Info("profiles imported", map[string]interface{}{"path": cfg.Storage.ImportPath, "profiles": len(exp.TraitProfiles)})
	}

	catalog := assessment.DefaultCatalog()
	if cfg.Catalog.Path != "" {
		c, err := assessment.LoadCatalogFromFile(cfg.Catalog.Path)
		if err != nil {
			log.WithError(err).Warn("use default catalog", map[string]interface{}{"path": cfg.Catalog.Path})
		} else {
			catalog = c
		}
	}

	resultCache, closeCache, err := newCache(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeCache()

	srv := httpapi.NewServer(httpapi.Options{
		Engine:       assessment.NewEngine(catalog),
		Profiles:     profiles,
		Calculator:   cache.NewCalculator(resultCache, log),
		Logger:       log,
		ShareBaseURL: cfg.Share.BaseURL,
		Store:        store,
	})

	httpServer := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("API listening", map[string]interface{}{
			"address":    cfg.Server.Address,
			"cache":      resultCache.Name(),
			"sqlite":     cfg.Storage.SQLitePath,
			"categories": len(catalog),
		})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down", nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("graceful shutdown failed", nil)
	}
	if err := profiles.Flush(shutdownCtx); err != nil {
		return fmt.Errorf("flush profiles: %w", err)
	}
	return nil
}

// newCache builds the configured result cache. A redis backend that cannot
// be reached at startup is an error.
func newCache(ctx context.Context, cfg *config.Config, log logger.Logger) (cache.Cache, func(), error) {
	switch cfg.Cache.Backend {
	case config.CacheRedis:
		client := cache.NewRedisClient(cfg.Redis)
		r := cache.NewRedis(client, cfg.Cache.TTL)
		if err := r.Ping(ctx); err != nil {
			_ = r.Close()
			return nil, nil, err
		}
		return r, func() {
			if err := r.Close(); err != nil {
				log.WithError(err).Warn("close redis", nil)
			}
		}, nil
	case config.CacheNone:
		return cache.NewNoop(), func() {}, nil
	default:
		l, err := cache.NewLRU(cfg.Cache.Size, cfg.Cache.TTL)
		if err != nil {
			return nil, nil, err
		}
		return l, func() {}, nil
	}
}
