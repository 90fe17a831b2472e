// Package main is the entry point for the blog API server.
// It loads configuration, builds the content repository, imports the post
// documents, sets up routing, and starts the HTTP server with graceful
// shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"devblog/internal/cache"
	"devblog/internal/config"
	"devblog/internal/database"
	"devblog/internal/handlers"
	"devblog/internal/loader"
	"devblog/internal/middleware"
	"devblog/internal/router"
	"devblog/internal/store"
	"devblog/internal/store/memory"
)

func main() {
	// Registered first so it runs after every other deferred cleanup.
	exitCode := 0
	defer func() { os.Exit(exitCode) }()

	// Load configuration from the environment (and .env when present).
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		exitCode = 1
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"store", cfg.StoreDriver,
		"posts_dir", cfg.PostsDir,
	)

	repo, closeRepo, err := openRepository(cfg)
	if err != nil {
		slog.Error("failed to open repository", "error", err)
		exitCode = 1
		return
	}
	defer closeRepo()

	// Seed the default categories and import the post documents before
	// serving any request.
	ctx := context.Background()
	seeded, err := repo.Categories.Seed(ctx, store.DefaultCategories())
	if err != nil {
		slog.Error("failed to seed categories", "error", err)
		exitCode = 1
		return
	}
	if seeded > 0 {
		slog.Info("categories seeded", "count", seeded)
	}

	imported, err := loader.New(cfg.PostsDir).Import(ctx, repo.Posts)
	if err != nil {
		slog.Error("failed to import posts", "error", err)
		exitCode = 1
		return
	}
	slog.Info("posts imported", "count", imported)

	// Connect to Valkey for the response cache (optional; the API works
	// without it).
	var responseCache *cache.ResponseCache
	if cfg.CacheEnabled() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Warn("valkey unavailable, response cache disabled", "error", err)
		} else {
			defer valkeyClient.Close()
			responseCache = cache.NewResponseCache(valkeyClient, cfg.CacheTTL)
			responseCache.InvalidateAll(ctx)
		}
	} else {
		slog.Info("response cache not configured")
	}

	limiter := middleware.NewRateLimiter(cfg.WriteRateLimit, time.Minute)
	defer limiter.Stop()

	api := handlers.NewAPI(repo, responseCache)
	r := router.New(api, responseCache, limiter)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig)
	case err := <-serverErr:
		slog.Error("server failed to start", "error", err)
		exitCode = 1
		return
	}

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		exitCode = 1
		return
	}

	slog.Info("server stopped gracefully")
}

// openRepository builds the content repository for the configured driver.
// The returned func releases any connections it holds.
func openRepository(cfg *config.Config) (*store.Repository, func(), error) {
	if cfg.StoreDriver != config.DriverPostgres {
		return memory.New(), func() {}, nil
	}

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		return nil, nil, err
	}
	return store.NewPostgres(db), func() { db.Close() }, nil
}
