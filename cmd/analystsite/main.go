// Package main is the entry point for the analyst site API server.
// It loads configuration, connects to Postgres and Valkey, sets up routing,
// and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"analystsite/internal/cache"
	"analystsite/internal/config"
	"analystsite/internal/database"
	"analystsite/internal/handlers"
	"analystsite/internal/mailer"
	"analystsite/internal/router"
	"analystsite/internal/session"
	"analystsite/internal/store"
	"analystsite/internal/upload"
)

func main() {
	// Structured logger for the whole process.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load .env if present; real environment variables win.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the default services (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (session store + list cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Session cookies are HTTPS-only outside development.
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)
	listCache := cache.NewListCache(valkeyClient, cache.DefaultListTTL)

	// Data stores.
	blogStore := store.NewBlogStore(db)
	serviceStore := store.NewServiceStore(db)
	contentItemStore := store.NewContentItemStore(db)

	// Contact notifications are optional; without a Resend key the contact
	// endpoint answers 503.
	contactMailer := mailer.New(cfg.ResendAPIKey, cfg.ResendFrom, cfg.ContactEmail)
	var sender mailer.Sender
	if contactMailer != nil {
		sender = contactMailer
	} else {
		slog.Warn("resend not configured, contact form disabled")
	}

	h := &router.Handlers{
		Blogs:        handlers.NewBlogs(blogStore, listCache),
		Services:     handlers.NewServices(serviceStore, listCache),
		ContentItems: handlers.NewContentItems(contentItemStore, listCache),
		Uploads:      handlers.NewUploads(upload.NewSaver(cfg.UploadDir)),
		Auth:         handlers.NewAuth(sessionStore, cfg.AdminPassword, cfg.AdminPasswordHash),
		Contact:      handlers.NewContact(sender),
	}

	// Set up the Chi router with all middleware and routes.
	r := router.New(sessionStore, h, cfg.UploadDir)

	// The write timeout must cover 50 MB video uploads on slow links.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
