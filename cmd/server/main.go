package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/kingksjo/recipe-platform/internal/config"
	"github.com/kingksjo/recipe-platform/internal/database"
	"github.com/kingksjo/recipe-platform/internal/logging"
	"github.com/kingksjo/recipe-platform/internal/server"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func runGracefulShutdown(srv *server.Server, db *database.Manager) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		if err := db.Shutdown(shutdownCtx); err != nil {
			slog.Error("Database shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.Env, "debug", cfg.Debug, "database", cfg.DatabaseName)

	db := database.NewManager(cfg.MongoURL, cfg.DatabaseName)

	clock := clockwork.NewRealClock()
	srv := server.NewServer(cfg, db, clock)

	done := runGracefulShutdown(srv, db)

	slog.Info("Server starting", "port", cfg.Port, "instance_id", srv.InstanceID().String())
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
