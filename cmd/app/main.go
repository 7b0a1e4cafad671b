package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tolvmar/chestwarden/internal/bootstrap"
	"github.com/tolvmar/chestwarden/internal/config"
	"github.com/tolvmar/chestwarden/internal/handler"
	"github.com/tolvmar/chestwarden/internal/lookup"
	"github.com/tolvmar/chestwarden/internal/server"
	"github.com/tolvmar/chestwarden/internal/tracker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	handler.InitValidator()

	// The store may be absent; everything below degrades per operation.
	store := bootstrap.InitializeStore(cfg)
	legacyReader := bootstrap.InitializeLegacyReader(cfg)

	var fallback lookup.Fallback
	if legacyReader != nil {
		fallback = legacyReader
	}
	finder := lookup.NewService(store, fallback)

	eventBus, publisher, deadLetter, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize event system: %v", err)
	}

	// The tracker consumes session events off the bus and persists snapshots.
	tracker.New(store).Register(eventBus)

	// The ingest endpoint publishes through the resilient publisher so a
	// transient store failure on a disconnect is retried, not lost.
	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, store, finder, publisher)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("Shutdown signal received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:     srv,
		Publisher:  publisher,
		DeadLetter: deadLetter,
		Store:      store,
	})
}
