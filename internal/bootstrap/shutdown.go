package bootstrap

import (
	"context"
	"log/slog"

	"github.com/tolvmar/chestwarden/internal/event"
	"github.com/tolvmar/chestwarden/internal/repository"
	"github.com/tolvmar/chestwarden/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server     *server.Server
	Publisher  *event.ResilientPublisher
	DeadLetter *event.DeadLetterWriter
	Store      repository.Store
}

// GracefulShutdown stops the application components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Event publisher (drain in-flight retries so no snapshot is dropped)
// 3. Dead-letter writer and store (close files last)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	slog.Info(LogMsgShuttingDownEventPublisher)
	if components.Publisher != nil {
		components.Publisher.Drain()
	}

	if components.DeadLetter != nil {
		if err := components.DeadLetter.Close(); err != nil {
			slog.Error(LogMsgDeadLetterCloseFailed, "error", err)
		}
	}

	if components.Store != nil {
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
