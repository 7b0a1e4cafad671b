package bootstrap

import (
	"log/slog"

	"github.com/tolvmar/chestwarden/internal/config"
	"github.com/tolvmar/chestwarden/internal/database"
	"github.com/tolvmar/chestwarden/internal/database/sqlite"
	"github.com/tolvmar/chestwarden/internal/legacy"
	"github.com/tolvmar/chestwarden/internal/repository"
)

// InitializeStore opens and migrates the offline store. A failure is not
// fatal: the process continues in fallback-only mode with a nil store, and
// every store-backed feature degrades per operation.
func InitializeStore(cfg *config.Config) repository.Store {
	db, err := database.Open(cfg.StorePath())
	if err != nil {
		slog.Error(LogMsgStoreUnavailable, "error", err, "path", cfg.StorePath())
		return nil
	}
	return sqlite.NewStore(db)
}

// InitializeLegacyReader wires the legacy record fallback when a record
// directory is configured. Returns nil when the fallback is disabled.
func InitializeLegacyReader(cfg *config.Config) *legacy.Reader {
	if cfg.LegacyDir == "" {
		slog.Info(LogMsgLegacyFallbackDisabled)
		return nil
	}
	slog.Info(LogMsgLegacyFallbackEnabled, "dir", cfg.LegacyDir)
	return legacy.NewReader(legacy.NewDirSource(cfg.LegacyDir))
}
