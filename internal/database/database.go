// Package database opens and migrates the embedded store file.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/tolvmar/chestwarden/internal/database/migrations"
	"github.com/tolvmar/chestwarden/internal/domain"
)

// Open opens (creating if necessary) the store file, switches it to WAL mode
// and applies pending migrations. Every failure here means the offline store
// is unavailable for this process lifetime, reported as ErrStoreUnavailable;
// the rest of the system keeps running in fallback-only mode.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", domain.ErrStoreUnavailable, err)
	}

	dsn := fmt.Sprintf("file:%s?%s", path, DSNPragmas)
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: opening store file: %v", domain.ErrStoreUnavailable, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: migrating schema: %v", domain.ErrStoreUnavailable, err)
	}

	slog.Default().Info(LogMsgStoreOpened, "path", path)
	return db, nil
}

func migrate(db *sql.DB) error {
	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}

// Ping verifies the store file is still reachable.
func Ping(ctx context.Context, db *sql.DB) error {
	return db.PingContext(ctx)
}
