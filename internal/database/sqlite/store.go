// Package sqlite implements the repository interfaces over the embedded
// store file. Writers serialize on a store-level mutex on top of SQLite's
// WAL discipline; readers run concurrently and only ever observe committed
// snapshots.
package sqlite

import (
	"context"
	"database/sql"
	"sync"
)

// Store implements repository.Store for the embedded SQLite file.
type Store struct {
	db *sql.DB

	// writeMu serializes writers. SQLite WAL permits one writer at a
	// time; queueing in-process keeps concurrent joins from burning the
	// busy timeout.
	writeMu sync.Mutex
}

// NewStore creates a new Store over an opened database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Ping verifies the store file is still reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
