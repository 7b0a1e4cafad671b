package repository

import (
	"context"

	"github.com/tolvmar/chestwarden/internal/domain"
)

// Container defines the interface for container snapshot persistence.
type Container interface {
	// ReplaceContainer atomically deletes all rows for (identity, kind)
	// and inserts the given records in one transaction. A concurrent
	// reader observes either the fully-old or fully-new set, never mixed.
	ReplaceContainer(ctx context.Context, xuid string, kind domain.ContainerKind, items []domain.ItemRecord) error

	// ReadContainer returns the records for (identity, kind) ordered by
	// slot ascending. domain.ErrNotFound when no identity row exists;
	// an empty slice when the identity exists with zero items.
	ReadContainer(ctx context.Context, xuid string, kind domain.ContainerKind) ([]domain.ItemRecord, error)
}

// Store is the full durable store surface owned by the SQLite backend.
type Store interface {
	Identity
	Container

	Ping(ctx context.Context) error
	Close() error
}
