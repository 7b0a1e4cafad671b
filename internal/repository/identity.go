// Package repository defines the persistence interfaces the services depend
// on. The SQLite implementation lives in internal/database/sqlite.
package repository

import (
	"context"

	"github.com/tolvmar/chestwarden/internal/domain"
)

// Identity defines the interface for identity persistence and search.
type Identity interface {
	// UpsertIdentity inserts or updates by key, refreshing the display
	// name, last-join timestamp and online flag.
	UpsertIdentity(ctx context.Context, identity *domain.Identity) error

	// MarkOffline records a disconnect: last-leave timestamp updated,
	// online flag cleared.
	MarkOffline(ctx context.Context, xuid string, leaveTime int64) error

	// GetIdentity returns the identity for a key, or domain.ErrNotFound.
	GetIdentity(ctx context.Context, xuid string) (*domain.Identity, error)

	// SearchIdentities matches the normalized query case-insensitively
	// against display names, ranked exact > prefix > substring with ties
	// broken by most-recent last-seen. A blank query returns no rows.
	SearchIdentities(ctx context.Context, query string) ([]domain.Identity, error)

	// ListOnline returns the identities currently flagged as connected,
	// ordered by display name.
	ListOnline(ctx context.Context) ([]domain.Identity, error)
}
