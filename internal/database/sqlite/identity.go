package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/tolvmar/chestwarden/internal/domain"
	"github.com/tolvmar/chestwarden/internal/metrics"
	"github.com/tolvmar/chestwarden/internal/naming"
)

const identityColumns = "xuid, name, last_join, last_leave, online"

// UpsertIdentity inserts a new identity or updates an existing one by key.
// The display name is refreshed every time because names may change.
func (s *Store) UpsertIdentity(ctx context.Context, identity *domain.Identity) error {
	if identity == nil || identity.XUID == "" {
		return fmt.Errorf("%w: identity key required", domain.ErrInvalidInput)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	query := `
		INSERT INTO identities (xuid, name, name_folded, last_join, last_leave, online)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (xuid) DO UPDATE
		SET name = excluded.name,
		    name_folded = excluded.name_folded,
		    last_join = excluded.last_join,
		    online = excluded.online
	`
	online := 0
	if identity.Online {
		online = 1
	}
	_, err := s.db.ExecContext(ctx, query,
		identity.XUID, identity.Name, naming.Fold(identity.Name),
		identity.LastJoin, identity.LastLeave, online)
	metrics.RecordStoreOperation(metrics.OpUpsertIdentity, err)
	if err != nil {
		return fmt.Errorf("failed to upsert identity: %w", err)
	}
	return nil
}

// MarkOffline records a disconnect for the identity.
func (s *Store) MarkOffline(ctx context.Context, xuid string, leaveTime int64) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	query := `UPDATE identities SET last_leave = ?, online = 0 WHERE xuid = ?`
	res, err := s.db.ExecContext(ctx, query, leaveTime, xuid)
	metrics.RecordStoreOperation(metrics.OpMarkOffline, err)
	if err != nil {
		return fmt.Errorf("failed to mark identity offline: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: identity %s", domain.ErrNotFound, xuid)
	}
	return nil
}

// GetIdentity returns the identity for a key.
func (s *Store) GetIdentity(ctx context.Context, xuid string) (*domain.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM identities WHERE xuid = ?`
	identity, err := scanIdentity(s.db.QueryRowContext(ctx, query, xuid))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: identity %s", domain.ErrNotFound, xuid)
		}
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}
	return identity, nil
}

// SearchIdentities matches the query case-insensitively against display
// names. Ranking: exact match first, then prefix, then substring, ties
// broken by most-recent last-seen descending. A blank query returns no rows.
func (s *Store) SearchIdentities(ctx context.Context, query string) ([]domain.Identity, error) {
	norm := naming.Normalize(query)
	if norm == "" {
		return nil, nil
	}

	escaped := escapeLike(norm)
	stmt := `
		SELECT ` + identityColumns + `
		FROM identities
		WHERE name_folded LIKE ? ESCAPE '\'
		ORDER BY
			CASE
				WHEN name_folded = ? THEN 0
				WHEN name_folded LIKE ? ESCAPE '\' THEN 1
				ELSE 2
			END,
			MAX(last_join, last_leave) DESC,
			name ASC
	`
	rows, err := s.db.QueryContext(ctx, stmt, "%"+escaped+"%", norm, escaped+"%")
	metrics.RecordStoreOperation(metrics.OpSearchIdentities, err)
	if err != nil {
		return nil, fmt.Errorf("failed to search identities: %w", err)
	}
	defer rows.Close()
	return scanIdentities(rows)
}

// ListOnline returns the identities currently flagged as connected.
func (s *Store) ListOnline(ctx context.Context) ([]domain.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM identities WHERE online = 1 ORDER BY name ASC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list online identities: %w", err)
	}
	defer rows.Close()
	return scanIdentities(rows)
}

// escapeLike escapes the LIKE wildcards in user-supplied query text.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return strings.ReplaceAll(s, `_`, `\_`)
}
