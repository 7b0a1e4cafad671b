package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tolvmar/chestwarden/internal/domain"
	"github.com/tolvmar/chestwarden/internal/logger"
)

// safeRollback rolls back a transaction and logs any error that isn't the
// expected already-committed case.
func safeRollback(ctx context.Context, tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanIdentity(row rowScanner) (*domain.Identity, error) {
	var identity domain.Identity
	var online int
	if err := row.Scan(&identity.XUID, &identity.Name, &identity.LastJoin, &identity.LastLeave, &online); err != nil {
		return nil, err
	}
	identity.Online = online != 0
	return &identity, nil
}

func scanIdentities(rows *sql.Rows) ([]domain.Identity, error) {
	var identities []domain.Identity
	for rows.Next() {
		identity, err := scanIdentity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan identity row: %w", err)
		}
		identities = append(identities, *identity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate identity rows: %w", err)
	}
	return identities, nil
}

// marshalRowJSON serializes the lore and modifier columns. Empty collections
// persist as empty JSON arrays to keep the columns NOT NULL.
func marshalRowJSON(rec domain.ItemRecord) (lore string, modifiers string, err error) {
	loreVal := rec.Lore
	if loreVal == nil {
		loreVal = []string{}
	}
	loreBytes, err := json.Marshal(loreVal)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal lore (slot %d): %w", rec.Slot, err)
	}

	mods := rec.SortedModifiers()
	if mods == nil {
		mods = []domain.Modifier{}
	}
	modBytes, err := json.Marshal(mods)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal modifiers (slot %d): %w", rec.Slot, err)
	}
	return string(loreBytes), string(modBytes), nil
}

func scanRecord(row rowScanner) (domain.ItemRecord, error) {
	var rec domain.ItemRecord
	var lore, modifiers string
	var unbreakable int
	var nested []byte
	if err := row.Scan(&rec.Slot, &rec.TypeID, &rec.Count, &rec.Damage,
		&rec.DisplayName, &lore, &modifiers, &unbreakable, &nested); err != nil {
		return domain.ItemRecord{}, fmt.Errorf("failed to scan container row: %w", err)
	}
	rec.Unbreakable = unbreakable != 0
	if len(nested) > 0 {
		rec.Nested = nested
	}

	if err := json.Unmarshal([]byte(lore), &rec.Lore); err != nil {
		return domain.ItemRecord{}, fmt.Errorf("%w: lore column (slot %d): %v", domain.ErrCorruptRecord, rec.Slot, err)
	}
	if len(rec.Lore) == 0 {
		rec.Lore = nil
	}
	if err := json.Unmarshal([]byte(modifiers), &rec.Modifiers); err != nil {
		return domain.ItemRecord{}, fmt.Errorf("%w: modifiers column (slot %d): %v", domain.ErrCorruptRecord, rec.Slot, err)
	}
	if len(rec.Modifiers) == 0 {
		rec.Modifiers = nil
	}
	return rec, nil
}
