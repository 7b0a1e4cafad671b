package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tolvmar/chestwarden/internal/domain"
	"github.com/tolvmar/chestwarden/internal/metrics"
)

// tableFor maps a container kind to its row table. Table-per-kind mirrors
// the on-disk layout the store inherited; the (xuid, slot) primary key per
// table gives the (identity, kind, slot) uniqueness constraint.
func tableFor(kind domain.ContainerKind) (string, error) {
	switch kind {
	case domain.KindInventory:
		return "inventory_items", nil
	case domain.KindEnderChest:
		return "ender_chest_items", nil
	default:
		return "", fmt.Errorf("%w: unknown container kind %q", domain.ErrInvalidInput, kind)
	}
}

// ReplaceContainer atomically replaces all rows for (identity, kind) in one
// transaction. On any failure the transaction rolls back and the prior
// snapshot stays intact.
func (s *Store) ReplaceContainer(ctx context.Context, xuid string, kind domain.ContainerKind, items []domain.ItemRecord) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	if xuid == "" {
		return fmt.Errorf("%w: identity key required", domain.ErrInvalidInput)
	}
	for _, rec := range items {
		if err := validateRecord(rec, kind); err != nil {
			return err
		}
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		metrics.RecordStoreOperation(metrics.OpReplaceContainer, err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer safeRollback(ctx, tx)

	if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE xuid = ?`, xuid); err != nil {
		metrics.RecordStoreOperation(metrics.OpReplaceContainer, err)
		return fmt.Errorf("failed to clear container rows: %w", err)
	}

	insert := `
		INSERT INTO ` + table + ` (xuid, slot, type, amount, damage, display_name, lore, modifiers, unbreakable, nested)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for _, rec := range items {
		lore, modifiers, err := marshalRowJSON(rec)
		if err != nil {
			metrics.RecordStoreOperation(metrics.OpReplaceContainer, err)
			return err
		}
		unbreakable := 0
		if rec.Unbreakable {
			unbreakable = 1
		}
		var nested interface{}
		if rec.HasNested() {
			nested = rec.Nested
		}
		if _, err := tx.ExecContext(ctx, insert,
			xuid, rec.Slot, rec.TypeID, rec.Count, rec.Damage,
			rec.DisplayName, lore, modifiers, unbreakable, nested); err != nil {
			metrics.RecordStoreOperation(metrics.OpReplaceContainer, err)
			return fmt.Errorf("failed to insert container row (slot %d): %w", rec.Slot, err)
		}
	}

	err = tx.Commit()
	metrics.RecordStoreOperation(metrics.OpReplaceContainer, err)
	if err != nil {
		return fmt.Errorf("failed to commit container replace: %w", err)
	}
	return nil
}

// ReadContainer returns the rows for (identity, kind) ordered by slot
// ascending. domain.ErrNotFound when no identity row exists, distinct from
// an existing identity with zero items which yields an empty slice.
func (s *Store) ReadContainer(ctx context.Context, xuid string, kind domain.ContainerKind) ([]domain.ItemRecord, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	var exists int
	err = s.db.QueryRowContext(ctx, `SELECT 1 FROM identities WHERE xuid = ?`, xuid).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: identity %s", domain.ErrNotFound, xuid)
		}
		metrics.RecordStoreOperation(metrics.OpReadContainer, err)
		return nil, fmt.Errorf("failed to check identity: %w", err)
	}

	query := `
		SELECT slot, type, amount, damage, display_name, lore, modifiers, unbreakable, nested
		FROM ` + table + `
		WHERE xuid = ?
		ORDER BY slot ASC
	`
	rows, err := s.db.QueryContext(ctx, query, xuid)
	metrics.RecordStoreOperation(metrics.OpReadContainer, err)
	if err != nil {
		return nil, fmt.Errorf("failed to read container: %w", err)
	}
	defer rows.Close()

	records := []domain.ItemRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate container rows: %w", err)
	}
	return records, nil
}

func validateRecord(rec domain.ItemRecord, kind domain.ContainerKind) error {
	if rec.Slot < 0 || rec.Slot >= kind.Size() {
		return fmt.Errorf("%w: slot %d out of range for %s", domain.ErrInvalidInput, rec.Slot, kind)
	}
	if rec.TypeID == "" {
		return fmt.Errorf("%w: item type required (slot %d)", domain.ErrInvalidInput, rec.Slot)
	}
	if rec.Count < 1 || rec.Count > domain.MaxStackSize {
		return fmt.Errorf("%w: count %d out of range (slot %d)", domain.ErrInvalidInput, rec.Count, rec.Slot)
	}
	if rec.Damage < 0 {
		return fmt.Errorf("%w: negative damage (slot %d)", domain.ErrInvalidInput, rec.Slot)
	}
	return nil
}
