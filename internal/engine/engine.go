// Package engine executes container actions against a target player: taking,
// copying and removing single items, plus read-only views of whole containers.
// Mutating actions require the target online; offline targets support copying
// from the last stored snapshot only.
package engine

import (
	"context"
	"fmt"

	"github.com/tolvmar/chestwarden/internal/codec"
	"github.com/tolvmar/chestwarden/internal/domain"
	"github.com/tolvmar/chestwarden/internal/live"
	"github.com/tolvmar/chestwarden/internal/logger"
	"github.com/tolvmar/chestwarden/internal/repository"
)

// Engine performs container actions. Live slots are always re-read at action
// time; nothing is cached between the menu render and the click.
type Engine struct {
	live       live.Container
	containers repository.Container
}

// New creates an Engine over the live container boundary and the durable
// container store.
func New(liveContainer live.Container, containers repository.Container) *Engine {
	return &Engine{live: liveContainer, containers: containers}
}

// Take moves the item in the target's slot into the viewer's first free
// inventory slot and clears the target's slot. Fails without side effects
// when the viewer's inventory is full, the slot is empty or the target is
// offline.
func (e *Engine) Take(ctx context.Context, viewerXUID, targetXUID string, kind domain.ContainerKind, slot int) error {
	log := logger.FromContext(ctx)

	item, free, err := e.prepareTransfer(ctx, viewerXUID, targetXUID, kind, slot)
	if err != nil {
		return err
	}
	if err := e.live.SetSlot(viewerXUID, domain.KindInventory, free, item); err != nil {
		return fmt.Errorf("failed to place item: %w", err)
	}
	if err := e.live.SetSlot(targetXUID, kind, slot, nil); err != nil {
		return fmt.Errorf("failed to clear source slot: %w", err)
	}

	log.Info("item taken",
		"viewer", viewerXUID, "target", targetXUID,
		"kind", kind, "slot", slot, "type", item.TypeID, "count", item.Count)
	return nil
}

// Copy places a duplicate of the target's slot item into the viewer's first
// free inventory slot, leaving the target's container untouched.
func (e *Engine) Copy(ctx context.Context, viewerXUID, targetXUID string, kind domain.ContainerKind, slot int) error {
	log := logger.FromContext(ctx)

	item, free, err := e.prepareTransfer(ctx, viewerXUID, targetXUID, kind, slot)
	if err != nil {
		return err
	}
	if err := e.live.SetSlot(viewerXUID, domain.KindInventory, free, item); err != nil {
		return fmt.Errorf("failed to place item: %w", err)
	}

	log.Info("item copied",
		"viewer", viewerXUID, "target", targetXUID,
		"kind", kind, "slot", slot, "type", item.TypeID, "count", item.Count)
	return nil
}

// Remove clears the target's slot. The removed item is destroyed, not moved.
func (e *Engine) Remove(ctx context.Context, viewerXUID, targetXUID string, kind domain.ContainerKind, slot int) error {
	log := logger.FromContext(ctx)

	if err := validateSlot(kind, slot); err != nil {
		return err
	}
	if !e.live.IsConnected(targetXUID) {
		return fmt.Errorf("%w: %s", domain.ErrTargetOffline, targetXUID)
	}
	item, err := e.live.GetSlot(targetXUID, kind, slot)
	if err != nil {
		return fmt.Errorf("failed to read slot: %w", err)
	}
	if item == nil {
		return domain.ErrSlotEmpty
	}
	if err := e.live.SetSlot(targetXUID, kind, slot, nil); err != nil {
		return fmt.Errorf("failed to clear slot: %w", err)
	}

	log.Info("item removed",
		"viewer", viewerXUID, "target", targetXUID,
		"kind", kind, "slot", slot, "type", item.TypeID, "count", item.Count)
	return nil
}

// CopyOffline places a copy of an item from the target's stored snapshot into
// the viewer's first free inventory slot. The snapshot reflects the target's
// last save, not a live state.
func (e *Engine) CopyOffline(ctx context.Context, viewerXUID, targetXUID string, kind domain.ContainerKind, slot int) error {
	log := logger.FromContext(ctx)

	if err := validateSlot(kind, slot); err != nil {
		return err
	}
	if e.containers == nil {
		return domain.ErrStoreUnavailable
	}
	free, err := e.firstFreeSlot(viewerXUID)
	if err != nil {
		return err
	}

	records, err := e.containers.ReadContainer(ctx, targetXUID, kind)
	if err != nil {
		return err
	}
	var rec *domain.ItemRecord
	for i := range records {
		if records[i].Slot == slot {
			rec = &records[i]
			break
		}
	}
	if rec == nil {
		return domain.ErrSlotEmpty
	}

	item, err := codec.DecodeItem(ctx, *rec)
	if err != nil {
		return err
	}
	if err := e.live.SetSlot(viewerXUID, domain.KindInventory, free, &item); err != nil {
		return fmt.Errorf("failed to place item: %w", err)
	}

	log.Info("item copied from snapshot",
		"viewer", viewerXUID, "target", targetXUID,
		"kind", kind, "slot", slot, "type", item.TypeID, "count", item.Count)
	return nil
}

// CopyRecord places a copy of an already-decoded record, such as one read
// from a legacy fallback record, into the viewer's first free inventory slot.
func (e *Engine) CopyRecord(ctx context.Context, viewerXUID string, rec domain.ItemRecord) error {
	log := logger.FromContext(ctx)

	free, err := e.firstFreeSlot(viewerXUID)
	if err != nil {
		return err
	}
	item, err := codec.DecodeItem(ctx, rec)
	if err != nil {
		return err
	}
	if err := e.live.SetSlot(viewerXUID, domain.KindInventory, free, &item); err != nil {
		return fmt.Errorf("failed to place item: %w", err)
	}

	log.Info("item copied from record",
		"viewer", viewerXUID, "slot", rec.Slot, "type", rec.TypeID, "count", rec.Count)
	return nil
}

// prepareTransfer runs the shared preconditions for Take and Copy: valid
// slot, online target, free viewer slot, occupied source slot. The source
// item is round-tripped through its record form so a transferred item is
// identical to one restored from the store.
func (e *Engine) prepareTransfer(ctx context.Context, viewerXUID, targetXUID string, kind domain.ContainerKind, slot int) (*live.Item, int, error) {
	if err := validateSlot(kind, slot); err != nil {
		return nil, 0, err
	}
	if !e.live.IsConnected(targetXUID) {
		return nil, 0, fmt.Errorf("%w: %s", domain.ErrTargetOffline, targetXUID)
	}
	free, err := e.firstFreeSlot(viewerXUID)
	if err != nil {
		return nil, 0, err
	}
	item, err := e.live.GetSlot(targetXUID, kind, slot)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read slot: %w", err)
	}
	if item == nil {
		return nil, 0, domain.ErrSlotEmpty
	}

	rec := codec.EncodeItem(ctx, *item, slot)
	normalized, err := codec.DecodeItem(ctx, rec)
	if err != nil {
		return nil, 0, err
	}
	return &normalized, free, nil
}

// firstFreeSlot scans the viewer's inventory for the lowest empty slot.
func (e *Engine) firstFreeSlot(viewerXUID string) (int, error) {
	if !e.live.IsConnected(viewerXUID) {
		return 0, fmt.Errorf("%w: %s", domain.ErrTargetOffline, viewerXUID)
	}
	for i := 0; i < domain.InventorySize; i++ {
		item, err := e.live.GetSlot(viewerXUID, domain.KindInventory, i)
		if err != nil {
			return 0, fmt.Errorf("failed to scan inventory: %w", err)
		}
		if item == nil {
			return i, nil
		}
	}
	return 0, domain.ErrInventoryFull
}

func validateSlot(kind domain.ContainerKind, slot int) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown container kind %q", domain.ErrInvalidInput, kind)
	}
	if slot < 0 || slot >= kind.Size() {
		return fmt.Errorf("%w: slot %d out of range for %s", domain.ErrInvalidInput, slot, kind)
	}
	return nil
}
