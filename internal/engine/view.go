package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/tolvmar/chestwarden/internal/codec"
	"github.com/tolvmar/chestwarden/internal/domain"
	"github.com/tolvmar/chestwarden/internal/naming"
)

// hotbarSize is the run of inventory slots the game renders as the hotbar.
// The chest-style view shows the main grid first and the hotbar as the
// bottom row, so the two runs swap places.
const hotbarSize = 9

// SlotView is one rendered container slot: the container's own slot index,
// the position it occupies in the chest-style view, and a display label.
type SlotView struct {
	Slot       int
	ChestIndex int
	Label      string
	Empty      bool
	Item       domain.ItemRecord
}

// ChestIndex maps a container slot to its position in the chest-style view.
// Ender chest slots map directly; inventory slots show the main grid (9-35)
// first and the hotbar (0-8) as the final row.
func ChestIndex(kind domain.ContainerKind, slot int) int {
	if kind != domain.KindInventory {
		return slot
	}
	if slot < hotbarSize {
		return slot + (domain.InventorySize - hotbarSize)
	}
	return slot - hotbarSize
}

// ContainerIndex inverts ChestIndex: the container slot shown at a chest
// view position.
func ContainerIndex(kind domain.ContainerKind, chestIndex int) int {
	if kind != domain.KindInventory {
		return chestIndex
	}
	if chestIndex >= domain.InventorySize-hotbarSize {
		return chestIndex - (domain.InventorySize - hotbarSize)
	}
	return chestIndex + hotbarSize
}

// ViewLive renders the target's live container. The target must be online.
func (e *Engine) ViewLive(ctx context.Context, targetXUID string, kind domain.ContainerKind) ([]SlotView, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown container kind %q", domain.ErrInvalidInput, kind)
	}
	if !e.live.IsConnected(targetXUID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrTargetOffline, targetXUID)
	}

	var records []domain.ItemRecord
	for slot := 0; slot < kind.Size(); slot++ {
		item, err := e.live.GetSlot(targetXUID, kind, slot)
		if err != nil {
			return nil, fmt.Errorf("failed to read slot: %w", err)
		}
		if item == nil {
			continue
		}
		records = append(records, codec.EncodeItem(ctx, *item, slot))
	}
	return buildViews(kind, records), nil
}

// ViewSnapshot renders the target's last stored snapshot of the container.
func (e *Engine) ViewSnapshot(ctx context.Context, targetXUID string, kind domain.ContainerKind) ([]SlotView, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown container kind %q", domain.ErrInvalidInput, kind)
	}
	if e.containers == nil {
		return nil, domain.ErrStoreUnavailable
	}
	records, err := e.containers.ReadContainer(ctx, targetXUID, kind)
	if err != nil {
		return nil, err
	}
	return buildViews(kind, records), nil
}

// ViewRecords renders a record set that was obtained outside the store, such
// as a legacy fallback decode.
func ViewRecords(kind domain.ContainerKind, records []domain.ItemRecord) []SlotView {
	return buildViews(kind, records)
}

// buildViews lays the occupied records out over the full chest view, one
// entry per slot ordered by chest position.
func buildViews(kind domain.ContainerKind, records []domain.ItemRecord) []SlotView {
	bySlot := make(map[int]domain.ItemRecord, len(records))
	for _, rec := range records {
		bySlot[rec.Slot] = rec
	}

	views := make([]SlotView, 0, kind.Size())
	for slot := 0; slot < kind.Size(); slot++ {
		view := SlotView{
			Slot:       slot,
			ChestIndex: ChestIndex(kind, slot),
			Empty:      true,
		}
		if rec, ok := bySlot[slot]; ok {
			view.Empty = false
			view.Item = rec
			view.Label = naming.ItemLabel(rec)
		}
		views = append(views, view)
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ChestIndex < views[j].ChestIndex })
	return views
}
