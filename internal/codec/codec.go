// Package codec converts between the host runtime's live item representation
// and the serialized ItemRecord form used by the durable store, and decodes
// the legacy per-player on-disk record format.
package codec

import (
	"context"
	"sort"

	"github.com/Tnze/go-mc/nbt"

	"github.com/tolvmar/chestwarden/internal/domain"
	"github.com/tolvmar/chestwarden/internal/live"
	"github.com/tolvmar/chestwarden/internal/logger"
)

// EncodeItem converts a live item into its record form. Encoding is lossless
// for every field the live API exposes; values outside the store's bounds are
// coerced with a logged warning, never fatally.
func EncodeItem(ctx context.Context, item live.Item, slot int) domain.ItemRecord {
	log := logger.FromContext(ctx)

	count := item.Count
	if count < 1 || count > domain.MaxStackSize {
		log.Warn("item count out of range, clamping", "type", item.TypeID, "slot", slot, "count", count)
		count = clamp(count, 1, domain.MaxStackSize)
	}
	damage := item.Damage
	if damage < 0 {
		log.Warn("negative item damage, dropping", "type", item.TypeID, "slot", slot, "damage", damage)
		damage = 0
	}

	rec := domain.ItemRecord{
		Slot:        slot,
		TypeID:      item.TypeID,
		Count:       count,
		Damage:      damage,
		DisplayName: item.DisplayName,
		Unbreakable: item.Unbreakable,
	}
	if len(item.Lore) > 0 {
		rec.Lore = append([]string(nil), item.Lore...)
	}
	rec.Modifiers = encodeModifiers(item.Enchants)

	if len(item.Contents) > 0 {
		payload, err := EncodeNested(ctx, item.Contents)
		if err != nil {
			log.Warn("failed to encode nested container, dropping payload", "type", item.TypeID, "slot", slot, "error", err)
		} else {
			rec.Nested = payload
		}
	}
	return rec
}

// DecodeItem reconstructs a live item from its record form. The result is
// indistinguishable from the original for equality purposes on type, count,
// damage, name, lore, modifiers, unbreakable flag and nested contents.
func DecodeItem(ctx context.Context, rec domain.ItemRecord) (live.Item, error) {
	item := live.Item{
		TypeID:      rec.TypeID,
		Count:       rec.Count,
		Damage:      rec.Damage,
		DisplayName: rec.DisplayName,
		Unbreakable: rec.Unbreakable,
	}
	if len(rec.Lore) > 0 {
		item.Lore = append([]string(nil), rec.Lore...)
	}
	if len(rec.Modifiers) > 0 {
		item.Enchants = make(map[string]int, len(rec.Modifiers))
		for _, m := range rec.Modifiers {
			item.Enchants[m.Kind] = m.Level
		}
	}
	if rec.HasNested() {
		contents, err := DecodeNested(ctx, rec.Nested)
		if err != nil {
			return live.Item{}, err
		}
		item.Contents = contents
	}
	return item, nil
}

// nestedPayload is the wire shape of a sub-container payload: an NBT compound
// holding the occupied child slots in order.
type nestedPayload struct {
	Items []nestedItem `nbt:"Items"`
}

type nestedItem struct {
	Slot        int32       `nbt:"Slot"`
	Name        string      `nbt:"Name"`
	Count       int32       `nbt:"Count"`
	Damage      int32       `nbt:"Damage"`
	CustomName  string      `nbt:"CustomName"`
	Lore        []string    `nbt:"Lore"`
	Modifiers   []nestedMod `nbt:"Modifiers"`
	Unbreakable int8        `nbt:"Unbreakable"`
}

type nestedMod struct {
	Kind  string `nbt:"Kind"`
	Level int32  `nbt:"Level"`
}

// EncodeNested serializes a sub-container's contents. Nesting is bounded to
// one level beyond the top-level item: a container item inside the payload
// keeps its identity but its own contents are truncated with a warning.
func EncodeNested(ctx context.Context, contents []live.SlotItem) ([]byte, error) {
	log := logger.FromContext(ctx)

	payload := nestedPayload{Items: make([]nestedItem, 0, len(contents))}
	for _, si := range contents {
		if len(si.Item.Contents) > 0 {
			log.Warn("nested container exceeds depth bound, truncating contents",
				"type", si.Item.TypeID, "slot", si.Index, "depth", domain.NestedDepthLimit)
		}
		ni := nestedItem{
			Slot:       int32(si.Index),
			Name:       si.Item.TypeID,
			Count:      int32(si.Item.Count),
			Damage:     int32(si.Item.Damage),
			CustomName: si.Item.DisplayName,
			Lore:       si.Item.Lore,
		}
		if si.Item.Unbreakable {
			ni.Unbreakable = 1
		}
		for _, m := range encodeModifiers(si.Item.Enchants) {
			ni.Modifiers = append(ni.Modifiers, nestedMod{Kind: m.Kind, Level: int32(m.Level)})
		}
		payload.Items = append(payload.Items, ni)
	}
	sort.Slice(payload.Items, func(a, b int) bool { return payload.Items[a].Slot < payload.Items[b].Slot })
	return nbt.Marshal(payload)
}

// DecodeNested deserializes a sub-container payload back into live slot items.
func DecodeNested(_ context.Context, raw []byte) ([]live.SlotItem, error) {
	var payload nestedPayload
	if err := nbt.Unmarshal(raw, &payload); err != nil {
		return nil, wrapCorrupt("nested payload", err)
	}
	contents := make([]live.SlotItem, 0, len(payload.Items))
	for _, ni := range payload.Items {
		item := live.Item{
			TypeID:      ni.Name,
			Count:       int(ni.Count),
			Damage:      int(ni.Damage),
			DisplayName: ni.CustomName,
			Lore:        ni.Lore,
			Unbreakable: ni.Unbreakable != 0,
		}
		if len(ni.Modifiers) > 0 {
			item.Enchants = make(map[string]int, len(ni.Modifiers))
			for _, m := range ni.Modifiers {
				item.Enchants[m.Kind] = int(m.Level)
			}
		}
		contents = append(contents, live.SlotItem{Index: int(ni.Slot), Item: item})
	}
	return contents, nil
}

func encodeModifiers(enchants map[string]int) []domain.Modifier {
	if len(enchants) == 0 {
		return nil
	}
	mods := make([]domain.Modifier, 0, len(enchants))
	for kind, level := range enchants {
		mods = append(mods, domain.Modifier{Kind: kind, Level: level})
	}
	sort.Slice(mods, func(a, b int) bool { return mods[a].Kind < mods[b].Kind })
	return mods
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
