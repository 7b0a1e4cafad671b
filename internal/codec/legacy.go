package codec

import (
	"context"
	"fmt"

	"github.com/Tnze/go-mc/nbt"

	"github.com/tolvmar/chestwarden/internal/domain"
	"github.com/tolvmar/chestwarden/internal/logger"
)

// legacyListKey is the compound key holding the ender chest item list in the
// legacy per-player record format.
const legacyListKey = "EnderChestInventory"

// DecodeLegacy parses a legacy on-disk player record and returns its ender
// chest contents ordered by slot. Missing optional fields get defaults; an
// item whose mandatory type or slot field cannot be parsed is skipped with a
// warning and does not abort the remaining items. Only an unreadable record
// as a whole fails, wrapped in ErrCorruptRecord.
func DecodeLegacy(ctx context.Context, raw []byte) ([]domain.ItemRecord, error) {
	log := logger.FromContext(ctx)

	var root map[string]interface{}
	if err := nbt.Unmarshal(raw, &root); err != nil {
		return nil, wrapCorrupt("record", err)
	}

	items := asList(root[legacyListKey])
	records := make([]domain.ItemRecord, 0, len(items))
	for i, entry := range items {
		comp, ok := asCompound(entry)
		if !ok {
			log.Warn("legacy item entry is not a compound, skipping", "index", i)
			continue
		}
		rec, err := decodeLegacyItem(comp)
		if err != nil {
			log.Warn("skipping corrupt legacy item", "index", i, "error", err)
			continue
		}
		if rec.Slot < 0 || rec.Slot >= domain.EnderChestSize {
			log.Warn("legacy item slot out of range, skipping", "index", i, "slot", rec.Slot)
			continue
		}
		records = append(records, rec)
	}
	domain.SortRecords(records)
	return records, nil
}

func decodeLegacyItem(comp map[string]interface{}) (domain.ItemRecord, error) {
	name, ok := asString(comp["Name"])
	if !ok || name == "" {
		return domain.ItemRecord{}, wrapCorrupt("item", fmt.Errorf("missing Name field"))
	}
	slot, ok := asInt(comp["Slot"])
	if !ok {
		return domain.ItemRecord{}, wrapCorrupt("item", fmt.Errorf("missing Slot field"))
	}

	rec := domain.ItemRecord{
		Slot:   int(slot),
		TypeID: name,
		Count:  1,
	}
	if count, ok := asInt(comp["Count"]); ok && count > 0 {
		rec.Count = int(count)
	}
	if damage, ok := asInt(comp["Damage"]); ok && damage > 0 {
		rec.Damage = int(damage)
	}

	tag, ok := asCompound(comp["tag"])
	if !ok {
		return rec, nil
	}
	if display, ok := asCompound(tag["display"]); ok {
		if dn, ok := asString(display["Name"]); ok {
			rec.DisplayName = dn
		}
		for _, line := range asList(display["Lore"]) {
			if s, ok := asString(line); ok {
				rec.Lore = append(rec.Lore, s)
			}
		}
	}
	for _, entry := range asList(tag["ench"]) {
		ench, ok := asCompound(entry)
		if !ok {
			continue
		}
		id, ok := asInt(ench["id"])
		if !ok {
			continue
		}
		level := int64(1)
		if lvl, ok := asInt(ench["lvl"]); ok {
			level = lvl
		}
		rec.Modifiers = append(rec.Modifiers, domain.Modifier{
			Kind:  enchantKind(id),
			Level: int(level),
		})
	}
	if unbreakable, ok := asInt(tag["Unbreakable"]); ok && unbreakable != 0 {
		rec.Unbreakable = true
	}
	return rec, nil
}

// enchantKind maps a legacy numeric enchantment id to the stable modifier
// kind used by the store rows.
func enchantKind(id int64) string {
	return fmt.Sprintf("enchantment_%d", id)
}

func wrapCorrupt(what string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrCorruptRecord, what, err)
}

// ---- NBT value coercion helpers ----
//
// Decoding into interface{} yields the NBT tag's native Go type; these
// helpers accept every numeric width the format can produce.

func asCompound(v interface{}) (map[string]interface{}, bool) {
	m, ok := v.(map[string]interface{})
	return m, ok
}

func asList(v interface{}) []interface{} {
	switch t := v.(type) {
	case []interface{}:
		return t
	case []map[string]interface{}:
		out := make([]interface{}, len(t))
		for i := range t {
			out[i] = t[i]
		}
		return out
	case []string:
		out := make([]interface{}, len(t))
		for i := range t {
			out[i] = t[i]
		}
		return out
	default:
		return nil
	}
}

func asString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asInt(v interface{}) (int64, bool) {
	switch t := v.(type) {
	case int8:
		return int64(t), true
	case int16:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case byte:
		return int64(t), true
	case float32:
		return int64(t), true
	case float64:
		return int64(t), true
	default:
		return 0, false
	}
}
