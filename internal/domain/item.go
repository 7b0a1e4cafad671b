package domain

import "sort"

// Modifier is one enchantment-style modifier on an item. The set of
// modifiers on a record is order-insensitive.
type Modifier struct {
	Kind  string `json:"kind"`
	Level int    `json:"level"`
}

// ItemRecord represents one occupied container slot in serialized form.
// Records are replaced or deleted whole; there is no partial-field update.
type ItemRecord struct {
	Slot        int        `json:"slot"`
	TypeID      string     `json:"type"`
	Count       int        `json:"count"`
	Damage      int        `json:"damage,omitempty"`
	DisplayName string     `json:"display_name,omitempty"`
	Lore        []string   `json:"lore,omitempty"`
	Modifiers   []Modifier `json:"modifiers,omitempty"`
	Unbreakable bool       `json:"unbreakable,omitempty"`
	// Nested holds the serialized contents of a sub-container for
	// container-type items (shulker-style), absent otherwise.
	Nested []byte `json:"nested,omitempty"`
}

// HasNested reports whether the record carries a sub-container payload.
func (r ItemRecord) HasNested() bool {
	return len(r.Nested) > 0
}

// SortedModifiers returns the modifiers ordered by kind then level, without
// mutating the record.
func (r ItemRecord) SortedModifiers() []Modifier {
	mods := make([]Modifier, len(r.Modifiers))
	copy(mods, r.Modifiers)
	sort.Slice(mods, func(a, b int) bool {
		if mods[a].Kind != mods[b].Kind {
			return mods[a].Kind < mods[b].Kind
		}
		return mods[a].Level < mods[b].Level
	})
	return mods
}

// Equal compares two records under game-identity equality: slot, type, count,
// damage, display metadata, unbreakable flag, modifiers as an unordered set,
// and the nested payload byte-for-byte.
func (r ItemRecord) Equal(other ItemRecord) bool {
	if r.Slot != other.Slot || r.TypeID != other.TypeID || r.Count != other.Count ||
		r.Damage != other.Damage || r.DisplayName != other.DisplayName ||
		r.Unbreakable != other.Unbreakable {
		return false
	}
	if len(r.Lore) != len(other.Lore) {
		return false
	}
	for i := range r.Lore {
		if r.Lore[i] != other.Lore[i] {
			return false
		}
	}
	a, b := r.SortedModifiers(), other.SortedModifiers()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	if len(r.Nested) != len(other.Nested) {
		return false
	}
	for i := range r.Nested {
		if r.Nested[i] != other.Nested[i] {
			return false
		}
	}
	return true
}

// SortRecords orders records by slot index ascending, in place.
func SortRecords(records []ItemRecord) {
	sort.Slice(records, func(a, b int) bool {
		return records[a].Slot < records[b].Slot
	})
}
